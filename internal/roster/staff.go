// Package roster holds the Staff record and the two independent
// enumerated axes (Kind, NightCapability) that eligibility predicates
// dispatch on, per the polymorphism design note in the specification.
package roster

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind is the staff employment class.
type Kind int

const (
	Full Kind = iota
	PartTime
)

func (k Kind) String() string {
	if k == PartTime {
		return "part"
	}
	return "full"
}

// ParseKind parses the roster-file string form of Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "full":
		return Full, nil
	case "part":
		return PartTime, nil
	default:
		return Full, fmt.Errorf("unknown staff kind %q", s)
	}
}

func (k Kind) MarshalJSON() ([]byte, error)  { return json.Marshal(k.String()) }
func (k Kind) MarshalYAML() (interface{}, error) { return k.String(), nil }

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func (k *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// NightCapability controls which days, if any, a staff member may be
// assigned NIGHT on.
type NightCapability int

const (
	NightNone NightCapability = iota
	NightWeekdayOnly
	NightAll
)

func (n NightCapability) String() string {
	switch n {
	case NightWeekdayOnly:
		return "weekdayOnly"
	case NightAll:
		return "all"
	default:
		return "none"
	}
}

// ParseNightCapability parses the roster-file string form of NightCapability.
func ParseNightCapability(s string) (NightCapability, error) {
	switch s {
	case "", "none":
		return NightNone, nil
	case "weekdayOnly":
		return NightWeekdayOnly, nil
	case "all":
		return NightAll, nil
	default:
		return NightNone, fmt.Errorf("unknown night capability %q", s)
	}
}

func (n NightCapability) MarshalJSON() ([]byte, error)      { return json.Marshal(n.String()) }
func (n NightCapability) MarshalYAML() (interface{}, error) { return n.String(), nil }

func (n *NightCapability) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseNightCapability(s)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n *NightCapability) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseNightCapability(s)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Default monthly/weekly quotas and part-timer hours applied when a
// Staff record omits them.
const (
	DefaultMonthlyDaysOffTarget = 9
	DefaultMaxDaysPerWeek       = 3
	DefaultStartTime            = "09:00"
	DefaultEndTime              = "17:00"
)

// Staff is one roster entry. Zero-valued optional fields are filled in
// by Normalize before a generation run consults them.
type Staff struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	Kind  Kind            `json:"kind" yaml:"kind"`
	Night NightCapability `json:"night" yaml:"night"`

	CanOvertime bool `json:"canOvertime" yaml:"canOvertime"`
	EarlyOnly   bool `json:"earlyOnly" yaml:"earlyOnly"`
	LateOnly    bool `json:"lateOnly" yaml:"lateOnly"`

	MonthlyDaysOffTarget    int    `json:"monthlyDaysOffTarget" yaml:"monthlyDaysOffTarget"`
	MaxDaysPerWeek          int    `json:"maxDaysPerWeek" yaml:"maxDaysPerWeek"`
	MaxConsecutiveOverride  int    `json:"maxConsecutiveOverride" yaml:"maxConsecutiveOverride"`
	StartTime               string `json:"startTime" yaml:"startTime"`
	EndTime                 string `json:"endTime" yaml:"endTime"`
	AllowConsecutivePlusOne bool   `json:"allowConsecutivePlusOne" yaml:"allowConsecutivePlusOne"`
}

// Normalize fills in documented defaults for zero-valued optional
// fields and assigns a fresh id when the caller left ID blank. It
// mutates s in place and is idempotent.
func (s *Staff) Normalize() {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.MonthlyDaysOffTarget == 0 {
		s.MonthlyDaysOffTarget = DefaultMonthlyDaysOffTarget
	}
	if s.MaxDaysPerWeek == 0 {
		s.MaxDaysPerWeek = DefaultMaxDaysPerWeek
	}
	if s.StartTime == "" {
		s.StartTime = DefaultStartTime
	}
	if s.EndTime == "" {
		s.EndTime = DefaultEndTime
	}
}

// StartMinute parses StartTime as HH:MM and returns minutes since
// midnight, defaulting defensively to 09:00 on an unparseable string.
func (s *Staff) StartMinute() int {
	m, ok := parseHHMM(s.StartTime)
	if !ok {
		m, _ = parseHHMM(DefaultStartTime)
	}
	return m
}

// EndMinute parses EndTime as HH:MM and returns minutes since
// midnight, defaulting defensively to 17:00 on an unparseable string.
func (s *Staff) EndMinute() int {
	m, ok := parseHHMM(s.EndTime)
	if !ok {
		m, _ = parseHHMM(DefaultEndTime)
	}
	return m
}

func parseHHMM(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// IsPart reports whether s is a part-time staff member.
func (s *Staff) IsPart() bool { return s.Kind == PartTime }
