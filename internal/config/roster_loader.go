package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carefacility/shiftgen/internal/roster"
)

// RosterFile is the on-disk shape of a roster plus its requested-off
// days, as consumed by the CLI and HTTP generate endpoints. Persisting
// or editing this file is the caller's concern, not the core's — the
// core only ever receives the decoded staff slice and request map by
// value.
type RosterFile struct {
	Staff    []*roster.Staff  `json:"staff" yaml:"staff"`
	Requests map[string][]int `json:"requests" yaml:"requests"`
}

// RequestSet converts the flat day-list form used on disk into the
// per-staff set the generator expects.
func (r RosterFile) RequestSet() map[string]map[int]bool {
	out := make(map[string]map[int]bool, len(r.Requests))
	for id, days := range r.Requests {
		set := make(map[int]bool, len(days))
		for _, d := range days {
			set[d] = true
		}
		out[id] = set
	}
	return out
}

// LoadRosterJSON reads a roster + requests file in JSON form and
// normalizes every staff record's optional fields.
func LoadRosterJSON(path string) (RosterFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RosterFile{}, fmt.Errorf("read roster file %q: %w", path, err)
	}
	var rf RosterFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return RosterFile{}, fmt.Errorf("parse roster file %q: %w", path, err)
	}
	normalizeAll(rf.Staff)
	return rf, nil
}

// LoadRosterYAML reads a roster + requests file in YAML form and
// normalizes every staff record's optional fields.
func LoadRosterYAML(path string) (RosterFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RosterFile{}, fmt.Errorf("read roster file %q: %w", path, err)
	}
	var rf RosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return RosterFile{}, fmt.Errorf("parse roster file %q: %w", path, err)
	}
	normalizeAll(rf.Staff)
	return rf, nil
}

func normalizeAll(staff []*roster.Staff) {
	for _, s := range staff {
		if s != nil {
			s.Normalize()
		}
	}
}
