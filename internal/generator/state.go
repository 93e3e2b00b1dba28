// Package generator implements the seven-phase placement pipeline that
// turns a blank month into a completed AssignmentTable: night
// placement, part-timer placement, full-timer day-shift placement,
// workday-gap top-up, coverage rescue, early/late balancing, and
// off-day warning emission, followed by final validation.
package generator

import (
	mathrand "math/rand"

	"github.com/carefacility/shiftgen/internal/config"
	"github.com/carefacility/shiftgen/internal/constraint"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
)

// state is the shared mutable context threaded through every phase: a
// single owned table, the roster and requests it was built from, the
// month-scoped overrun and Sunday-relaxation counters, the warnings
// list, and the injected PRNG every shuffle consumes.
type state struct {
	table *schedule.Table

	roster []*roster.Staff
	byID   map[string]*roster.Staff

	year, month, days int
	settings          config.Settings
	requests          map[string]map[int]bool

	budget          *constraint.OverrunBudget
	sundayRelaxUsed int

	rng *mathrand.Rand

	warnings []string
	warnSeen map[string]bool
}

// addWarning appends msg unconditionally. Used for every warning
// category except coverage shortfalls, which may legitimately repeat
// across phases and must be deduplicated instead.
func (s *state) addWarning(msg string) {
	s.warnings = append(s.warnings, msg)
}

// addCoverageWarning appends msg only the first time it is seen in
// this run, per §6's dedup rule for coverage-shortfall messages.
func (s *state) addCoverageWarning(msg string) {
	if s.warnSeen[msg] {
		return
	}
	s.warnSeen[msg] = true
	s.warnings = append(s.warnings, msg)
}

// maxConsecutive returns s's effective cap under this run's settings.
func (st *state) maxConsecutive(s *roster.Staff) int {
	return constraint.EffectiveMaxConsecutive(s, st.settings.MaxConsecutive)
}

// requested reports whether staffID asked for day off.
func (st *state) requested(staffID string, day int) bool {
	set := st.requests[staffID]
	return set != nil && set[day]
}

// sanitizeRequests drops requests for unknown staff ids and
// out-of-range days, per §6 ("unknown staff ids are ignored;
// out-of-range days are ignored").
func sanitizeRequests(requests map[string]map[int]bool, knownIDs map[string]bool, days int) map[string]map[int]bool {
	out := make(map[string]map[int]bool, len(requests))
	for id, set := range requests {
		if !knownIDs[id] {
			continue
		}
		clean := make(map[int]bool, len(set))
		for day, want := range set {
			if !want {
				continue
			}
			if day < 1 || day > days {
				continue
			}
			clean[day] = true
		}
		if len(clean) > 0 {
			out[id] = clean
		}
	}
	return out
}

func shuffleIDs(rng *mathrand.Rand, ids []string) {
	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}
