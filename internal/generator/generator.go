package generator

import (
	mathrand "math/rand"
	"time"

	"github.com/carefacility/shiftgen/internal/config"
	"github.com/carefacility/shiftgen/internal/constraint"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/validator"
)

// Generate runs the full pipeline of §4.6 against staffList for the
// given year/month and returns the completed assignment table plus
// every warning accumulated along the way. rng may be nil, in which
// case a time-seeded source is created; passing a fixed-seed *rand.Rand
// makes the run fully deterministic (property I-9).
//
// Nil staff entries are skipped defensively rather than causing a
// panic — the core never errors on malformed input, per §7.
func Generate(staffList []*roster.Staff, year, month int, requests map[string]map[int]bool, settings config.Settings, rng *mathrand.Rand) (*schedule.Table, []string) {
	settings = settings.WithDefaults()
	if rng == nil {
		rng = mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	}

	var ids []string
	knownIDs := map[string]bool{}
	byID := map[string]*roster.Staff{}
	var ros []*roster.Staff
	for _, s := range staffList {
		if s == nil {
			continue
		}
		s.Normalize()
		if knownIDs[s.ID] {
			continue // defensive: duplicate ids collapse to the first occurrence
		}
		ids = append(ids, s.ID)
		knownIDs[s.ID] = true
		byID[s.ID] = s
		ros = append(ros, s)
	}

	table := schedule.New(year, month, ids)
	st := &state{
		table:    table,
		roster:   ros,
		byID:     byID,
		year:     year,
		month:    month,
		days:     table.Days,
		settings: settings,
		requests: sanitizeRequests(requests, knownIDs, table.Days),
		budget:   constraint.NewOverrunBudget(),
		rng:      rng,
		warnSeen: map[string]bool{},
	}

	// Phase 0: blank start. schedule.New already allocates every cell
	// as Off and st.requests already holds the sanitized request set;
	// there is nothing further to mutate here.

	// Phase 1: requested-off is a no-op record step — later phases
	// consult st.requested directly instead of pre-marking cells.

	phase2Night(st)
	phase3Part(st)
	phase35PartRestEqualize(st)
	phase4FullTimer(st)
	phase5WorkdayGap(st)
	phase55CoverageRescue(st)
	phase58EarlyLateBalance(st)
	phase6OffDayWarnings(st)

	st.warnings = append(st.warnings, validator.Validate(ros, table, year, month, settings)...)

	return table, st.warnings
}
