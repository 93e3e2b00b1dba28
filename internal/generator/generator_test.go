package generator

import (
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carefacility/shiftgen/internal/calendar"
	"github.com/carefacility/shiftgen/internal/config"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/shift"
	"github.com/carefacility/shiftgen/internal/validator"
)

func fullTimer(id, name string, night roster.NightCapability) *roster.Staff {
	return &roster.Staff{ID: id, Name: name, Kind: roster.Full, Night: night}
}

func partTimer(id, name string) *roster.Staff {
	return &roster.Staff{ID: id, Name: name, Kind: roster.PartTime, StartTime: "09:00", EndTime: "13:00"}
}

func TestGenerateEmptyRosterNeverPanics(t *testing.T) {
	require.NotPanics(t, func() {
		table, warnings := Generate(nil, 2026, 3, nil, config.Default(), mathrand.New(mathrand.NewSource(1)))
		require.NotNil(t, table)
		assert.Equal(t, 31, table.Days)
		// with nobody to place, every required slot goes unmet every day.
		assert.NotEmpty(t, warnings)
	})
}

func TestGenerateSingleFullTimerNoNightProducesNoInvalidAssignments(t *testing.T) {
	staff := []*roster.Staff{fullTimer("s1", "Ito", roster.NightNone)}
	table, warnings := Generate(staff, 2026, 4, nil, config.Default(), mathrand.New(mathrand.NewSource(7)))
	require.NotNil(t, table)

	for day := 1; day <= table.Days; day++ {
		assert.NotEqual(t, shift.Night, table.Get("s1", day), "a NightNone staff member must never be placed on NIGHT")
	}
	// a single staff member can never satisfy the 4-person daily floor,
	// so coverage warnings are expected; eligibility warnings are not.
	for _, w := range warnings {
		assert.NotContains(t, w, "is not eligible for night shifts")
	}
}

func TestGenerateFourPersonMinimalViableWithSundayRelaxation(t *testing.T) {
	staff := []*roster.Staff{
		fullTimer("s1", "A", roster.NightAll),
		fullTimer("s2", "B", roster.NightAll),
		fullTimer("s3", "C", roster.NightWeekdayOnly),
		fullTimer("s4", "D", roster.NightNone),
	}
	table, warnings := Generate(staff, 2026, 2, nil, config.Default(), mathrand.New(mathrand.NewSource(42)))
	require.NotNil(t, table)
	assert.NotNil(t, warnings)

	// every cell must hold a value from the closed shift set; nothing
	// should ever leave the table in an unrecognized state.
	for _, id := range table.StaffIDs() {
		for day := 1; day <= table.Days; day++ {
			v := table.Get(id, day)
			assert.GreaterOrEqual(t, int(v), int(shift.Off))
			assert.LessOrEqual(t, int(v), int(shift.Part))
		}
	}
}

func TestGeneratePartTimerNeverExceedsTwoConsecutiveWorkdays(t *testing.T) {
	staff := []*roster.Staff{
		fullTimer("f1", "Full1", roster.NightAll),
		fullTimer("f2", "Full2", roster.NightAll),
		fullTimer("f3", "Full3", roster.NightNone),
		fullTimer("f4", "Full4", roster.NightNone),
		partTimer("p1", "Part1"),
		partTimer("p2", "Part2"),
	}
	staff[4].MaxConsecutiveOverride = 2
	staff[5].MaxConsecutiveOverride = 2
	table, _ := Generate(staff, 2026, 5, nil, config.Default(), mathrand.New(mathrand.NewSource(99)))
	require.NotNil(t, table)

	for _, id := range []string{"p1", "p2"} {
		run := 0
		for day := 1; day <= table.Days; day++ {
			if shift.IsWorkday(table.Get(id, day)) {
				run++
				assert.LessOrEqual(t, run, 2, "part-timer %s exceeded the 2-consecutive-workday cap ending day %d", id, day)
			} else {
				run = 0
			}
		}
	}
}

func TestGenerateWeekdayOnlyNightStaffNeverPlacedFriSatSun(t *testing.T) {
	staff := []*roster.Staff{
		fullTimer("n1", "Weekday Night", roster.NightWeekdayOnly),
		fullTimer("f2", "Full2", roster.NightAll),
		fullTimer("f3", "Full3", roster.NightNone),
		fullTimer("f4", "Full4", roster.NightNone),
	}
	table, _ := Generate(staff, 2026, 6, nil, config.Default(), mathrand.New(mathrand.NewSource(5)))
	require.NotNil(t, table)

	for day := 1; day <= table.Days; day++ {
		if table.Get("n1", day) != shift.Night {
			continue
		}
		assert.False(t, calendar.IsFriSatSun(table.Year, table.Month, day),
			"weekday-only night staff placed on NIGHT on a forbidden Fri/Sat/Sun day %d", day)
	}
}

func TestGenerateOverrunBudgetNeverExceedsTwoPerStaff(t *testing.T) {
	staff := []*roster.Staff{
		fullTimer("o1", "Overrunner", roster.NightNone),
		fullTimer("f2", "Full2", roster.NightAll),
		fullTimer("f3", "Full3", roster.NightAll),
		fullTimer("f4", "Full4", roster.NightNone),
	}
	staff[0].AllowConsecutivePlusOne = true

	_, warnings := Generate(staff, 2026, 7, nil, config.Default(), mathrand.New(mathrand.NewSource(13)))
	for _, w := range warnings {
		assert.NotContains(t, w, "more than the 2 permitted this month")
	}
}

func TestGenerateIsDeterministicForAFixedSeed(t *testing.T) {
	staff := []*roster.Staff{
		fullTimer("s1", "A", roster.NightAll),
		fullTimer("s2", "B", roster.NightAll),
		fullTimer("s3", "C", roster.NightWeekdayOnly),
		fullTimer("s4", "D", roster.NightNone),
		partTimer("p1", "E"),
	}
	clone := func() []*roster.Staff {
		out := make([]*roster.Staff, len(staff))
		for i, s := range staff {
			cp := *s
			out[i] = &cp
		}
		return out
	}

	tableA, warningsA := Generate(clone(), 2026, 9, nil, config.Default(), mathrand.New(mathrand.NewSource(2024)))
	tableB, warningsB := Generate(clone(), 2026, 9, nil, config.Default(), mathrand.New(mathrand.NewSource(2024)))

	require.Equal(t, tableA.Days, tableB.Days)
	for _, id := range tableA.StaffIDs() {
		assert.Equal(t, tableA.Row(id), tableB.Row(id), "row for %s diverged across runs with the same seed", id)
	}
	assert.Equal(t, warningsA, warningsB)
}

func TestGenerateHonorsRequestedDayOff(t *testing.T) {
	staff := []*roster.Staff{
		fullTimer("s1", "A", roster.NightAll),
		fullTimer("s2", "B", roster.NightAll),
		fullTimer("s3", "C", roster.NightNone),
		fullTimer("s4", "D", roster.NightNone),
	}
	requests := map[string]map[int]bool{"s1": {10: true}}
	table, _ := Generate(staff, 2026, 8, requests, config.Default(), mathrand.New(mathrand.NewSource(3)))

	got := table.Get("s1", 10)
	assert.True(t, got == shift.Off || got == shift.NightOff,
		"staff requesting day 10 off should not be placed on a working shift, got %s", got)
}

func TestGenerateEveryNightIsFollowedByNightOff(t *testing.T) {
	staff := []*roster.Staff{
		fullTimer("s1", "A", roster.NightAll),
		fullTimer("s2", "B", roster.NightAll),
		fullTimer("s3", "C", roster.NightWeekdayOnly),
		fullTimer("s4", "D", roster.NightNone),
		fullTimer("s5", "E", roster.NightAll),
		fullTimer("s6", "F", roster.NightNone),
	}
	table, _ := Generate(staff, 2026, 10, nil, config.Default(), mathrand.New(mathrand.NewSource(11)))
	require.NotNil(t, table)

	for _, id := range table.StaffIDs() {
		for day := 1; day < table.Days; day++ {
			if table.Get(id, day) != shift.Night {
				continue
			}
			assert.Equal(t, shift.NightOff, table.Get(id, day+1),
				"staff %s: NIGHT on day %d not followed by NIGHT_OFF on day %d", id, day, day+1)
		}
	}
}

func TestGenerateOvertimeNeverExceedsSixPerStaffPerMonth(t *testing.T) {
	staff := []*roster.Staff{
		fullTimer("s1", "A", roster.NightAll),
		fullTimer("s2", "B", roster.NightAll),
		fullTimer("s3", "C", roster.NightNone),
		fullTimer("s4", "D", roster.NightNone),
	}
	for _, s := range staff {
		s.CanOvertime = true
	}
	table, _ := Generate(staff, 2026, 1, nil, config.Default(), mathrand.New(mathrand.NewSource(17)))
	require.NotNil(t, table)

	for _, id := range table.StaffIDs() {
		count := 0
		for day := 1; day <= table.Days; day++ {
			if table.Get(id, day) == shift.Overtime {
				count++
			}
		}
		assert.LessOrEqual(t, count, 6, "staff %s exceeded the 6 OVERTIME cells per month cap", id)
	}
}

func TestGenerateValidateRoundTripStaysWithinEmittedWarnings(t *testing.T) {
	staff := []*roster.Staff{
		fullTimer("s1", "A", roster.NightAll),
		fullTimer("s2", "B", roster.NightAll),
		fullTimer("s3", "C", roster.NightWeekdayOnly),
		fullTimer("s4", "D", roster.NightNone),
		partTimer("p1", "E"),
	}
	settings := config.Default()
	table, warnings := Generate(staff, 2026, 11, nil, settings, mathrand.New(mathrand.NewSource(23)))
	require.NotNil(t, table)

	rechecked := validator.Validate(staff, table, table.Year, table.Month, settings.WithDefaults())
	assert.Subset(t, warnings, rechecked,
		"re-validating a freshly generated table surfaced a warning Generate itself never emitted")
}

func TestGenerateIgnoresUnknownStaffAndOutOfRangeRequests(t *testing.T) {
	staff := []*roster.Staff{fullTimer("s1", "A", roster.NightNone)}
	requests := map[string]map[int]bool{
		"ghost": {1: true},
		"s1":    {0: true, 9999: true},
	}
	require.NotPanics(t, func() {
		Generate(staff, 2026, 3, requests, config.Default(), mathrand.New(mathrand.NewSource(1)))
	})
}
