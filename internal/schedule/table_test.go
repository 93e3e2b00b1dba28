package schedule

import (
	"testing"

	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/shift"
)

func TestNewTableStartsBlank(t *testing.T) {
	tbl := New(2025, 4, []string{"a", "b"})
	if tbl.Days != 30 {
		t.Fatalf("expected 30 days in April, got %d", tbl.Days)
	}
	for _, id := range tbl.StaffIDs() {
		for day := 1; day <= tbl.Days; day++ {
			if got := tbl.Get(id, day); got != shift.Off {
				t.Fatalf("cell (%s,%d) = %s, want OFF", id, day, got)
			}
		}
	}
}

func TestGetOutOfRangeDefensive(t *testing.T) {
	tbl := New(2025, 4, []string{"a"})
	if got := tbl.Get("a", 0); got != shift.Off {
		t.Errorf("day 0 should defensively return OFF, got %s", got)
	}
	if got := tbl.Get("a", 31); got != shift.Off {
		t.Errorf("day 31 of April should defensively return OFF, got %s", got)
	}
	if got := tbl.Get("missing", 1); got != shift.Off {
		t.Errorf("unknown staff id should defensively return OFF, got %s", got)
	}
}

func TestSetAndGetRoundTrip(t *testing.T) {
	tbl := New(2025, 4, []string{"a"})
	tbl.Set("a", 5, shift.Night)
	if got := tbl.Get("a", 5); got != shift.Night {
		t.Errorf("got %s, want NIGHT", got)
	}
}

func TestRowIsACopy(t *testing.T) {
	tbl := New(2025, 4, []string{"a"})
	tbl.Set("a", 1, shift.Early)
	row := tbl.Row("a")
	row[0] = shift.Late
	if got := tbl.Get("a", 1); got != shift.Early {
		t.Errorf("mutating Row() copy leaked into the table: got %s", got)
	}
}

func TestCountAtCountsNightAndNightOff(t *testing.T) {
	tbl := New(2025, 4, []string{"a", "b"})
	tbl.Set("a", 10, shift.Night)
	tbl.Set("b", 10, shift.NightOff)
	byID := map[string]*roster.Staff{
		"a": {ID: "a", StartTime: "09:00", EndTime: "17:00"},
		"b": {ID: "b", StartTime: "09:00", EndTime: "17:00"},
	}
	if got := CountAtCheckpoint(tbl, 10, Evening, byID); got != 1 {
		t.Errorf("evening count = %d, want 1 (only NIGHT present)", got)
	}
	if got := CountAtCheckpoint(tbl, 10, Morning, byID); got != 1 {
		t.Errorf("morning count = %d, want 1 (only NIGHT_OFF present)", got)
	}
}

func TestRequiredFloorSundayRelaxation(t *testing.T) {
	if got := RequiredFloor(Morning, true, true); got != 3 {
		t.Errorf("relaxed Sunday morning floor = %d, want 3", got)
	}
	if got := RequiredFloor(Evening, true, true); got != 4 {
		t.Errorf("Sunday evening floor must stay 4, got %d", got)
	}
	if got := RequiredFloor(Morning, true, false); got != 4 {
		t.Errorf("exhausted relaxation budget should require 4, got %d", got)
	}
	if got := RequiredFloor(Morning, false, true); got != 4 {
		t.Errorf("weekday floor must stay 4 regardless of relaxation, got %d", got)
	}
}

func TestWorkGap(t *testing.T) {
	tbl := New(2025, 4, []string{"a"}) // 30 days
	s := &roster.Staff{ID: "a", MonthlyDaysOffTarget: 9}
	for day := 1; day <= 21; day++ {
		tbl.Set("a", day, shift.Early)
	}
	if got := TargetWorkdays(tbl, "a", s); got != 21 {
		t.Errorf("target workdays = %d, want 21", got)
	}
	if got := WorkGap(tbl, "a", s); got != 0 {
		t.Errorf("work gap = %d, want 0", got)
	}
}
