package roster

import "testing"

func TestNormalizeFillsDefaults(t *testing.T) {
	s := &Staff{Name: "Akiko"}
	s.Normalize()

	if s.ID == "" {
		t.Error("expected a generated id")
	}
	if s.MonthlyDaysOffTarget != DefaultMonthlyDaysOffTarget {
		t.Errorf("got target %d, want %d", s.MonthlyDaysOffTarget, DefaultMonthlyDaysOffTarget)
	}
	if s.MaxDaysPerWeek != DefaultMaxDaysPerWeek {
		t.Errorf("got max days/week %d, want %d", s.MaxDaysPerWeek, DefaultMaxDaysPerWeek)
	}
	if s.StartTime != DefaultStartTime || s.EndTime != DefaultEndTime {
		t.Errorf("got hours %s-%s, want %s-%s", s.StartTime, s.EndTime, DefaultStartTime, DefaultEndTime)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	s := &Staff{ID: "staff-1", MonthlyDaysOffTarget: 12}
	s.Normalize()
	id := s.ID
	s.Normalize()
	if s.ID != id {
		t.Error("Normalize should not regenerate an existing id")
	}
	if s.MonthlyDaysOffTarget != 12 {
		t.Error("Normalize should not overwrite an explicit value")
	}
}

func TestParseHHMMDefensive(t *testing.T) {
	s := &Staff{StartTime: "garbage", EndTime: "25:99"}
	if got := s.StartMinute(); got != 9*60 {
		t.Errorf("unparseable start time should default to 09:00, got %d", got)
	}
	if got := s.EndMinute(); got != 17*60 {
		t.Errorf("unparseable end time should default to 17:00, got %d", got)
	}
}

func TestParseHHMMValid(t *testing.T) {
	s := &Staff{StartTime: "07:30", EndTime: "15:45"}
	if got := s.StartMinute(); got != 7*60+30 {
		t.Errorf("got %d", got)
	}
	if got := s.EndMinute(); got != 15*60+45 {
		t.Errorf("got %d", got)
	}
}
