package shift

import "testing"

func TestPresentAtFixedShift(t *testing.T) {
	if !PresentAt(Early, 420, 0, 0) {
		t.Error("EARLY should be present at its own start minute")
	}
	if PresentAt(Early, 960, 0, 0) {
		t.Error("EARLY should not be present at its exclusive end minute")
	}
	if PresentAt(Off, 420, 0, 0) {
		t.Error("OFF is never present")
	}
}

func TestPresentAtNightSpansMidnight(t *testing.T) {
	if !PresentAt(Night, 1065, 0, 0) {
		t.Error("NIGHT should cover the evening checkpoint")
	}
	if PresentAt(Night, 420, 0, 0) {
		t.Error("NIGHT should not cover the morning checkpoint")
	}
	if !PresentAt(NightOff, 420, 0, 0) {
		t.Error("NIGHT_OFF should cover the morning checkpoint")
	}
}

func TestPresentAtPartUsesOwnHours(t *testing.T) {
	start, end := 540, 1020 // 09:00-17:00
	if !PresentAt(Part, 600, start, end) {
		t.Error("PART should be present within its own interval")
	}
	if PresentAt(Part, 1021, start, end) {
		t.Error("PART should not be present past its own end")
	}
}

func TestIsWorkday(t *testing.T) {
	workdays := []Type{Early, Late, Night, Overtime, Part}
	for _, wt := range workdays {
		if !IsWorkday(wt) {
			t.Errorf("%s should be a workday", wt)
		}
	}
	rest := []Type{Off, NightOff}
	for _, rt := range rest {
		if IsWorkday(rt) {
			t.Errorf("%s should not be a workday", rt)
		}
	}
}
