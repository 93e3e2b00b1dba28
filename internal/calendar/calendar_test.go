package calendar

import "testing"

func TestDaysInMonth(t *testing.T) {
	cases := map[[2]int]int{
		{2025, 1}:  31,
		{2025, 2}:  28,
		{2024, 2}:  29, // leap year
		{2025, 4}:  30,
		{2025, 12}: 31,
	}
	for ym, want := range cases {
		if got := DaysInMonth(ym[0], ym[1]); got != want {
			t.Errorf("DaysInMonth(%d,%d) = %d, want %d", ym[0], ym[1], got, want)
		}
	}
}

func TestIsSunday(t *testing.T) {
	// 2025-03-02 is a Sunday.
	if !IsSunday(2025, 3, 2) {
		t.Error("expected 2025-03-02 to be a Sunday")
	}
	if IsSunday(2025, 3, 3) {
		t.Error("expected 2025-03-03 (Monday) to not be a Sunday")
	}
}

func TestIsFriSatSun(t *testing.T) {
	// 2025-03-07 Fri, 03-08 Sat, 03-09 Sun, 03-10 Mon
	for day := 7; day <= 9; day++ {
		if !IsFriSatSun(2025, 3, day) {
			t.Errorf("expected 2025-03-%02d to be Fri/Sat/Sun", day)
		}
	}
	if IsFriSatSun(2025, 3, 10) {
		t.Error("expected 2025-03-10 (Monday) to not be Fri/Sat/Sun")
	}
}
