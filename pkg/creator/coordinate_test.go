package creator

import (
	"math"
	"testing"
)

func TestWrapDay(t *testing.T) {
	tests := []struct {
		in, expected int
	}{
		{1, 1},
		{366, 366},
		{0, 366},
		{-1, 365},
		{367, 1},
		{732, 366},
		{733, 1},
	}

	for _, tt := range tests {
		if got := WrapDay(tt.in); got != tt.expected {
			t.Errorf("WrapDay(%d) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		name          string
		day, starting int
		expected      int
	}{
		{"day 1 starting on 1", 1, 1, 1},
		{"day 7 starting on 1", 7, 1, 7},
		{"day 8 starting on 1", 8, 1, 1},
		{"day 1 starting on 4", 1, 4, 4},
		{"day 4 starting on 4", 4, 4, 7},
		{"day 183 starting on 7", 183, 7, 7},
		{"invalid start falls back to 1", 7, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayOf(tt.day, tt.starting); got != tt.expected {
				t.Errorf("WeekdayOf(%d, %d) = %d, expected %d", tt.day, tt.starting, got, tt.expected)
			}
		})
	}
}

func TestMonthDay(t *testing.T) {
	tests := []struct {
		day         int
		month, dom  int
		intercalary bool
	}{
		{1, 1, 1, false},
		{30, 1, 30, false},
		{31, 2, 1, false},
		{91, 3, 31, false},
		{92, 4, 1, false},
		{364, 12, 31, false},
		{365, 12, 31, true},
		{366, 12, 31, true},
	}

	for _, tt := range tests {
		month, dom, inter := MonthDay(tt.day)
		if month != tt.month || dom != tt.dom || inter != tt.intercalary {
			t.Errorf("MonthDay(%d) = (%d, %d, %v), expected (%d, %d, %v)",
				tt.day, month, dom, inter, tt.month, tt.dom, tt.intercalary)
		}
	}
}

func TestMonthLengthsCoverCycle(t *testing.T) {
	total := 0
	for m := 1; m <= MonthsInYear; m++ {
		total += MonthLength(m)
	}
	if total != DaysInCycle {
		t.Errorf("month lengths sum to %d, expected %d", total, DaysInCycle)
	}
}

func TestNewCoordinateDerivesFields(t *testing.T) {
	c := NewCoordinate(183, 7, 5, 40)

	if c.Month != 7 || c.DayOfMonth != 1 {
		t.Errorf("day 183 -> month %d day %d, expected month 7 day 1", c.Month, c.DayOfMonth)
	}
	if c.WeekOfYear != 27 {
		t.Errorf("WeekOfYear = %d, expected 27", c.WeekOfYear)
	}
	if !c.IsSabbath() {
		t.Errorf("weekday 7 should be the Sabbath")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	c := CalendarCoordinate{}.Normalize()

	if c.DayOfYear != 366 {
		t.Errorf("zero day should wrap to 366, got %d", c.DayOfYear)
	}
	if c.PartOfDay != 1 || c.MinuteOfPart != 1 {
		t.Errorf("zero part/minute should clamp to 1, got %d/%d", c.PartOfDay, c.MinuteOfPart)
	}
	if c.DayOfWeek < 1 || c.DayOfWeek > DaysInWeek {
		t.Errorf("missing weekday not derived, got %d", c.DayOfWeek)
	}

	c = NewCoordinate(400, 9, 30, 200)
	if c.DayOfYear != 34 || c.PartOfDay != PartsPerDay || c.MinuteOfPart != MinutesPerPart {
		t.Errorf("unexpected normalization: %+v", c)
	}
	if c.DayOfWeek != WeekdayOf(34, DefaultStartingWeekday) {
		t.Errorf("invalid weekday should be derived, got %d", c.DayOfWeek)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		part, minute int
		expected     float64
	}{
		{1, 1, 0},
		{2, 1, 80.0 / 1440},
		{10, 41, (9*80 + 40) / 1440.0},
		{18, 80, 1439.0 / 1440},
	}

	for _, tt := range tests {
		c := NewCoordinate(1, 1, tt.part, tt.minute)
		if got := c.Progress(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Progress(part=%d, minute=%d) = %f, expected %f", tt.part, tt.minute, got, tt.expected)
		}
		if got := c.Progress(); got < 0 || got >= 1 {
			t.Errorf("Progress out of [0,1): %f", got)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := NewCoordinate(50, 3, 1, 1)
	b := NewCoordinate(50, 3, 17, 79)
	c := NewCoordinate(51, 4, 1, 1)

	if !a.SameDay(b) {
		t.Errorf("coordinates on the same day compared unequal")
	}
	if a.SameDay(c) {
		t.Errorf("coordinates on different days compared equal")
	}
}

func TestLeaderIndexBoundaries(t *testing.T) {
	tests := []struct {
		day, expected int
	}{
		{1, 0},
		{91, 0},
		{92, 1},
		{182, 1},
		{183, 2},
		{273, 2},
		{274, 3},
		{366, 3},
	}

	for _, tt := range tests {
		if got := LeaderIndex(tt.day); got != tt.expected {
			t.Errorf("LeaderIndex(%d) = %d, expected %d", tt.day, got, tt.expected)
		}
	}
}

func TestLeaderPlateauLengths(t *testing.T) {
	counts := [4]int{}
	for d := 1; d <= DaysInYear; d++ {
		counts[LeaderIndex(d)]++
	}
	expected := [4]int{91, 91, 91, 93}
	if counts != expected {
		t.Errorf("plateau lengths = %v, expected %v", counts, expected)
	}

	for i, l := range Leaders {
		if l.Index != i {
			t.Errorf("Leaders[%d].Index = %d", i, l.Index)
		}
		if l.LastDay != EraEnds[i] {
			t.Errorf("Leaders[%d].LastDay = %d, expected %d", i, l.LastDay, EraEnds[i])
		}
		if LeaderFor(l.FirstDay).Index != i || LeaderFor(l.LastDay).Index != i {
			t.Errorf("Leaders[%d] day range does not resolve back to itself", i)
		}
	}
}

func TestIsEraBoundary(t *testing.T) {
	for _, d := range []int{91, 182, 273, 366} {
		if !IsEraBoundary(d) {
			t.Errorf("day %d should be an era boundary", d)
		}
	}
	for _, d := range []int{1, 92, 200, 365} {
		if IsEraBoundary(d) {
			t.Errorf("day %d should not be an era boundary", d)
		}
	}
}

func TestSegmentFor(t *testing.T) {
	tests := []struct {
		part     int
		expected string
	}{
		{1, "Day"},
		{4, "Day"},
		{5, "Evening"},
		{8, "Evening"},
		{9, "Night"},
		{13, "Night"},
		{14, "Morning"},
		{18, "Morning"},
		{0, "Day"},
		{99, "Morning"},
	}

	for _, tt := range tests {
		if got := SegmentFor(tt.part).Name; got != tt.expected {
			t.Errorf("SegmentFor(%d) = %q, expected %q", tt.part, got, tt.expected)
		}
	}
}
