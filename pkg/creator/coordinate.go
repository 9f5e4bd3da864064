// Package creator models the Creator calendar: a 364-day liturgical cycle of
// 12 months and 52 weeks carried on a 366-tick solar year, with each day split
// into 18 parts of 80 minutes. Everything in this package is a pure function
// of its arguments; out-of-range input is wrapped or clamped, never rejected.
package creator

// Calendar structure constants
const (
	DaysInYear     = 366 // ticks on the solar ring
	DaysInCycle    = 364 // days on the week ring (52 weeks)
	DaysInWeek     = 7
	WeeksInCycle   = 52
	MonthsInYear   = 12
	MaxDayOfMonth  = 31
	PartsPerDay    = 18
	MinutesPerPart = 80
	MinutesPerDay  = PartsPerDay * MinutesPerPart // 1440

	// Sabbath is the weekday number of the seventh day
	Sabbath = 7

	// DefaultStartingWeekday is the weekday of day 1 of the reference year,
	// which puts the Sabbath on every seventh dot of the weeks ring.
	DefaultStartingWeekday = 1
)

// monthLengths follows the 30/30/31 pattern in each quarter of the 364-day cycle
var monthLengths = [MonthsInYear]int{30, 30, 31, 30, 30, 31, 30, 30, 31, 30, 30, 31}

// CalendarCoordinate is a snapshot of where an instant falls in the Creator calendar
type CalendarCoordinate struct {
	DayOfYear    int  `json:"dayOfYear"`    // 1..366
	DayOfMonth   int  `json:"dayOfMonth"`   // 1..31
	Month        int  `json:"month"`        // 1..12
	WeekOfYear   int  `json:"weekOfYear"`   // 1..52
	DayOfWeek    int  `json:"dayOfWeek"`    // 1..7, 7 is the Sabbath
	PartOfDay    int  `json:"partOfDay"`    // 1..18
	MinuteOfPart int  `json:"minuteOfPart"` // 1..80
	Intercalary  bool `json:"intercalary"`  // day 365 or 366, outside the 364-day cycle
}

// NewCoordinate builds a complete coordinate from the raw fields a date
// converter produces. Month, day of month and week are derived from dayOfYear.
// A dayOfWeek outside 1..7 is replaced by the weekday implied by
// DefaultStartingWeekday.
func NewCoordinate(dayOfYear, dayOfWeek, part, minute int) CalendarCoordinate {
	c := CalendarCoordinate{
		DayOfYear:    dayOfYear,
		DayOfWeek:    dayOfWeek,
		PartOfDay:    part,
		MinuteOfPart: minute,
	}
	return c.Normalize()
}

// Normalize returns a copy with every field forced into range and the derived
// fields recomputed from DayOfYear.
func (c CalendarCoordinate) Normalize() CalendarCoordinate {
	c.DayOfYear = WrapDay(c.DayOfYear)
	if c.DayOfWeek < 1 || c.DayOfWeek > DaysInWeek {
		c.DayOfWeek = WeekdayOf(c.DayOfYear, DefaultStartingWeekday)
	}
	c.PartOfDay = clamp(c.PartOfDay, 1, PartsPerDay)
	c.MinuteOfPart = clamp(c.MinuteOfPart, 1, MinutesPerPart)
	c.Month, c.DayOfMonth, c.Intercalary = MonthDay(c.DayOfYear)
	c.WeekOfYear = WeekOfYear(c.DayOfYear)
	return c
}

// Progress returns the fraction of the current day that has elapsed, in [0,1)
func (c CalendarCoordinate) Progress() float64 {
	part := clamp(c.PartOfDay, 1, PartsPerDay)
	minute := clamp(c.MinuteOfPart, 1, MinutesPerPart)
	return float64((part-1)*MinutesPerPart+(minute-1)) / MinutesPerDay
}

// IsSabbath reports whether the coordinate falls on the seventh day
func (c CalendarCoordinate) IsSabbath() bool {
	return c.DayOfWeek == Sabbath
}

// SameDay reports whether two coordinates agree on every field coarser than
// the part of the day.
func (c CalendarCoordinate) SameDay(o CalendarCoordinate) bool {
	return c.DayOfYear == o.DayOfYear &&
		c.DayOfWeek == o.DayOfWeek &&
		c.Month == o.Month &&
		c.DayOfMonth == o.DayOfMonth &&
		c.WeekOfYear == o.WeekOfYear
}

// WrapDay maps any integer onto 1..366, so 0 is day 366 and 367 is day 1
func WrapDay(day int) int {
	d := (day - 1) % DaysInYear
	if d < 0 {
		d += DaysInYear
	}
	return d + 1
}

// WeekdayOf returns the weekday (1..7) of a day of the year when day 1 falls
// on startingWeekday.
func WeekdayOf(dayOfYear, startingWeekday int) int {
	if startingWeekday < 1 || startingWeekday > DaysInWeek {
		startingWeekday = 1
	}
	d := WrapDay(dayOfYear)
	return (d-1+startingWeekday-1)%DaysInWeek + 1
}

// MonthDay returns the month and day of month for a day of the year. The two
// days past the 364-day cycle are held on the last day of month 12 and
// reported as intercalary.
func MonthDay(dayOfYear int) (month, day int, intercalary bool) {
	d := WrapDay(dayOfYear)
	if d > DaysInCycle {
		return MonthsInYear, monthLengths[MonthsInYear-1], true
	}
	for i, n := range monthLengths {
		if d <= n {
			return i + 1, d, false
		}
		d -= n
	}
	return MonthsInYear, monthLengths[MonthsInYear-1], true
}

// MonthLength returns the number of days in a month (1..12)
func MonthLength(month int) int {
	return monthLengths[clamp(month, 1, MonthsInYear)-1]
}

// WeekOfYear returns the week (1..52) containing the day
func WeekOfYear(dayOfYear int) int {
	return clamp((WrapDay(dayOfYear)-1)/DaysInWeek+1, 1, WeeksInCycle)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
