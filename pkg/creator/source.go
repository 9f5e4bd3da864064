package creator

import "time"

// CalendarFields are the coarse fields a date converter reports for an instant
type CalendarFields struct {
	DayOfYear int `json:"dayOfYear"`
	WeekDay   int `json:"weekDay"`
}

// DayTime locates an instant inside its day
type DayTime struct {
	Part   int `json:"part"`   // 1..18
	Minute int `json:"minute"` // 1..80
}

// Source converts wall-clock instants into raw Creator calendar fields.
// Implementations return ok=false when they cannot place the instant.
type Source interface {
	DateToCalendar(t time.Time) (CalendarFields, bool)
	DateToDayTime(t time.Time) (DayTime, bool)
}

// weekdayAnchor is implemented by sources that know the weekday of day 1
type weekdayAnchor interface {
	FirstWeekday() int
}

// Resolve asks the source for every field of the coordinate at t. Missing or
// out-of-range results fall back to day 1 and part 1 so that nothing
// undefined reaches the angle math.
func Resolve(src Source, t time.Time) CalendarCoordinate {
	var fields CalendarFields
	if src != nil {
		if f, ok := src.DateToCalendar(t); ok {
			fields = f
		}
	}
	if fields.DayOfYear < 1 || fields.DayOfYear > DaysInYear {
		fields.DayOfYear = 1
		fields.WeekDay = 0
		if a, ok := src.(weekdayAnchor); ok {
			fields.WeekDay = WeekdayOf(1, a.FirstWeekday())
		}
	}

	dt := ResolveDayTime(src, t)
	return NewCoordinate(fields.DayOfYear, fields.WeekDay, dt.Part, dt.Minute)
}

// ResolveDayTime asks the source for the part and minute at t, substituting
// part 1 minute 1 for anything missing.
func ResolveDayTime(src Source, t time.Time) DayTime {
	dt := DayTime{Part: 1, Minute: 1}
	if src == nil {
		return dt
	}
	got, ok := src.DateToDayTime(t)
	if !ok {
		return dt
	}
	if got.Part >= 1 && got.Part <= PartsPerDay {
		dt.Part = got.Part
		if got.Minute >= 1 && got.Minute <= MinutesPerPart {
			dt.Minute = got.Minute
		}
	}
	return dt
}

// FixedSource always reports the same coordinate. It backs the override used
// for screenshots and deterministic tests.
type FixedSource struct {
	Coordinate CalendarCoordinate
}

// DateToCalendar implements Source
func (f FixedSource) DateToCalendar(time.Time) (CalendarFields, bool) {
	return CalendarFields{DayOfYear: f.Coordinate.DayOfYear, WeekDay: f.Coordinate.DayOfWeek}, true
}

// DateToDayTime implements Source
func (f FixedSource) DateToDayTime(time.Time) (DayTime, bool) {
	return DayTime{Part: f.Coordinate.PartOfDay, Minute: f.Coordinate.MinuteOfPart}, true
}
