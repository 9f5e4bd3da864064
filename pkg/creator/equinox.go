package creator

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/deltat"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"
)

// EquinoxSource is the built-in Source. Day 1 of each Creator year is the
// local civil day that contains the March equinox, and each day begins
// DayStart after local midnight.
type EquinoxSource struct {
	Location        *time.Location
	DayStart        time.Duration
	StartingWeekday int
}

// NewEquinoxSource returns a source for the given location. A nil location means UTC.
func NewEquinoxSource(loc *time.Location, dayStart time.Duration, startingWeekday int) *EquinoxSource {
	if loc == nil {
		loc = time.UTC
	}
	return &EquinoxSource{
		Location:        loc,
		DayStart:        dayStart,
		StartingWeekday: startingWeekday,
	}
}

// DateToCalendar implements Source
func (s *EquinoxSource) DateToCalendar(t time.Time) (CalendarFields, bool) {
	if t.IsZero() {
		return CalendarFields{}, false
	}
	local := s.dayLocal(t)
	today := civilJD(local)

	start := s.yearStart(local.Year())
	if today < start {
		start = s.yearStart(local.Year() - 1)
	}

	day := int(math.Round(today-start)) + 1
	if day < 1 || day > DaysInYear {
		return CalendarFields{}, false
	}
	return CalendarFields{
		DayOfYear: day,
		WeekDay:   WeekdayOf(day, s.StartingWeekday),
	}, true
}

// DateToDayTime implements Source
func (s *EquinoxSource) DateToDayTime(t time.Time) (DayTime, bool) {
	if t.IsZero() {
		return DayTime{}, false
	}
	local := s.dayLocal(t)
	minutes := local.Hour()*60 + local.Minute()
	return DayTime{
		Part:   minutes/MinutesPerPart + 1,
		Minute: minutes%MinutesPerPart + 1,
	}, true
}

// FirstWeekday returns the weekday of day 1
func (s *EquinoxSource) FirstWeekday() int {
	if s.StartingWeekday < 1 || s.StartingWeekday > DaysInWeek {
		return DefaultStartingWeekday
	}
	return s.StartingWeekday
}

// EquinoxDay returns the local civil date of the March equinox in a Gregorian year
func (s *EquinoxSource) EquinoxDay(year int) time.Time {
	eq := EquinoxInstant(year).In(s.location())
	return time.Date(eq.Year(), eq.Month(), eq.Day(), 0, 0, 0, 0, s.location())
}

// EquinoxInstant returns the March equinox of a Gregorian year in UTC.
// solstice.March yields dynamical time, so ΔT is removed before conversion.
func EquinoxInstant(year int) time.Time {
	jde := solstice.March(year)
	return julian.JDToTime(jde - deltaT(jde, year)/86400)
}

// deltaT returns TT-UT in seconds
func deltaT(jde float64, year int) float64 {
	switch {
	case year >= 2010:
		return deltat.PolyAfter2000(float64(year)).Sec()
	case year >= 1620:
		return deltat.Interp10A(jde).Sec()
	case year >= 948:
		return deltat.Poly948to1600(float64(year)).Sec()
	default:
		return deltat.PolyBefore948(float64(year)).Sec()
	}
}

// YearStart returns the instant day 1 began for the Creator year containing t
func (s *EquinoxSource) YearStart(t time.Time) time.Time {
	local := s.dayLocal(t)
	start := s.EquinoxDay(local.Year())
	if civilJD(local) < civilJD(start) {
		start = s.EquinoxDay(local.Year() - 1)
	}
	return start.Add(s.DayStart)
}

// dayLocal shifts t so that the start of the Creator day lands on local midnight
func (s *EquinoxSource) dayLocal(t time.Time) time.Time {
	return t.In(s.location()).Add(-s.DayStart)
}

func (s *EquinoxSource) yearStart(year int) float64 {
	return civilJD(s.EquinoxDay(year))
}

func (s *EquinoxSource) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// civilJD returns the Julian day at the start of t's civil date, ignoring the time of day
func civilJD(t time.Time) float64 {
	return julian.CalendarGregorianToJD(t.Year(), int(t.Month()), float64(t.Day()))
}
