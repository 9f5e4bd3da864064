package wheel

import "github.com/chrissnell/creatorwheel/pkg/creator"

// Weekday highlight classes. Only the Sabbath carries meaning beyond styling.
const (
	ClassNone    = ""
	ClassFirst   = "first"
	ClassSecond  = "second"
	ClassFourth  = "fourth"
	ClassSabbath = "sabbath"
)

// TickMark is one classified position on a ring
type TickMark struct {
	Index        int     `json:"index"`
	Day          int     `json:"day"`
	AngleDegrees float64 `json:"angle"`
	Weekday      int     `json:"weekday,omitempty"`
	IsCurrentDay bool    `json:"isCurrentDay"`
	IsSabbath    bool    `json:"isSabbath"`
	WeekdayClass string  `json:"weekdayClass,omitempty"`
	EraBoundary  bool    `json:"eraBoundary,omitempty"`
}

// DayPartMark is one of the 18 positions on the day-parts ring. Segment is
// the fixed display label, IsLight comes from the seasonal split; the two are
// independent and often disagree.
type DayPartMark struct {
	Part          int     `json:"part"`
	StartAngle    float64 `json:"startAngle"`
	EndAngle      float64 `json:"endAngle"`
	Segment       string  `json:"segment"`
	IsLight       bool    `json:"isLight"`
	IsCurrentPart bool    `json:"isCurrentPart"`
}

// tickAngle places index i of n evenly around the ring starting at 12 o'clock
func tickAngle(i, n int) float64 {
	return float64(i)/float64(n)*360 - 90
}

func weekdayClass(weekday int) string {
	switch weekday {
	case creator.Sabbath:
		return ClassSabbath
	case 1:
		return ClassFirst
	case 2:
		return ClassSecond
	case 4:
		return ClassFourth
	default:
		return ClassNone
	}
}

// SolarTicks classifies the 366 positions of the sun ring. Weekdays follow
// startingWeekday, the weekday of day 1.
func SolarTicks(coord creator.CalendarCoordinate, startingWeekday int) []TickMark {
	current := creator.WrapDay(coord.DayOfYear)
	ticks := make([]TickMark, creator.DaysInYear)
	for i := range ticks {
		day := i + 1
		wd := creator.WeekdayOf(day, startingWeekday)
		ticks[i] = TickMark{
			Index:        i,
			Day:          day,
			AngleDegrees: tickAngle(i, creator.DaysInYear),
			Weekday:      wd,
			IsCurrentDay: day == current,
			IsSabbath:    wd == creator.Sabbath,
			WeekdayClass: weekdayClass(wd),
			EraBoundary:  creator.IsEraBoundary(day),
		}
	}
	return ticks
}

// WeekTicks classifies the 364 dots of the weeks ring. The weekday phase is
// taken from the coordinate itself, so the dot under the current day always
// carries the coordinate's weekday. With the default starting weekday the
// Sabbath dots are exactly those with (i+1)%7 == 0.
func WeekTicks(coord creator.CalendarCoordinate) []TickMark {
	current := creator.WrapDay(coord.DayOfYear)
	weekday := coord.DayOfWeek
	if weekday < 1 || weekday > creator.DaysInWeek {
		weekday = creator.WeekdayOf(current, creator.DefaultStartingWeekday)
	}
	// weekday of dot i is ((i - (current-1) + weekday-1) mod 7) + 1
	phase := weekday - current

	ticks := make([]TickMark, creator.DaysInCycle)
	for i := range ticks {
		wd := ((i+phase)%creator.DaysInWeek+creator.DaysInWeek)%creator.DaysInWeek + 1
		ticks[i] = TickMark{
			Index:        i,
			Day:          i + 1,
			AngleDegrees: tickAngle(i, creator.DaysInCycle),
			Weekday:      wd,
			IsCurrentDay: i+1 == current,
			IsSabbath:    wd == creator.Sabbath,
			WeekdayClass: weekdayClass(wd),
		}
	}
	return ticks
}

// MonthDayMarks classifies the 31 positions of the month-days ring. Positions
// past the end of the current month are flagged by Weekday == 0.
func MonthDayMarks(coord creator.CalendarCoordinate) []TickMark {
	c := coord.Normalize()
	length := creator.MonthLength(c.Month)
	firstOfMonth := c.DayOfYear - (c.DayOfMonth - 1)

	marks := make([]TickMark, creator.MaxDayOfMonth)
	for i := range marks {
		m := TickMark{
			Index:        i,
			Day:          i + 1,
			AngleDegrees: tickAngle(i, creator.MaxDayOfMonth),
			IsCurrentDay: i+1 == c.DayOfMonth,
		}
		if i < length {
			// weekday relative to the coordinate's own weekday
			offset := (firstOfMonth + i) - c.DayOfYear
			wd := ((c.DayOfWeek-1+offset)%creator.DaysInWeek+creator.DaysInWeek)%creator.DaysInWeek + 1
			m.Weekday = wd
			m.IsSabbath = wd == creator.Sabbath
			m.WeekdayClass = weekdayClass(wd)
		}
		marks[i] = m
	}
	return marks
}

// DayPartMarks lays out the 18 parts of the day with both classifications
func DayPartMarks(coord creator.CalendarCoordinate, split creator.DayNightSplit) []DayPartMark {
	marks := make([]DayPartMark, creator.PartsPerDay)
	for i := range marks {
		part := i + 1
		start, end := SegmentSpan(i, creator.PartsPerDay)
		marks[i] = DayPartMark{
			Part:          part,
			StartAngle:    start,
			EndAngle:      end,
			Segment:       creator.SegmentFor(part).Name,
			IsLight:       split.IsLight(part),
			IsCurrentPart: part == coord.PartOfDay,
		}
	}
	return marks
}
