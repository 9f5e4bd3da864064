package wheel

import (
	"math"

	"github.com/chrissnell/creatorwheel/pkg/creator"
)

// WeekSunDriftPerDay is how far (degrees per day) the weeks ring slips
// against the sun ring because one divides the circle into 364 days and the
// other into 366. Both cycle lengths are intentional.
const WeekSunDriftPerDay = 360.0/creator.DaysInYear - 360.0/creator.DaysInCycle

// RotationSet holds one rotation per moving ring, in degrees. Every ring turns
// backwards as time advances so that the fixed markers stay in place.
type RotationSet struct {
	Sun      float64 `json:"sun"`
	Leaders  float64 `json:"leaders"`
	Weeks    float64 `json:"weeks"`
	DayParts float64 `json:"dayParts"`
	Days     float64 `json:"days"`
}

// ProgressFromDayTime converts a part (1..18) and minute (1..80) into the
// fraction of the day elapsed, using 18 × 80 = 1440 minutes per day.
func ProgressFromDayTime(part, minute int) float64 {
	return creator.NewCoordinate(1, 1, part, minute).Progress()
}

// Rotations computes every ring angle for a coordinate and a progress
// through the current day. Progress is clamped to [0,1).
func Rotations(coord creator.CalendarCoordinate, progress float64) RotationSet {
	c := coord.Normalize()
	progress = clampProgress(progress)

	return RotationSet{
		Sun:      SunRotation(c.DayOfYear, progress),
		Leaders:  -float64(creator.LeaderIndex(c.DayOfYear)) * 90,
		Weeks:    -(float64(c.DayOfYear) / creator.DaysInCycle) * 360,
		DayParts: -(float64(c.PartOfDay-1) / creator.PartsPerDay) * 360,
		Days:     -(float64(c.DayOfWeek-1) / creator.DaysInWeek) * 360,
	}
}

// SunRotation is the only ring angle that moves continuously through the day
func SunRotation(dayOfYear int, progress float64) float64 {
	d := float64(creator.WrapDay(dayOfYear))
	return -((d - 1 + clampProgress(progress)) / creator.DaysInYear) * 360
}

// RelativeWeekPhase returns the weeks ring angle minus the sun ring angle at
// the start of a day. It changes by WeekSunDriftPerDay each day.
func RelativeWeekPhase(dayOfYear int) float64 {
	c := creator.NewCoordinate(dayOfYear, 0, 1, 1)
	r := Rotations(c, 0)
	return r.Weeks - r.Sun
}

func clampProgress(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p >= 1 {
		return math.Nextafter(1, 0)
	}
	return p
}
