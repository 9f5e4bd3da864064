package wheel

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/chrissnell/creatorwheel/pkg/creator"
)

// YearProfile summarizes a whole Creator year under one seasonal model
type YearProfile struct {
	Model          creator.SeasonalModel `json:"model"`
	MeanDayParts   float64               `json:"meanDayParts"`
	StdDevDayParts float64               `json:"stdDevDayParts"`
	MinDayParts    float64               `json:"minDayParts"`
	MaxDayParts    float64               `json:"maxDayParts"`
	LongestDay     int                   `json:"longestDay"`  // first day reaching MaxDayParts
	ShortestDay    int                   `json:"shortestDay"` // first day reaching MinDayParts
	DaysPerLeader  [4]int                `json:"daysPerLeader"`
	SabbathCount   int                   `json:"sabbathCount"`
	DriftPerDay    float64               `json:"driftPerDay"` // fitted slope of weeks-minus-sun phase
	DriftOverYear  float64               `json:"driftOverYear"`
}

// Profile walks every day of the solar year and fits the week/sun drift
func Profile(model creator.SeasonalModel, startingWeekday int) YearProfile {
	n := creator.DaysInYear
	days := make([]float64, n)
	dayParts := make([]float64, n)
	phase := make([]float64, n)

	p := YearProfile{Model: model}
	for i := 0; i < n; i++ {
		d := i + 1
		days[i] = float64(d)
		dayParts[i] = float64(creator.DayNightFor(model, d).DayParts)
		phase[i] = RelativeWeekPhase(d)
		p.DaysPerLeader[creator.LeaderIndex(d)]++
		if creator.WeekdayOf(d, startingWeekday) == creator.Sabbath {
			p.SabbathCount++
		}
	}

	p.MeanDayParts, p.StdDevDayParts = stat.MeanStdDev(dayParts, nil)
	p.MinDayParts = floats.Min(dayParts)
	p.MaxDayParts = floats.Max(dayParts)
	p.LongestDay = floats.MaxIdx(dayParts) + 1
	p.ShortestDay = floats.MinIdx(dayParts) + 1

	_, slope := stat.LinearRegression(days, phase, nil, false)
	p.DriftPerDay = slope
	p.DriftOverYear = slope * float64(n-1)
	return p
}
