package creator

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// SeasonalModel selects the curve used to split a day into light and dark parts
type SeasonalModel string

const (
	// SeasonalModelDerived uses sin(((d-91)/182)*2π). Day 91 lands on the
	// 9/9 midpoint under this curve even though it is described as the
	// longest day; the curve is kept as-is until the intent is confirmed.
	SeasonalModelDerived SeasonalModel = "derived"

	// SeasonalModelSolstice uses cos(((d-91)/364)*2π), which puts the
	// longest day (12/6) on day 91 and the shortest (6/12) on day 273.
	SeasonalModelSolstice SeasonalModel = "solstice"
)

// Day-length bounds in parts
const (
	MeanDayParts  = 9
	DayPartsSwing = 3
	MinDayParts   = MeanDayParts - DayPartsSwing
	MaxDayParts   = MeanDayParts + DayPartsSwing
)

// ErrUnknownSeasonalModel is returned when a model name cannot be parsed
var ErrUnknownSeasonalModel = errors.New("unknown seasonal model")

// DayNightSplit is how many of the 18 parts of a day are light and dark
type DayNightSplit struct {
	DayParts   int `json:"dayParts"`
	NightParts int `json:"nightParts"`
}

// ParseSeasonalModel converts a configuration string to a SeasonalModel.
// An empty string selects SeasonalModelDerived.
func ParseSeasonalModel(s string) (SeasonalModel, error) {
	switch SeasonalModel(strings.ToLower(strings.TrimSpace(s))) {
	case "", SeasonalModelDerived:
		return SeasonalModelDerived, nil
	case SeasonalModelSolstice:
		return SeasonalModelSolstice, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSeasonalModel, s)
	}
}

// DayNight returns the split for a day of the year using SeasonalModelDerived
func DayNight(dayOfYear int) DayNightSplit {
	return DayNightFor(SeasonalModelDerived, dayOfYear)
}

// DayNightFor returns the split for a day of the year under the given model.
// Unknown models fall back to SeasonalModelDerived.
func DayNightFor(model SeasonalModel, dayOfYear int) DayNightSplit {
	v := SeasonalVariation(model, dayOfYear)
	day := clamp(int(math.Round(MeanDayParts+v*DayPartsSwing)), MinDayParts, MaxDayParts)
	return DayNightSplit{
		DayParts:   day,
		NightParts: PartsPerDay - day,
	}
}

// SeasonalVariation returns the raw curve value in [-1,1] for a day of the year
func SeasonalVariation(model SeasonalModel, dayOfYear int) float64 {
	d := float64(WrapDay(dayOfYear))
	switch model {
	case SeasonalModelSolstice:
		return math.Cos(((d - 91) / DaysInCycle) * 2 * math.Pi)
	default:
		return math.Sin(((d - 91) / 182) * 2 * math.Pi)
	}
}

// IsLight reports whether a part of the day (1..18) falls in the light portion of the split
func (s DayNightSplit) IsLight(part int) bool {
	return clamp(part, 1, PartsPerDay) <= s.DayParts
}
