package wheel

import (
	"math"
	"testing"

	"github.com/chrissnell/creatorwheel/pkg/creator"
)

const epsilon = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRotationsDayOnePartOne(t *testing.T) {
	c := creator.NewCoordinate(1, 1, 1, 1)
	r := Rotations(c, c.Progress())

	if creator.LeaderIndex(c.DayOfYear) != 0 {
		t.Errorf("leader index = %d, expected 0", creator.LeaderIndex(c.DayOfYear))
	}
	if !approxEqual(r.Sun, 0, epsilon) {
		t.Errorf("Sun = %f, expected 0", r.Sun)
	}
	if r.DayParts != 0 {
		t.Errorf("DayParts = %f, expected 0", r.DayParts)
	}
	if r.Leaders != 0 {
		t.Errorf("Leaders = %f, expected 0", r.Leaders)
	}
	if r.Days != 0 {
		t.Errorf("Days = %f, expected 0", r.Days)
	}
}

func TestRotationsSabbathScenario(t *testing.T) {
	c := creator.NewCoordinate(183, 7, 1, 1)
	r := Rotations(c, 0)

	if !approxEqual(r.Days, -(6.0/7)*360, epsilon) {
		t.Errorf("Days = %f, expected %f", r.Days, -(6.0/7)*360)
	}
	if r.Leaders != -180 {
		t.Errorf("Leaders = %f, expected -180", r.Leaders)
	}

	ticks := WeekTicks(c)
	if !ticks[182].IsSabbath {
		t.Errorf("week tick 182 should be a Sabbath")
	}
	if !ticks[182].IsCurrentDay {
		t.Errorf("week tick 182 should be the current day")
	}
}

func TestRotationFormulas(t *testing.T) {
	tests := []struct {
		name     string
		coord    creator.CalendarCoordinate
		progress float64
		expected RotationSet
	}{
		{
			name:     "mid year",
			coord:    creator.NewCoordinate(200, 3, 10, 1),
			progress: 0.5,
			expected: RotationSet{
				Sun:      -((199 + 0.5) / 366.0) * 360,
				Leaders:  -180,
				Weeks:    -(200 / 364.0) * 360,
				DayParts: -(9 / 18.0) * 360,
				Days:     -(2 / 7.0) * 360,
			},
		},
		{
			name:     "last tick",
			coord:    creator.NewCoordinate(366, 5, 18, 80),
			progress: 0,
			expected: RotationSet{
				Sun:      -(365 / 366.0) * 360,
				Leaders:  -270,
				Weeks:    -(366 / 364.0) * 360,
				DayParts: -(17 / 18.0) * 360,
				Days:     -(4 / 7.0) * 360,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rotations(tt.coord, tt.progress)
			if !approxEqual(r.Sun, tt.expected.Sun, epsilon) ||
				!approxEqual(r.Leaders, tt.expected.Leaders, epsilon) ||
				!approxEqual(r.Weeks, tt.expected.Weeks, epsilon) ||
				!approxEqual(r.DayParts, tt.expected.DayParts, epsilon) ||
				!approxEqual(r.Days, tt.expected.Days, epsilon) {
				t.Errorf("Rotations = %+v, expected %+v", r, tt.expected)
			}
		})
	}
}

func TestSunRotationContinuity(t *testing.T) {
	perDay := 360.0 / creator.DaysInYear

	for d := 1; d < creator.DaysInYear; d++ {
		start := SunRotation(d, 0)
		next := SunRotation(d+1, 0)
		if !approxEqual(next-start, -perDay, epsilon) {
			t.Fatalf("day %d -> %d: step %f, expected %f", d, d+1, next-start, -perDay)
		}

		// The end of one day flows into the start of the next with no jump
		late := SunRotation(d, 0.999)
		if gap := next - late; gap > 0 || gap < -perDay*0.002 {
			t.Fatalf("day %d: gap between progress 0.999 and next day = %f", d, gap)
		}
	}

	// Year wrap lands on the same angle modulo 360
	end := SunRotation(creator.DaysInYear, 0)
	wrapped := SunRotation(1, 0)
	diff := NormalizeAngle(wrapped - end)
	if !approxEqual(diff, NormalizeAngle(-perDay), 1e-6) {
		t.Errorf("year wrap step = %f, expected %f (mod 360)", diff, NormalizeAngle(-perDay))
	}
}

func TestSunRotationMonotoneWithinDay(t *testing.T) {
	prev := SunRotation(42, 0)
	for part := 1; part <= creator.PartsPerDay; part++ {
		for minute := 1; minute <= creator.MinutesPerPart; minute++ {
			p := ProgressFromDayTime(part, minute)
			r := SunRotation(42, p)
			if r > prev {
				t.Fatalf("sun rotation went backwards at part %d minute %d: %f > %f", part, minute, r, prev)
			}
			prev = r
		}
	}
}

func TestStepRingsOnlyChangeOnTheirPeriod(t *testing.T) {
	c := creator.NewCoordinate(100, 2, 7, 1)
	a := Rotations(c, 0.1)
	b := Rotations(c, 0.9)
	if a.Leaders != b.Leaders || a.Weeks != b.Weeks || a.Days != b.Days || a.DayParts != b.DayParts {
		t.Errorf("step rings moved within the same part: %+v vs %+v", a, b)
	}
	if a.Sun == b.Sun {
		t.Errorf("sun ring did not move with progress")
	}
}

func TestProgressIsClamped(t *testing.T) {
	c := creator.NewCoordinate(10, 1, 1, 1)
	if Rotations(c, -5).Sun != Rotations(c, 0).Sun {
		t.Errorf("negative progress should clamp to 0")
	}
	if r := Rotations(c, math.NaN()).Sun; math.IsNaN(r) {
		t.Errorf("NaN progress produced a NaN angle")
	}
	if r := Rotations(c, 3).Sun; r > SunRotation(10, 0.99) || r < SunRotation(11, 0)-1e-9 {
		t.Errorf("progress >= 1 should stay inside the day, got %f", r)
	}
}

func TestRotationsNeverNaN(t *testing.T) {
	for _, d := range []int{-400, -1, 0, 1, 366, 367, 10000} {
		r := Rotations(creator.CalendarCoordinate{DayOfYear: d}, 0.5)
		for _, v := range []float64{r.Sun, r.Leaders, r.Weeks, r.DayParts, r.Days} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("day %d produced non-finite rotation %+v", d, r)
			}
		}
	}
}

// The weeks ring (364) and the sun ring (366) are meant to slip against each
// other. This pins the rate so nobody normalizes the two cycles by accident.
func TestWeekSunDriftRegression(t *testing.T) {
	expected := 360.0/366 - 360.0/364 // ≈ -0.0054044 degrees per day
	if !approxEqual(WeekSunDriftPerDay, expected, 1e-12) {
		t.Fatalf("WeekSunDriftPerDay = %.10f, expected %.10f", WeekSunDriftPerDay, expected)
	}
	if !approxEqual(WeekSunDriftPerDay, -0.0054044, 1e-6) {
		t.Errorf("WeekSunDriftPerDay = %.7f, expected about -0.0054044", WeekSunDriftPerDay)
	}

	for d := 1; d < creator.DaysInYear; d++ {
		step := RelativeWeekPhase(d+1) - RelativeWeekPhase(d)
		if !approxEqual(step, WeekSunDriftPerDay, 1e-9) {
			t.Fatalf("day %d: relative phase step %.10f, expected %.10f", d, step, WeekSunDriftPerDay)
		}
	}

	// Over a full year the rings end about two days' worth of week ring apart
	overYear := RelativeWeekPhase(creator.DaysInYear) - RelativeWeekPhase(1)
	if !approxEqual(overYear, WeekSunDriftPerDay*365, 1e-9) {
		t.Errorf("drift over year = %f, expected %f", overYear, WeekSunDriftPerDay*365)
	}
}
