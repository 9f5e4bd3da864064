package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chrissnell/creatorwheel/pkg/creator"
	"github.com/chrissnell/creatorwheel/pkg/wheel"
)

func main() {
	var timeStr, locName, modelName string
	var dayStart time.Duration
	var startingWeekday int
	var size float64
	var profile bool

	flag.StringVar(&timeStr, "time", "", "Time to place on the wheel (RFC3339 format, e.g., 2024-06-19T12:00:00Z)")
	flag.StringVar(&locName, "location", "UTC", "IANA time zone the Creator day is counted in")
	flag.DurationVar(&dayStart, "day-start", 0, "Offset of part 1 from local midnight")
	flag.IntVar(&startingWeekday, "starting-weekday", creator.DefaultStartingWeekday, "Weekday (1-7) of day 1")
	flag.StringVar(&modelName, "model", string(creator.SeasonalModelDerived), "Seasonal model: derived or solstice")
	flag.Float64Var(&size, "size", wheel.DefaultSize, "Canvas size used for the ring radii")
	flag.BoolVar(&profile, "profile", false, "Print the whole-year day length profile instead")
	flag.Parse()

	model, err := creator.ParseSeasonalModel(modelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if profile {
		printProfile(wheel.Profile(model, startingWeekday))
		return
	}

	loc, err := time.LoadLocation(locName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading location: %v\n", err)
		os.Exit(1)
	}

	var t time.Time
	if timeStr == "" {
		t = time.Now().In(loc)
	} else {
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	src := creator.NewEquinoxSource(loc, dayStart, startingWeekday)
	coord := creator.Resolve(src, t)
	engine := wheel.NewEngine(wheel.Options{Size: size, StartingWeekday: startingWeekday, SeasonalModel: model})
	f := engine.Frame(t, coord, coord.Progress(), nil)

	c := f.Coordinate
	fmt.Printf("Creator Wheel for %s\n", t.Format(time.RFC3339))
	fmt.Printf("  Year Began:   %s\n", src.YearStart(t).Format(time.RFC3339))
	fmt.Printf("  Day of Year:  %d\n", c.DayOfYear)
	if c.Intercalary {
		fmt.Printf("  Month/Day:    intercalary (after 12/31)\n")
	} else {
		fmt.Printf("  Month/Day:    %d/%d\n", c.Month, c.DayOfMonth)
	}
	fmt.Printf("  Week:         %d, day %d", c.WeekOfYear, c.DayOfWeek)
	if c.IsSabbath() {
		fmt.Printf(" (Sabbath)")
	}
	fmt.Println()
	fmt.Printf("  Part of Day:  %d, minute %d (%s)\n", c.PartOfDay, c.MinuteOfPart, f.Segment.Name)
	fmt.Printf("  Day/Night:    %d/%d parts\n", f.Day.Split.DayParts, f.Day.Split.NightParts)
	fmt.Printf("  Leader:       %s (representative %s)\n", f.Day.Leader.Name, f.Day.Leader.Representative)
	fmt.Printf("  Rotations:\n")
	fmt.Printf("    Sun:        %.3f°\n", f.Rotations.Sun)
	fmt.Printf("    Leaders:    %.3f°\n", f.Rotations.Leaders)
	fmt.Printf("    Weeks:      %.3f°\n", f.Rotations.Weeks)
	fmt.Printf("    Days:       %.3f°\n", f.Rotations.Days)
	fmt.Printf("    Day Parts:  %.3f°\n", f.Rotations.DayParts)
}

func printProfile(p wheel.YearProfile) {
	fmt.Printf("Year Profile (%s model)\n", p.Model)
	fmt.Printf("  Day Parts:    mean %.2f, std dev %.2f, range %.0f-%.0f\n", p.MeanDayParts, p.StdDevDayParts, p.MinDayParts, p.MaxDayParts)
	fmt.Printf("  Longest Day:  %d\n", p.LongestDay)
	fmt.Printf("  Shortest Day: %d\n", p.ShortestDay)
	fmt.Printf("  Leader Days:  %v\n", p.DaysPerLeader)
	fmt.Printf("  Sabbaths:     %d\n", p.SabbathCount)
	fmt.Printf("  Week Drift:   %.6f°/day, %.2f° over the year\n", p.DriftPerDay, p.DriftOverYear)
}
