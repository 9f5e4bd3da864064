package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/chrissnell/creatorwheel/pkg/creator"
	"github.com/chrissnell/creatorwheel/pkg/wheel"
)

// Defaults applied to anything the configuration leaves unset
const (
	DefaultWheelName  = "default"
	DefaultLocation   = "UTC"
	DefaultFastTick   = time.Second
	DefaultSlowTick   = time.Minute
	DefaultRESTPort   = 8080
	DefaultLogMaxSize = 100
)

// ApplyDefaults fills in zero values
func ApplyDefaults(cfg *ConfigData) {
	cal := &cfg.Calendar
	if cal.StartingWeekday == 0 {
		cal.StartingWeekday = creator.DefaultStartingWeekday
	}
	if cal.SeasonalModel == "" {
		cal.SeasonalModel = string(creator.SeasonalModelDerived)
	}
	if cal.Location == "" {
		cal.Location = DefaultLocation
	}
	if cal.FastTick == 0 {
		cal.FastTick = DefaultFastTick
	}
	if cal.SlowTick == 0 {
		cal.SlowTick = DefaultSlowTick
	}

	if len(cfg.Wheels) == 0 {
		cfg.Wheels = []WheelData{{Name: DefaultWheelName}}
	}
	for i := range cfg.Wheels {
		w := &cfg.Wheels[i]
		if w.Size <= 0 {
			w.Size = wheel.DefaultSize
		}
		if w.SeasonalModel == "" {
			w.SeasonalModel = cal.SeasonalModel
		}
		if w.Location == "" {
			w.Location = cal.Location
		}
	}

	if cfg.REST != nil && cfg.REST.Port == 0 {
		cfg.REST.Port = DefaultRESTPort
	}

	if cfg.Log.File != "" && cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = DefaultLogMaxSize
	}
}

// Validate reports every problem in cfg at once
func Validate(cfg *ConfigData) error {
	var errs []error

	cal := cfg.Calendar
	if cal.StartingWeekday < 1 || cal.StartingWeekday > creator.DaysInWeek {
		errs = append(errs, fmt.Errorf("calendar.starting_weekday %d out of range 1-7", cal.StartingWeekday))
	}
	if _, err := creator.ParseSeasonalModel(cal.SeasonalModel); err != nil {
		errs = append(errs, fmt.Errorf("calendar.seasonal_model: %w", err))
	}
	if _, err := time.LoadLocation(cal.Location); err != nil {
		errs = append(errs, fmt.Errorf("calendar.location: %w", err))
	}
	if cal.DayStart < 0 || cal.DayStart >= 24*time.Hour {
		errs = append(errs, fmt.Errorf("calendar.day_start %s must be within one day", cal.DayStart))
	}
	if cal.FastTick <= 0 {
		errs = append(errs, fmt.Errorf("calendar.fast_tick must be positive"))
	}
	if cal.SlowTick < cal.FastTick {
		errs = append(errs, fmt.Errorf("calendar.slow_tick %s is shorter than fast_tick %s", cal.SlowTick, cal.FastTick))
	}

	seen := make(map[string]bool, len(cfg.Wheels))
	for i, w := range cfg.Wheels {
		if w.Name == "" {
			errs = append(errs, fmt.Errorf("wheels[%d]: name is required", i))
		} else if seen[w.Name] {
			errs = append(errs, fmt.Errorf("wheels[%d]: duplicate name %q", i, w.Name))
		}
		seen[w.Name] = true

		if _, err := creator.ParseSeasonalModel(w.SeasonalModel); err != nil {
			errs = append(errs, fmt.Errorf("wheels[%d].seasonal_model: %w", i, err))
		}
		if _, err := time.LoadLocation(w.Location); err != nil {
			errs = append(errs, fmt.Errorf("wheels[%d].location: %w", i, err))
		}
		if o := w.Override; o != nil {
			if o.DayOfYear < 1 || o.DayOfYear > creator.DaysInYear {
				errs = append(errs, fmt.Errorf("wheels[%d].override.day_of_year %d out of range 1-366", i, o.DayOfYear))
			}
			if o.DayOfWeek < 0 || o.DayOfWeek > creator.DaysInWeek {
				errs = append(errs, fmt.Errorf("wheels[%d].override.day_of_week %d out of range 0-7", i, o.DayOfWeek))
			}
			if o.PartOfDay < 0 || o.PartOfDay > creator.PartsPerDay {
				errs = append(errs, fmt.Errorf("wheels[%d].override.part_of_day %d out of range 0-18", i, o.PartOfDay))
			}
			if o.MinuteOfPart < 0 || o.MinuteOfPart > creator.MinutesPerPart {
				errs = append(errs, fmt.Errorf("wheels[%d].override.minute_of_part %d out of range 0-80", i, o.MinuteOfPart))
			}
		}
	}

	if cfg.REST != nil {
		if cfg.REST.Port < 1 || cfg.REST.Port > 65535 {
			errs = append(errs, fmt.Errorf("rest.port %d out of range", cfg.REST.Port))
		}
		if (cfg.REST.Cert == "") != (cfg.REST.Key == "") {
			errs = append(errs, fmt.Errorf("rest: cert and key must be set together"))
		}
	}

	return errors.Join(errs...)
}

// Coordinate converts an override into a normalized calendar coordinate.
// Unset fields default to part 1, minute 1 and the weekday derived from
// startingWeekday.
func (o OverrideData) Coordinate(startingWeekday int) creator.CalendarCoordinate {
	weekday := o.DayOfWeek
	if weekday == 0 {
		weekday = creator.WeekdayOf(creator.WrapDay(o.DayOfYear), startingWeekday)
	}
	return creator.NewCoordinate(o.DayOfYear, weekday, o.PartOfDay, o.MinuteOfPart)
}
