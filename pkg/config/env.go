package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "CREATORWHEEL_"

// envOverlay lists the settings that may be overridden from the environment.
// Durations stay strings so an explicit "0s" can be told apart from unset.
type envOverlay struct {
	StartingWeekday int    `env:"STARTING_WEEKDAY"`
	SeasonalModel   string `env:"SEASONAL_MODEL"`
	DayStart        string `env:"DAY_START"`
	Location        string `env:"LOCATION"`
	FastTick        string `env:"FAST_TICK"`
	SlowTick        string `env:"SLOW_TICK"`
	RESTListenAddr  string `env:"REST_LISTEN_ADDR"`
	RESTPort        int    `env:"REST_PORT"`
	LogFile         string `env:"LOG_FILE"`
}

// ParseEnv loads prefixed environment variables into target.
func ParseEnv(target any) error {
	return parseEnv(target, nil)
}

func parseEnv(target any, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv overlays CREATORWHEEL_* variables from the process environment
func ApplyEnv(cfg *ConfigData) error {
	return applyEnv(cfg, nil)
}

func applyEnv(cfg *ConfigData, environ map[string]string) error {
	var o envOverlay
	if err := parseEnv(&o, environ); err != nil {
		return err
	}

	if o.StartingWeekday != 0 {
		cfg.Calendar.StartingWeekday = o.StartingWeekday
	}
	if o.SeasonalModel != "" {
		cfg.Calendar.SeasonalModel = o.SeasonalModel
	}
	if o.Location != "" {
		cfg.Calendar.Location = o.Location
	}

	var err error
	if o.DayStart != "" {
		if cfg.Calendar.DayStart, err = parseDuration(EnvPrefix+"DAY_START", o.DayStart); err != nil {
			return err
		}
	}
	if o.FastTick != "" {
		if cfg.Calendar.FastTick, err = parseDuration(EnvPrefix+"FAST_TICK", o.FastTick); err != nil {
			return err
		}
	}
	if o.SlowTick != "" {
		if cfg.Calendar.SlowTick, err = parseDuration(EnvPrefix+"SLOW_TICK", o.SlowTick); err != nil {
			return err
		}
	}

	if o.RESTListenAddr != "" || o.RESTPort != 0 {
		if cfg.REST == nil {
			cfg.REST = &RESTServerData{}
		}
		if o.RESTListenAddr != "" {
			cfg.REST.ListenAddr = o.RESTListenAddr
		}
		if o.RESTPort != 0 {
			cfg.REST.Port = o.RESTPort
		}
	}

	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	return nil
}
