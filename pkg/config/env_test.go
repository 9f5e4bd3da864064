package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplyEnvOverrides(t *testing.T) {
	cfg := &ConfigData{
		Calendar: CalendarData{StartingWeekday: 1, SeasonalModel: "derived", Location: "UTC"},
	}

	err := applyEnv(cfg, map[string]string{
		"CREATORWHEEL_STARTING_WEEKDAY": "4",
		"CREATORWHEEL_SEASONAL_MODEL":   "solstice",
		"CREATORWHEEL_DAY_START":        "0s",
		"CREATORWHEEL_SLOW_TICK":        "30s",
		"CREATORWHEEL_REST_PORT":        "9090",
		"CREATORWHEEL_LOG_FILE":         "/var/log/wheel.log",
		"UNRELATED_PORT":                "1",
	})
	require.NoError(t, err)

	require.Equal(t, 4, cfg.Calendar.StartingWeekday)
	require.Equal(t, "solstice", cfg.Calendar.SeasonalModel)
	require.Equal(t, "UTC", cfg.Calendar.Location, "unset variables leave the file value alone")
	require.Equal(t, time.Duration(0), cfg.Calendar.DayStart)
	require.Equal(t, 30*time.Second, cfg.Calendar.SlowTick)
	require.NotNil(t, cfg.REST, "a REST override enables the server")
	require.Equal(t, 9090, cfg.REST.Port)
	require.Equal(t, "/var/log/wheel.log", cfg.Log.File)
}

func TestApplyEnvEmpty(t *testing.T) {
	cfg := &ConfigData{Calendar: CalendarData{StartingWeekday: 2}}
	require.NoError(t, applyEnv(cfg, map[string]string{}))
	require.Equal(t, 2, cfg.Calendar.StartingWeekday)
	require.Nil(t, cfg.REST)
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"CREATORWHEEL_STARTING_WEEKDAY": "thursday",
		"CREATORWHEEL_FAST_TICK":        "quickly",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			err := applyEnv(&ConfigData{}, map[string]string{k: v})
			require.Error(t, err)
		})
	}
}
