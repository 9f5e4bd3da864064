package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrissnell/creatorwheel/pkg/creator"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
calendar:
  starting_weekday: 1
  seasonal_model: solstice
  day_start: 6h
  location: UTC
  fast_tick: 500ms
wheels:
  - name: lobby
    size: 800
  - name: poster
    override:
      day_of_year: 183
      part_of_day: 5
rest:
  listen-addr: 127.0.0.1
log:
  file: /tmp/creatorwheel.log
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestYAMLProviderLoadConfig(t *testing.T) {
	p := NewYAMLProvider(writeConfig(t, sampleConfig))

	cfg, err := p.LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 1, cfg.Calendar.StartingWeekday)
	require.Equal(t, "solstice", cfg.Calendar.SeasonalModel)
	require.Equal(t, 6*time.Hour, cfg.Calendar.DayStart)
	require.Equal(t, 500*time.Millisecond, cfg.Calendar.FastTick)
	require.Equal(t, DefaultSlowTick, cfg.Calendar.SlowTick)

	require.Len(t, cfg.Wheels, 2)
	require.Equal(t, "lobby", cfg.Wheels[0].Name)
	require.Equal(t, 800.0, cfg.Wheels[0].Size)
	require.Equal(t, "solstice", cfg.Wheels[0].SeasonalModel, "wheel inherits the calendar model")
	require.Nil(t, cfg.Wheels[0].Override)

	require.NotNil(t, cfg.Wheels[1].Override)
	require.Equal(t, 183, cfg.Wheels[1].Override.DayOfYear)
	require.Equal(t, 600.0, cfg.Wheels[1].Size)

	require.NotNil(t, cfg.REST)
	require.Equal(t, "127.0.0.1", cfg.REST.ListenAddr)
	require.Equal(t, DefaultRESTPort, cfg.REST.Port)

	require.Equal(t, DefaultLogMaxSize, cfg.Log.MaxSizeMB)
}

func TestYAMLProviderLazyGetters(t *testing.T) {
	p := NewYAMLProvider(writeConfig(t, sampleConfig))

	wheels, err := p.GetWheels()
	require.NoError(t, err)
	require.Len(t, wheels, 2)

	cal, err := p.GetCalendar()
	require.NoError(t, err)
	require.Equal(t, 1, cal.StartingWeekday)

	rest, err := p.GetRESTServer()
	require.NoError(t, err)
	require.NotNil(t, rest)

	require.True(t, p.IsReadOnly())
	require.NoError(t, p.Close())
}

func TestYAMLProviderMissingFile(t *testing.T) {
	p := NewYAMLProvider(filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := p.LoadConfig()
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLProviderEmptyFileUsesDefaults(t *testing.T) {
	p := NewYAMLProvider(writeConfig(t, ""))

	cfg, err := p.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, creator.DefaultStartingWeekday, cfg.Calendar.StartingWeekday)
	require.Equal(t, string(creator.SeasonalModelDerived), cfg.Calendar.SeasonalModel)
	require.Equal(t, DefaultLocation, cfg.Calendar.Location)
	require.Len(t, cfg.Wheels, 1)
	require.Equal(t, DefaultWheelName, cfg.Wheels[0].Name)
	require.Nil(t, cfg.REST)
}

func TestYAMLProviderRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad duration", "calendar:\n  day_start: soon\n"},
		{"bad model", "calendar:\n  seasonal_model: lunar\n"},
		{"bad weekday", "calendar:\n  starting_weekday: 9\n"},
		{"bad location", "calendar:\n  location: Nowhere/Special\n"},
		{"slow faster than fast", "calendar:\n  fast_tick: 1m\n  slow_tick: 1s\n"},
		{"duplicate wheel", "wheels:\n  - name: a\n  - name: a\n"},
		{"unnamed wheel", "wheels:\n  - size: 100\n"},
		{"override day", "wheels:\n  - name: a\n    override:\n      day_of_year: 400\n"},
		{"cert without key", "rest:\n  cert: /tmp/cert.pem\n"},
		{"malformed yaml", "wheels: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYAMLProvider(writeConfig(t, tt.body)).LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := &ConfigData{
		Calendar: CalendarData{StartingWeekday: 8, SeasonalModel: "lunar"},
	}
	ApplyDefaults(cfg)

	err := Validate(cfg)
	require.Error(t, err)
	require.ErrorIs(t, err, creator.ErrUnknownSeasonalModel)
	require.Contains(t, err.Error(), "starting_weekday")
}

func TestOverrideCoordinate(t *testing.T) {
	o := OverrideData{DayOfYear: 8}
	c := o.Coordinate(1)
	require.Equal(t, 8, c.DayOfYear)
	require.Equal(t, 1, c.DayOfWeek, "day 8 repeats day 1's weekday")
	require.Equal(t, 1, c.PartOfDay)
	require.Equal(t, 1, c.MinuteOfPart)

	o = OverrideData{DayOfYear: 183, DayOfWeek: 7, PartOfDay: 5, MinuteOfPart: 40}
	c = o.Coordinate(1)
	require.True(t, c.IsSabbath())
	require.Equal(t, 5, c.PartOfDay)
	require.Equal(t, 40, c.MinuteOfPart)
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(nil)
	cfg, err := p.LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.False(t, p.IsReadOnly())

	rest, err := p.GetRESTServer()
	require.NoError(t, err)
	require.Nil(t, rest)
}
