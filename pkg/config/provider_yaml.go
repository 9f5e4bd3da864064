package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from the YAML file, overlays
// any CREATORWHEEL_* environment variables and fills in defaults.
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	config, err := parseYAML(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", y.filename, err)
	}

	if err := ApplyEnv(config); err != nil {
		return nil, err
	}

	ApplyDefaults(config)
	if err := Validate(config); err != nil {
		return nil, err
	}

	y.config = config
	return config, nil
}

func parseYAML(data []byte) (*ConfigData, error) {
	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Calendar CalendarYAML    `yaml:"calendar,omitempty"`
		Wheels   []WheelYAML     `yaml:"wheels,omitempty"`
		REST     *RESTServerYAML `yaml:"rest,omitempty"`
		Log      LogYAML         `yaml:"log,omitempty"`
	}

	err := yaml.Unmarshal(data, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Wheels: make([]WheelData, len(yamlConfig.Wheels)),
		Log: LogData{
			File:       yamlConfig.Log.File,
			MaxSizeMB:  yamlConfig.Log.MaxSizeMB,
			MaxBackups: yamlConfig.Log.MaxBackups,
			MaxAgeDays: yamlConfig.Log.MaxAgeDays,
		},
	}

	cal := yamlConfig.Calendar
	config.Calendar = CalendarData{
		StartingWeekday: cal.StartingWeekday,
		SeasonalModel:   cal.SeasonalModel,
		Location:        cal.Location,
	}
	if config.Calendar.DayStart, err = parseDuration("calendar.day_start", cal.DayStart); err != nil {
		return nil, err
	}
	if config.Calendar.FastTick, err = parseDuration("calendar.fast_tick", cal.FastTick); err != nil {
		return nil, err
	}
	if config.Calendar.SlowTick, err = parseDuration("calendar.slow_tick", cal.SlowTick); err != nil {
		return nil, err
	}

	// Convert wheels
	for i, w := range yamlConfig.Wheels {
		config.Wheels[i] = WheelData{
			Name:          w.Name,
			Size:          w.Size,
			SeasonalModel: w.SeasonalModel,
			Location:      w.Location,
		}
		if w.Override != nil {
			config.Wheels[i].Override = &OverrideData{
				DayOfYear:    w.Override.DayOfYear,
				DayOfWeek:    w.Override.DayOfWeek,
				PartOfDay:    w.Override.PartOfDay,
				MinuteOfPart: w.Override.MinuteOfPart,
			}
		}
	}

	if yamlConfig.REST != nil {
		config.REST = &RESTServerData{
			Cert:       yamlConfig.REST.Cert,
			Key:        yamlConfig.REST.Key,
			Port:       yamlConfig.REST.Port,
			ListenAddr: yamlConfig.REST.ListenAddr,
		}
	}

	return config, nil
}

func parseDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

// GetCalendar returns the shared calendar settings
func (y *YAMLProvider) GetCalendar() (*CalendarData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Calendar, nil
}

// GetWheels returns wheel configurations
func (y *YAMLProvider) GetWheels() ([]WheelData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return y.config.Wheels, nil
}

// GetRESTServer returns the REST server configuration
func (y *YAMLProvider) GetRESTServer() (*RESTServerData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return y.config.REST, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags
type CalendarYAML struct {
	StartingWeekday int    `yaml:"starting_weekday,omitempty"`
	SeasonalModel   string `yaml:"seasonal_model,omitempty"`
	DayStart        string `yaml:"day_start,omitempty"`
	Location        string `yaml:"location,omitempty"`
	FastTick        string `yaml:"fast_tick,omitempty"`
	SlowTick        string `yaml:"slow_tick,omitempty"`
}

type WheelYAML struct {
	Name          string        `yaml:"name"`
	Size          float64       `yaml:"size,omitempty"`
	SeasonalModel string        `yaml:"seasonal_model,omitempty"`
	Location      string        `yaml:"location,omitempty"`
	Override      *OverrideYAML `yaml:"override,omitempty"`
}

type OverrideYAML struct {
	DayOfYear    int `yaml:"day_of_year"`
	DayOfWeek    int `yaml:"day_of_week,omitempty"`
	PartOfDay    int `yaml:"part_of_day,omitempty"`
	MinuteOfPart int `yaml:"minute_of_part,omitempty"`
}

type RESTServerYAML struct {
	Cert       string `yaml:"cert,omitempty"`
	Key        string `yaml:"key,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	ListenAddr string `yaml:"listen-addr,omitempty"`
}

type LogYAML struct {
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
}
