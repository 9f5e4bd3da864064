package config

import "time"

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetCalendar() (*CalendarData, error)
	GetWheels() ([]WheelData, error)
	GetRESTServer() (*RESTServerData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Calendar CalendarData    `json:"calendar"`
	Wheels   []WheelData     `json:"wheels"`
	REST     *RESTServerData `json:"rest,omitempty"`
	Log      LogData         `json:"log,omitempty"`
}

// CalendarData holds the settings shared by every wheel
type CalendarData struct {
	StartingWeekday int           `json:"starting_weekday"`
	SeasonalModel   string        `json:"seasonal_model"`
	DayStart        time.Duration `json:"day_start"`
	Location        string        `json:"location"`
	FastTick        time.Duration `json:"fast_tick"`
	SlowTick        time.Duration `json:"slow_tick"`
}

// WheelData describes one wheel instance
type WheelData struct {
	Name          string        `json:"name"`
	Size          float64       `json:"size"`
	SeasonalModel string        `json:"seasonal_model,omitempty"` // overrides CalendarData.SeasonalModel
	Location      string        `json:"location,omitempty"`       // overrides CalendarData.Location
	Override      *OverrideData `json:"override,omitempty"`
}

// OverrideData pins a wheel to a fixed coordinate instead of the live clock
type OverrideData struct {
	DayOfYear    int `json:"day_of_year"`
	DayOfWeek    int `json:"day_of_week,omitempty"`
	PartOfDay    int `json:"part_of_day,omitempty"`
	MinuteOfPart int `json:"minute_of_part,omitempty"`
}

// RESTServerData configures the HTTP surface renderers pull frames from
type RESTServerData struct {
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
	Port       int    `json:"port,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty"`
}

// LogData configures an optional rotating log file
type LogData struct {
	File       string `json:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty"`
	MaxAgeDays int    `json:"max_age_days,omitempty"`
}

// StaticProvider serves a configuration held in memory
type StaticProvider struct {
	config *ConfigData
}

// NewStaticProvider wraps an already-built configuration
func NewStaticProvider(cfg *ConfigData) *StaticProvider {
	if cfg == nil {
		cfg = &ConfigData{}
	}
	return &StaticProvider{config: cfg}
}

// LoadConfig returns the wrapped configuration
func (s *StaticProvider) LoadConfig() (*ConfigData, error) {
	return s.config, nil
}

// GetCalendar returns the calendar section
func (s *StaticProvider) GetCalendar() (*CalendarData, error) {
	return &s.config.Calendar, nil
}

// GetWheels returns the wheel definitions
func (s *StaticProvider) GetWheels() ([]WheelData, error) {
	return s.config.Wheels, nil
}

// GetRESTServer returns the REST section, nil when the server is disabled
func (s *StaticProvider) GetRESTServer() (*RESTServerData, error) {
	return s.config.REST, nil
}

// IsReadOnly returns false; callers may mutate the wrapped configuration
func (s *StaticProvider) IsReadOnly() bool {
	return false
}

// Close is a no-op
func (s *StaticProvider) Close() error {
	return nil
}
