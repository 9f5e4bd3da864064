package managers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chrissnell/creatorwheel/internal/scheduler"
	"github.com/chrissnell/creatorwheel/pkg/config"
	"github.com/chrissnell/creatorwheel/pkg/creator"
	"github.com/chrissnell/creatorwheel/pkg/wheel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrWheelNotFound is returned when no wheel matches an ID or name
var ErrWheelNotFound = errors.New("wheel not found")

// wheelNamespace seeds the name-based wheel IDs so they survive restarts
var wheelNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("creatorwheel"))

// WheelInfo is the public summary of one wheel
type WheelInfo struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Size          float64 `json:"size"`
	SeasonalModel string  `json:"seasonalModel"`
	Location      string  `json:"location"`
	Static        bool    `json:"static"`
	Running       bool    `json:"running"`
}

// Wheel is one configured wheel: either live, driven by a scheduler, or
// pinned to a fixed coordinate.
type Wheel struct {
	ID     uuid.UUID
	Name   string
	config config.WheelData
	engine *wheel.Engine
	sched  *scheduler.Scheduler
	static *wheel.Frame
}

// Frame returns the latest frame and whether one exists yet
func (w *Wheel) Frame() (wheel.Frame, bool) {
	if w.static != nil {
		return *w.static, true
	}
	return w.sched.Frame()
}

// Engine returns the wheel's frame engine
func (w *Wheel) Engine() *wheel.Engine {
	return w.engine
}

// Stats returns scheduler counters; static wheels have none
func (w *Wheel) Stats() (scheduler.Stats, bool) {
	if w.sched == nil {
		return scheduler.Stats{}, false
	}
	return w.sched.Stats(), true
}

// Info summarizes the wheel
func (w *Wheel) Info() WheelInfo {
	return WheelInfo{
		ID:            w.ID.String(),
		Name:          w.Name,
		Size:          w.engine.Geometry().Size,
		SeasonalModel: string(w.engine.Options().SeasonalModel),
		Location:      w.config.Location,
		Static:        w.static != nil,
		Running:       w.sched != nil && w.sched.Running(),
	}
}

// WheelID derives the stable ID for a wheel name
func WheelID(name string) uuid.UUID {
	return uuid.NewSHA1(wheelNamespace, []byte(name))
}

// RendererFactory builds the renderer for one wheel. It may return nil.
type RendererFactory func(name string) wheel.Renderer

// WheelManagerOption customizes a WheelManager
type WheelManagerOption func(*WheelManager)

// WithSchedulerOptions passes extra options to every live wheel's scheduler
func WithSchedulerOptions(opts ...scheduler.Option) WheelManagerOption {
	return func(m *WheelManager) {
		m.schedOpts = append(m.schedOpts, opts...)
	}
}

// WithRenderers attaches a renderer to every live wheel
func WithRenderers(f RendererFactory) WheelManagerOption {
	return func(m *WheelManager) {
		m.renderers = f
	}
}

// WheelManager owns every configured wheel
type WheelManager struct {
	ctx       context.Context
	wg        *sync.WaitGroup
	logger    *zap.SugaredLogger
	schedOpts []scheduler.Option
	renderers RendererFactory

	mu      sync.RWMutex
	started bool
	wheels  []*Wheel
	byID    map[uuid.UUID]*Wheel
	byName  map[string]*Wheel
}

// NewWheelManager builds one wheel per configured entry. Nothing ticks until
// StartWheels is called.
func NewWheelManager(ctx context.Context, wg *sync.WaitGroup, provider config.ConfigProvider, logger *zap.SugaredLogger, opts ...WheelManagerOption) (*WheelManager, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	cal, err := provider.GetCalendar()
	if err != nil {
		return nil, fmt.Errorf("error loading calendar config: %w", err)
	}
	wheelConfigs, err := provider.GetWheels()
	if err != nil {
		return nil, fmt.Errorf("error loading wheel configs: %w", err)
	}

	m := &WheelManager{
		ctx:    ctx,
		wg:     wg,
		logger: logger,
		byID:   make(map[uuid.UUID]*Wheel),
		byName: make(map[string]*Wheel),
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, wc := range wheelConfigs {
		w, err := m.createWheel(*cal, wc)
		if err != nil {
			return nil, fmt.Errorf("error creating wheel %q: %w", wc.Name, err)
		}
		if _, dup := m.byName[w.Name]; dup {
			return nil, fmt.Errorf("duplicate wheel name %q", w.Name)
		}
		m.wheels = append(m.wheels, w)
		m.byID[w.ID] = w
		m.byName[w.Name] = w
	}

	return m, nil
}

func (m *WheelManager) createWheel(cal config.CalendarData, wc config.WheelData) (*Wheel, error) {
	modelName := wc.SeasonalModel
	if modelName == "" {
		modelName = cal.SeasonalModel
	}
	model, err := creator.ParseSeasonalModel(modelName)
	if err != nil {
		return nil, err
	}

	locName := wc.Location
	if locName == "" {
		locName = cal.Location
	}
	loc, err := time.LoadLocation(locName)
	if err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}
	wc.Location = loc.String()

	engine := wheel.NewEngine(wheel.Options{
		Size:            wc.Size,
		StartingWeekday: cal.StartingWeekday,
		SeasonalModel:   model,
	})

	w := &Wheel{
		ID:     WheelID(wc.Name),
		Name:   wc.Name,
		config: wc,
		engine: engine,
	}

	if wc.Override != nil {
		frame := engine.Static(wc.Override.Coordinate(engine.Options().StartingWeekday))
		w.static = &frame
		return w, nil
	}

	var renderer wheel.Renderer
	if m.renderers != nil {
		renderer = m.renderers(wc.Name)
	}
	source := creator.NewEquinoxSource(loc, cal.DayStart, engine.Options().StartingWeekday)
	opts := append([]scheduler.Option{scheduler.WithIntervals(cal.FastTick, cal.SlowTick)}, m.schedOpts...)
	w.sched = scheduler.New(engine, source, renderer, m.logger.With("wheel", wc.Name), opts...)
	return w, nil
}

// StartWheels starts every live wheel. Each one is stopped again when the
// manager's context is cancelled.
func (m *WheelManager) StartWheels() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return nil
	}
	m.started = true

	m.logger.Info("Starting wheel manager...")
	live := 0
	for _, w := range m.wheels {
		if w.sched == nil {
			m.logger.Infow("wheel pinned to a fixed coordinate", "wheel", w.Name, "day", w.static.Coordinate.DayOfYear)
			continue
		}
		w.sched.Start(m.ctx)
		live++

		m.wg.Add(1)
		go func(w *Wheel) {
			defer m.wg.Done()
			<-m.ctx.Done()
			w.sched.Stop()
			m.logger.Debugw("wheel stopped", "wheel", w.Name)
		}(w)
	}

	m.logger.Infof("Started %d live wheels (%d total)", live, len(m.wheels))
	return nil
}

// Get finds a wheel by ID or by name
func (m *WheelManager) Get(key string) (*Wheel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id, err := uuid.Parse(key); err == nil {
		if w, ok := m.byID[id]; ok {
			return w, nil
		}
	}
	if w, ok := m.byName[key]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrWheelNotFound, key)
}

// List summarizes every wheel in configuration order
func (m *WheelManager) List() []WheelInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]WheelInfo, 0, len(m.wheels))
	for _, w := range m.wheels {
		out = append(out, w.Info())
	}
	return out
}
