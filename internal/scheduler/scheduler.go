// Package scheduler keeps a wheel in step with the wall clock. A fast ticker
// moves the sun ring through the day; a slow ticker re-reads the full
// calendar coordinate and rebuilds the per-day tick arrays when the day
// changes. Every tick recomputes from Clock.Now(), so missed ticks never
// accumulate drift.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/chrissnell/creatorwheel/pkg/creator"
	"github.com/chrissnell/creatorwheel/pkg/wheel"
	"go.uber.org/zap"
)

// Default tick intervals
const (
	DefaultFastTick = time.Second
	DefaultSlowTick = time.Minute
)

// Stats counts scheduler activity since construction
type Stats struct {
	FastTicks     uint64    `json:"fastTicks"`
	CoarseRefresh uint64    `json:"coarseRefresh"`
	DayRebuilds   uint64    `json:"dayRebuilds"`
	Starts        uint64    `json:"starts"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

// Option customizes a Scheduler
type Option func(*Scheduler)

// WithClock replaces the system clock
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithIntervals sets the fast and slow tick periods. Non-positive values keep the defaults.
func WithIntervals(fast, slow time.Duration) Option {
	return func(s *Scheduler) {
		if fast > 0 {
			s.fastTick = fast
		}
		if slow > 0 {
			s.slowTick = slow
		}
	}
}

// Scheduler owns the live coordinate of one wheel. Each wheel gets its own
// scheduler; nothing is shared between instances.
type Scheduler struct {
	clock    Clock
	source   creator.Source
	engine   *wheel.Engine
	renderer wheel.Renderer
	logger   *zap.SugaredLogger
	fastTick time.Duration
	slowTick time.Duration

	// lifecycle serializes Start and Stop
	lifecycle sync.Mutex
	running   bool
	stopChan  chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup

	mu       sync.RWMutex
	coord    creator.CalendarCoordinate
	derived  *wheel.Derived
	frame    wheel.Frame
	hasFrame bool
	lastSlow time.Time
	stats    Stats
}

// New creates a stopped scheduler. A nil renderer is allowed; the latest
// frame is always available from Frame.
func New(engine *wheel.Engine, source creator.Source, renderer wheel.Renderer, logger *zap.SugaredLogger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if engine == nil {
		engine = wheel.NewEngine(wheel.Options{})
	}
	s := &Scheduler{
		clock:    SystemClock{},
		source:   source,
		engine:   engine,
		renderer: renderer,
		logger:   logger,
		fastTick: DefaultFastTick,
		slowTick: DefaultSlowTick,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start takes the first reading synchronously and then begins ticking. It is
// a no-op while the scheduler is already running. The loop also ends when
// ctx is cancelled; Start may then be called again.
func (s *Scheduler) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if s.running {
		select {
		case <-s.done:
			s.wg.Wait()
		default:
			return
		}
	}

	s.refreshCoarse()

	fast := s.clock.NewTicker(s.fastTick)
	slow := s.clock.NewTicker(s.slowTick)

	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})
	s.running = true

	s.mu.Lock()
	s.stats.Starts++
	s.mu.Unlock()

	s.wg.Add(1)
	go s.loop(ctx, fast, slow, s.stopChan, s.done)
}

// Stop halts ticking and waits until both tickers are released. Safe to
// call repeatedly and on a scheduler that never started.
func (s *Scheduler) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if !s.running {
		return
	}
	close(s.stopChan)
	s.wg.Wait()
	s.running = false
}

// Running reports whether the tick loop is active
func (s *Scheduler) Running() bool {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if !s.running {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Frame returns the most recent frame and whether one has been produced yet
func (s *Scheduler) Frame() (wheel.Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame, s.hasFrame
}

// Coordinate returns the current coordinate
func (s *Scheduler) Coordinate() creator.CalendarCoordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coord
}

// Stats returns a copy of the activity counters
func (s *Scheduler) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *Scheduler) loop(ctx context.Context, fast, slow Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer s.wg.Done()
	defer close(done)
	defer slow.Stop()
	defer fast.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("wheel scheduler stopped (context cancelled)")
			return
		case <-stop:
			return
		case <-fast.C():
			s.tickFast()
		case <-slow.C():
			s.refreshCoarse()
		}
	}
}

// tickFast moves the coordinate forward within the current day. A late tick
// or a part number that went backwards means the day may have rolled over,
// so it falls back to a full refresh.
func (s *Scheduler) tickFast() {
	now := s.clock.Now()

	s.mu.Lock()
	s.stats.FastTicks++
	coord, lastSlow := s.coord, s.lastSlow
	s.mu.Unlock()

	if now.Before(lastSlow) || now.Sub(lastSlow) >= s.slowTick {
		s.refreshCoarse()
		return
	}

	dt := creator.ResolveDayTime(s.source, now)
	if dt.Part < coord.PartOfDay {
		s.refreshCoarse()
		return
	}
	coord.PartOfDay, coord.MinuteOfPart = dt.Part, dt.Minute
	s.publish(now, coord)
}

// refreshCoarse re-reads the whole coordinate and rebuilds the per-day data
// only when the day actually changed.
func (s *Scheduler) refreshCoarse() {
	now := s.clock.Now()
	coord := creator.Resolve(s.source, now)

	s.mu.Lock()
	rebuilt := false
	if s.derived == nil || !s.derived.Coordinate.SameDay(coord) {
		s.derived = s.engine.Derive(coord)
		s.stats.DayRebuilds++
		rebuilt = true
	}
	s.lastSlow = now
	s.stats.CoarseRefresh++
	s.stats.LastRefreshed = now
	s.mu.Unlock()

	if rebuilt {
		s.logger.Debugw("wheel day data rebuilt",
			"day", coord.DayOfYear, "weekday", coord.DayOfWeek, "leader", creator.LeaderIndex(coord.DayOfYear))
	}
	s.publish(now, coord)
}

func (s *Scheduler) publish(now time.Time, coord creator.CalendarCoordinate) {
	s.mu.Lock()
	frame := s.engine.Frame(now, coord, progressAt(coord, now), s.derived)
	s.coord = frame.Coordinate
	s.frame = frame
	s.hasFrame = true
	s.mu.Unlock()

	if s.renderer != nil {
		s.renderer.Render(frame)
	}
}

// progressAt adds the seconds elapsed inside the current minute to the
// coordinate's minute-resolution progress, keeping the sun ring smooth
// between minute boundaries.
func progressAt(coord creator.CalendarCoordinate, now time.Time) float64 {
	sub := (float64(now.Second()) + float64(now.Nanosecond())/1e9) / 60
	return coord.Progress() + sub/creator.MinutesPerDay
}
