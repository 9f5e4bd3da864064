package wheel

import (
	"time"

	"github.com/chrissnell/creatorwheel/pkg/creator"
)

// Options are the fixed parameters of one wheel
type Options struct {
	Size            float64
	StartingWeekday int
	SeasonalModel   creator.SeasonalModel
}

// Derived is everything that only changes when the day changes
type Derived struct {
	Coordinate    creator.CalendarCoordinate `json:"coordinate"`
	Leader        creator.Leader             `json:"leader"`
	Split         creator.DayNightSplit      `json:"split"`
	SolarTicks    []TickMark                 `json:"solarTicks"`
	WeekTicks     []TickMark                 `json:"weekTicks"`
	MonthDayMarks []TickMark                 `json:"monthDayMarks"`
	DayPartMarks  []DayPartMark              `json:"dayPartMarks"`
}

// Frame is what a renderer receives on each redraw
type Frame struct {
	Time       time.Time                  `json:"time"`
	Coordinate creator.CalendarCoordinate `json:"coordinate"`
	Progress   float64                    `json:"progress"`
	Rotations  RotationSet                `json:"rotations"`
	Segment    creator.Segment            `json:"segment"`
	Geometry   Geometry                   `json:"geometry"`
	Day        *Derived                   `json:"day"`
}

// Renderer draws frames. It never feeds anything back into the engine.
type Renderer interface {
	Render(Frame)
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(Frame)

// Render implements Renderer
func (f RendererFunc) Render(fr Frame) { f(fr) }

// Engine builds frames for one wheel. It is immutable after construction and
// safe to share.
type Engine struct {
	opts     Options
	geometry Geometry
}

// NewEngine fixes the geometry and calendar options for a wheel
func NewEngine(opts Options) *Engine {
	if opts.StartingWeekday < 1 || opts.StartingWeekday > creator.DaysInWeek {
		opts.StartingWeekday = creator.DefaultStartingWeekday
	}
	if opts.SeasonalModel == "" {
		opts.SeasonalModel = creator.SeasonalModelDerived
	}
	g := NewGeometry(opts.Size)
	opts.Size = g.Size
	return &Engine{opts: opts, geometry: g}
}

// Options returns the options the engine was built with
func (e *Engine) Options() Options {
	return e.opts
}

// Geometry returns the static ring layout
func (e *Engine) Geometry() Geometry {
	return e.geometry
}

// Derive computes the per-day structures for a coordinate
func (e *Engine) Derive(coord creator.CalendarCoordinate) *Derived {
	c := coord.Normalize()
	split := creator.DayNightFor(e.opts.SeasonalModel, c.DayOfYear)
	return &Derived{
		Coordinate:    c,
		Leader:        creator.LeaderFor(c.DayOfYear),
		Split:         split,
		SolarTicks:    SolarTicks(c, e.opts.StartingWeekday),
		WeekTicks:     WeekTicks(c),
		MonthDayMarks: MonthDayMarks(c),
		DayPartMarks:  DayPartMarks(c, split),
	}
}

// Frame combines per-day structures with the rotations for a moment inside
// that day. A nil derived is computed from coord.
func (e *Engine) Frame(t time.Time, coord creator.CalendarCoordinate, progress float64, derived *Derived) Frame {
	c := coord.Normalize()
	if derived == nil || !derived.Coordinate.SameDay(c) {
		derived = e.Derive(c)
	}
	return Frame{
		Time:       t,
		Coordinate: c,
		Progress:   clampProgress(progress),
		Rotations:  Rotations(c, progress),
		Segment:    creator.SegmentFor(c.PartOfDay),
		Geometry:   e.geometry,
		Day:        derived,
	}
}

// Static builds a single frame for a fixed coordinate without any clock.
// Used for overrides, screenshots and tests.
func (e *Engine) Static(coord creator.CalendarCoordinate) Frame {
	c := coord.Normalize()
	return e.Frame(time.Time{}, c, c.Progress(), nil)
}
