package app

import (
	"sync"

	"github.com/chrissnell/creatorwheel/pkg/creator"
	"github.com/chrissnell/creatorwheel/pkg/wheel"
)

// dayChangeLogger builds a renderer that logs each new day and each new
// part of the day for one wheel.
func (a *App) dayChangeLogger(name string) wheel.Renderer {
	logger := a.logger.With("wheel", name)

	var mu sync.Mutex
	var last creator.CalendarCoordinate
	return wheel.RendererFunc(func(f wheel.Frame) {
		mu.Lock()
		prev := last
		last = f.Coordinate
		mu.Unlock()

		c := f.Coordinate
		if !c.SameDay(prev) {
			logger.Infow("new day",
				"day", c.DayOfYear,
				"weekday", c.DayOfWeek,
				"month", c.Month,
				"dayOfMonth", c.DayOfMonth,
				"leader", f.Day.Leader.Name,
				"dayParts", f.Day.Split.DayParts,
				"sabbath", c.IsSabbath())
			return
		}
		if c.PartOfDay != prev.PartOfDay {
			logger.Debugw("new part of day", "part", c.PartOfDay, "segment", f.Segment.Name)
		}
	})
}
