package restserver

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/chrissnell/creatorwheel/internal/constants"
	"github.com/chrissnell/creatorwheel/pkg/creator"
	"github.com/chrissnell/creatorwheel/pkg/responseformat"
	"github.com/chrissnell/creatorwheel/pkg/wheel"
	"github.com/gorilla/mux"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Wheels  int    `json:"wheels"`
}

// CoordinateResponse is returned by /coordinate
type CoordinateResponse struct {
	Time       time.Time                  `json:"time"`
	Coordinate creator.CalendarCoordinate `json:"coordinate"`
	Progress   float64                    `json:"progress"`
	Leader     creator.Leader             `json:"leader"`
	Split      creator.DayNightSplit      `json:"split"`
	Segment    creator.Segment            `json:"segment"`
	Rotations  wheel.RotationSet          `json:"rotations"`
	YearStart  time.Time                  `json:"yearStart"`
}

var noCache = map[string]string{"Cache-Control": "no-cache"}

// GetHealth reports liveness and the build version
func (h *Handlers) GetHealth(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, HealthResponse{
		Status:  "ok",
		Version: constants.Version,
		Wheels:  len(h.controller.wheels.List()),
	}, noCache)
}

// ListWheels returns every configured wheel
func (h *Handlers) ListWheels(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, h.controller.wheels.List(), noCache)
}

// GetWheelFrame returns the latest frame of one wheel. With compact=true the
// per-day tick arrays are left out.
func (h *Handlers) GetWheelFrame(w http.ResponseWriter, req *http.Request) {
	frame, ok := h.lookupFrame(w, req)
	if !ok {
		return
	}
	if compact, _ := strconv.ParseBool(req.URL.Query().Get("compact")); compact {
		frame.Day = nil
	}
	h.formatter.WriteResponse(w, req, frame, noCache)
}

// GetWheelTicks returns the marks for a single ring of one wheel
func (h *Handlers) GetWheelTicks(w http.ResponseWriter, req *http.Request) {
	ringName := mux.Vars(req)["ring"]
	ring, ok := wheel.ParseRing(ringName)
	if !ok {
		h.formatter.WriteError(w, req, http.StatusBadRequest, fmt.Sprintf("unknown ring %q", ringName))
		return
	}

	frame, ok := h.lookupFrame(w, req)
	if !ok {
		return
	}

	var data any
	switch ring {
	case wheel.RingSun:
		data = frame.Day.SolarTicks
	case wheel.RingLeaders:
		data = creator.Leaders
	case wheel.RingMonthDays:
		data = frame.Day.MonthDayMarks
	case wheel.RingWeeks:
		data = frame.Day.WeekTicks
	case wheel.RingDayParts:
		data = frame.Day.DayPartMarks
	default:
		h.formatter.WriteError(w, req, http.StatusNotFound, fmt.Sprintf("ring %q has no tick marks", ring))
		return
	}
	h.formatter.WriteResponse(w, req, data, noCache)
}

// GetWheelStats returns scheduler counters for a live wheel
func (h *Handlers) GetWheelStats(w http.ResponseWriter, req *http.Request) {
	view, ok := h.lookupWheel(w, req)
	if !ok {
		return
	}
	stats, live := view.Stats()
	if !live {
		h.formatter.WriteError(w, req, http.StatusNotFound, "wheel is pinned to a fixed coordinate")
		return
	}
	h.formatter.WriteResponse(w, req, stats, noCache)
}

// GetGeometry returns ring radii for a canvas of the given size
func (h *Handlers) GetGeometry(w http.ResponseWriter, req *http.Request) {
	size, err := strconv.ParseFloat(mux.Vars(req)["size"], 64)
	if err != nil || size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "size must be a positive finite number")
		return
	}
	h.formatter.WriteResponse(w, req, wheel.NewGeometry(size), nil)
}

// GetCoordinate converts a wall-clock time (default now) to a calendar coordinate
func (h *Handlers) GetCoordinate(w http.ResponseWriter, req *http.Request) {
	t := time.Now()
	if ts := req.URL.Query().Get("time"); ts != "" {
		var err error
		t, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, "time must be RFC3339")
			return
		}
	}

	model, ok := h.seasonalModel(w, req)
	if !ok {
		return
	}

	src := h.controller.source()
	coord := creator.Resolve(src, t)
	engine := wheel.NewEngine(wheel.Options{
		StartingWeekday: h.controller.calendar.StartingWeekday,
		SeasonalModel:   model,
	})
	frame := engine.Frame(t, coord, coord.Progress(), nil)

	h.formatter.WriteResponse(w, req, CoordinateResponse{
		Time:       t,
		Coordinate: frame.Coordinate,
		Progress:   frame.Progress,
		Leader:     frame.Day.Leader,
		Split:      frame.Day.Split,
		Segment:    frame.Segment,
		Rotations:  frame.Rotations,
		YearStart:  src.YearStart(t),
	}, nil)
}

// GetYearProfile returns day-length statistics for a whole year
func (h *Handlers) GetYearProfile(w http.ResponseWriter, req *http.Request) {
	model, ok := h.seasonalModel(w, req)
	if !ok {
		return
	}
	h.formatter.WriteResponse(w, req, wheel.Profile(model, h.controller.calendar.StartingWeekday), nil)
}

func (h *Handlers) notFound(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteError(w, req, http.StatusNotFound, "no such endpoint")
}

// seasonalModel reads the model query parameter, falling back to the configured model
func (h *Handlers) seasonalModel(w http.ResponseWriter, req *http.Request) (creator.SeasonalModel, bool) {
	name := req.URL.Query().Get("model")
	if name == "" {
		name = h.controller.calendar.SeasonalModel
	}
	model, err := creator.ParseSeasonalModel(name)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, err.Error())
		return "", false
	}
	return model, true
}

func (h *Handlers) lookupWheel(w http.ResponseWriter, req *http.Request) (WheelView, bool) {
	view, err := h.controller.wheels.Lookup(mux.Vars(req)["id"])
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.formatter.WriteError(w, req, http.StatusNotFound, err.Error())
		} else {
			h.formatter.WriteError(w, req, http.StatusInternalServerError, "error looking up wheel")
		}
		return nil, false
	}
	return view, true
}

func (h *Handlers) lookupFrame(w http.ResponseWriter, req *http.Request) (wheel.Frame, bool) {
	view, ok := h.lookupWheel(w, req)
	if !ok {
		return wheel.Frame{}, false
	}
	frame, ok := view.Frame()
	if !ok || frame.Day == nil {
		h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "wheel has not produced a frame yet")
		return wheel.Frame{}, false
	}
	return frame, true
}
