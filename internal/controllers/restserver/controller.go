package restserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chrissnell/creatorwheel/internal/log"
	"github.com/chrissnell/creatorwheel/internal/scheduler"
	"github.com/chrissnell/creatorwheel/pkg/config"
	"github.com/chrissnell/creatorwheel/pkg/creator"
	"github.com/chrissnell/creatorwheel/pkg/wheel"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ErrNotFound is wrapped by WheelDirectory lookups that match nothing
var ErrNotFound = errors.New("not found")

// WheelSummary describes one wheel in the /wheels listing
type WheelSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Size          float64 `json:"size"`
	SeasonalModel string  `json:"seasonalModel"`
	Location      string  `json:"location"`
	Static        bool    `json:"static"`
	Running       bool    `json:"running"`
}

// WheelView is the read-only side of a running wheel
type WheelView interface {
	Frame() (wheel.Frame, bool)
	Engine() *wheel.Engine
	Stats() (scheduler.Stats, bool)
}

// WheelDirectory finds wheels by ID or name
type WheelDirectory interface {
	List() []WheelSummary
	Lookup(key string) (WheelView, error)
}

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	restConfig config.RESTServerData
	calendar   config.CalendarData
	location   *time.Location
	wheels     WheelDirectory
	Server     http.Server
	logger     *zap.SugaredLogger
	handlers   *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, rc config.RESTServerData, cal config.CalendarData, wheels WheelDirectory, logger *zap.SugaredLogger) (*Controller, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if wheels == nil {
		return nil, fmt.Errorf("REST server needs a wheel directory")
	}

	loc := time.UTC
	if cal.Location != "" {
		var err error
		loc, err = time.LoadLocation(cal.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid calendar location: %v", err)
		}
	}

	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		restConfig: rc,
		calendar:   cal,
		location:   loc,
		wheels:     wheels,
		logger:     logger,
	}

	// If a ListenAddr was not provided, listen on all interfaces
	if rc.ListenAddr == "" {
		logger.Info("rest.listen-addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		rc.ListenAddr = "0.0.0.0"
	}

	// Set default HTTP port if not specified
	if rc.Port == 0 {
		logger.Infof("rest.port not provided; defaulting to %d", config.DefaultRESTPort)
		rc.Port = config.DefaultRESTPort
	}
	ctrl.restConfig = rc

	ctrl.handlers = NewHandlers(ctrl)

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", rc.ListenAddr, rc.Port)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	c.logger.Infow("Starting REST server controller...", "addr", c.Server.Addr)
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		var err error
		if c.restConfig.Cert != "" && c.restConfig.Key != "" {
			err = c.Server.ListenAndServeTLS(c.restConfig.Cert, c.restConfig.Key)
		} else {
			err = c.Server.ListenAndServe()
		}
		if err != http.ErrServerClosed {
			c.logger.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		c.logger.Info("Shutting down the REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Server.Shutdown(shutdownCtx)
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(log.HTTPMiddleware(c.logger))

	router.HandleFunc("/health", c.handlers.GetHealth).Methods(http.MethodGet)

	router.HandleFunc("/wheels", c.handlers.ListWheels).Methods(http.MethodGet)
	router.HandleFunc("/wheels/{id}/frame", c.handlers.GetWheelFrame).Methods(http.MethodGet)
	router.HandleFunc("/wheels/{id}/ticks/{ring}", c.handlers.GetWheelTicks).Methods(http.MethodGet)
	router.HandleFunc("/wheels/{id}/stats", c.handlers.GetWheelStats).Methods(http.MethodGet)

	router.HandleFunc("/geometry/{size}", c.handlers.GetGeometry).Methods(http.MethodGet)
	router.HandleFunc("/coordinate", c.handlers.GetCoordinate).Methods(http.MethodGet)
	router.HandleFunc("/year-profile", c.handlers.GetYearProfile).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(c.handlers.notFound)
	return router
}

// source returns the calendar source used by the stateless endpoints
func (c *Controller) source() *creator.EquinoxSource {
	return creator.NewEquinoxSource(c.location, c.calendar.DayStart, c.calendar.StartingWeekday)
}
