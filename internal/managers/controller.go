package managers

import (
	"context"
	"fmt"
	"sync"

	"github.com/chrissnell/creatorwheel/internal/controllers/restserver"
	"github.com/chrissnell/creatorwheel/pkg/config"
	"go.uber.org/zap"
)

// ControllerManager interface for the controller manager
type ControllerManager interface {
	StartControllers() error
}

// Controller is an interface that provides standard methods for various controller backends
type Controller interface {
	StartController() error
}

// NewControllerManager creates a new controller manager
func NewControllerManager(ctx context.Context, wg *sync.WaitGroup, provider config.ConfigProvider, wheels *WheelManager, logger *zap.SugaredLogger) (ControllerManager, error) {
	cm := &controllerManager{
		ctx:         ctx,
		wg:          wg,
		wheels:      wheels,
		logger:      logger,
		controllers: make([]Controller, 0),
	}

	cfg, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %v", err)
	}

	if cfg.REST != nil {
		controller, err := cm.createController("rest", cfg)
		if err != nil {
			return nil, fmt.Errorf("error creating controller: %v", err)
		}
		cm.controllers = append(cm.controllers, controller)
	}

	return cm, nil
}

type controllerManager struct {
	ctx         context.Context
	wg          *sync.WaitGroup
	wheels      *WheelManager
	logger      *zap.SugaredLogger
	controllers []Controller
}

func (c *controllerManager) StartControllers() error {
	c.logger.Info("Starting controller manager...")

	for _, controller := range c.controllers {
		err := controller.StartController()
		if err != nil {
			return fmt.Errorf("error starting controller: %v", err)
		}
	}

	c.logger.Infof("Started %d controllers successfully", len(c.controllers))
	return nil
}

// createController creates a controller of the named type
func (cm *controllerManager) createController(kind string, cfg *config.ConfigData) (Controller, error) {
	switch kind {
	case "restserver", "rest":
		return restserver.NewController(cm.ctx, cm.wg, *cfg.REST, cfg.Calendar, wheelDirectory{cm.wheels}, cm.logger)
	default:
		return nil, fmt.Errorf("unknown controller type: %s", kind)
	}
}

// wheelDirectory adapts WheelManager to the lookup the REST server needs
type wheelDirectory struct {
	m *WheelManager
}

func (d wheelDirectory) List() []restserver.WheelSummary {
	infos := d.m.List()
	out := make([]restserver.WheelSummary, len(infos))
	for i, info := range infos {
		out[i] = restserver.WheelSummary(info)
	}
	return out
}

func (d wheelDirectory) Lookup(key string) (restserver.WheelView, error) {
	w, err := d.m.Get(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", restserver.ErrNotFound, err)
	}
	return w, nil
}
