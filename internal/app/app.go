package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chrissnell/creatorwheel/internal/managers"
	"github.com/chrissnell/creatorwheel/internal/scheduler"
	"github.com/chrissnell/creatorwheel/pkg/config"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
	schedOpts      []scheduler.Option

	// ready is closed once every wheel and controller has started
	ready chan struct{}
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger, opts ...scheduler.Option) *App {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &App{
		configProvider: configProvider,
		logger:         logger,
		schedOpts:      opts,
		ready:          make(chan struct{}),
	}
}

// Ready is closed once startup has finished
func (a *App) Ready() <-chan struct{} {
	return a.ready
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Initialize the wheel manager
	wm, err := managers.NewWheelManager(ctx, &wg, a.configProvider, a.logger,
		managers.WithSchedulerOptions(a.schedOpts...),
		managers.WithRenderers(a.dayChangeLogger))
	if err != nil {
		return err
	}
	if err := wm.StartWheels(); err != nil {
		return err
	}

	// Initialize the controller manager
	cm, err := managers.NewControllerManager(ctx, &wg, a.configProvider, wm, a.logger)
	if err != nil {
		return err
	}
	err = cm.StartControllers()
	if err != nil {
		return err
	}

	a.logger.Info("Application started successfully")
	close(a.ready)

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	// Wait for shutdown signal
	select {
	case <-sigs:
		a.logger.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		a.logger.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	a.logger.Info("waiting for all workers to terminate...")
	wg.Wait()
	a.logger.Info("shutdown complete")

	return nil
}
