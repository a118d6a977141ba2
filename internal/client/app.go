package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/service"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	closers  []func() error
	logger   *logger.Logger
}

// NewApp wires the client. closers run once Run returns, in order.
func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger, closers ...func() error) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{services: services, ui: ui, closers: closers, logger: logger}, nil
}

// Run shows the UI until the user quits or the process is signalled. The
// session token stays persisted so the next run can restore it.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	defer func() {
		a.services.RefreshJob.Stop()
		for _, c := range a.closers {
			if cerr := c(); cerr != nil {
				a.logger.Err(cerr).Str("func", "*App.run").Msg("error releasing client resources")
				err = errors.Join(err, cerr)
			}
		}
	}()

	a.logger.Info().Msg("client started")
	if err = a.ui.Run(ctx); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			a.logger.Info().Msg("client interrupted")
			return nil
		}
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
