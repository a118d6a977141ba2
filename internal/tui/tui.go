// Package tui is the terminal front end of the climate client. A single
// Bubble Tea model routes between the sign-in screens and the dashboard,
// following the state of the auth flow controller.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-climate-intel/internal/capability"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/service"
	"github.com/MKhiriev/go-climate-intel/models"
)

// Options are the presentation settings of the TUI.
type Options struct {
	BuildInfo       models.AppBuildInfo
	Capabilities    capability.Set
	RefreshInterval time.Duration
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	opts.Capabilities = opts.Capabilities.WithDefaults()
	return &TUI{services: services, opts: opts, logger: logger}, nil
}

// Run shows the TUI until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)
	defer t.services.RefreshJob.Stop()

	_, err := tea.NewProgram(newAppModel(ctx, t.services, t.opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
