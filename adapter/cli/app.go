package cli

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/rolodex/internal/contacts/application"
	"github.com/felixgeelhaar/rolodex/pkg/observability"
)

// ErrNotConfigured is returned by commands run before SetApp.
var ErrNotConfigured = errors.New("rolodex is not configured")

// App holds the CLI application dependencies.
type App struct {
	Manager *application.ContactManager
	Health  *observability.HealthRegistry
}

// NewApp creates a new CLI application.
func NewApp(manager *application.ContactManager, health *observability.HealthRegistry) *App {
	return &App{
		Manager: manager,
		Health:  health,
	}
}

// Flush persists the register after a mutating command.
func (a *App) Flush(ctx context.Context) error {
	return a.Manager.Flush(ctx)
}

var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}

// RequireApp returns the configured application or ErrNotConfigured.
func RequireApp() (*App, error) {
	if app == nil || app.Manager == nil {
		return nil, ErrNotConfigured
	}
	return app, nil
}
