// Package app provides the application context for nextfit.
// It allows dependency injection for testing.
package app

import (
	"github.com/firefly-engineering/nextfit/internal/allocator"
	"github.com/firefly-engineering/nextfit/internal/config"
	"github.com/firefly-engineering/nextfit/internal/display"
	"github.com/firefly-engineering/nextfit/internal/logging"
	"github.com/firefly-engineering/nextfit/internal/session"
)

// App holds the application dependencies
type App struct {
	// Config is the loaded configuration
	Config *config.Config

	// Session fronts the allocator
	Session *session.Session

	// Renderer formats block state for display
	Renderer display.Renderer
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets a custom configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithSession sets a prebuilt session
func WithSession(s *session.Session) Option {
	return func(a *App) {
		a.Session = s
	}
}

// New creates a new App with the given options.
// Without WithSession, a fresh allocator is built from the config's layout.
func New(opts ...Option) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Config == nil {
		app.Config = config.Default()
	}

	if app.Session == nil {
		a, err := allocator.New(app.Config.Blocks...)
		if err != nil {
			return nil, err
		}
		app.Session = session.New(a)
		logging.Debug("allocator ready", "blocks", a.Len(), "layout", a.Layout())
	}

	app.Renderer = display.New(app.Config.Display.MaxOccupants)

	return app, nil
}

// Lines renders the current block state
func (a *App) Lines() []string {
	return a.Renderer.Lines(a.Session.Inspect())
}
