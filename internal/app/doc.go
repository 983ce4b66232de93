// Package app provides the application context for nextfit.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
//	type App struct {
//	    Config   *config.Config    // Loaded configuration
//	    Session  *session.Session  // Allocator behind the command boundary
//	    Renderer display.Renderer  // Block line formatting
//	}
//
// # Creating an App
//
//	// Production usage
//	a, err := app.New(app.WithConfig(cfg))
//
//	// Testing with a custom layout
//	alloc, _ := allocator.New(100, 50)
//	a, err := app.New(app.WithSession(session.New(alloc)))
//
// There is no process-wide instance: commands build one App and pass it to
// the shell, the TUI or the run loop.
package app
