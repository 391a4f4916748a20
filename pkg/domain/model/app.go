package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// App is an application whose public URL is resolved from its internal port.
// It is read-only input to resolution.
type App struct {
	Name          string `yaml:"name" json:"name"`
	Port          int    `yaml:"port" json:"port"`
	HiddenService string `yaml:"hidden_service,omitempty" json:"hiddenService,omitempty"`
	Path          string `yaml:"path,omitempty" json:"path,omitempty"`
}

// Validate validates the app definition
func (a App) Validate() error {
	if a.Name == "" {
		return goerr.New("app name is required")
	}
	if !ValidPort(a.Port) {
		return goerr.Wrap(ErrInvalidPort, "invalid app port",
			goerr.V("name", a.Name),
			goerr.V("port", a.Port))
	}
	return nil
}

// LogValue returns structured log value
func (a App) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", a.Name),
		slog.Int("port", a.Port),
		slog.String("hidden_service", a.HiddenService),
		slog.String("path", a.Path),
	)
}

// ValidPort reports whether port is a usable TCP port
func ValidPort(port int) bool {
	return port >= 1 && port <= 65535
}

// AppCatalog is the set of apps served by the serve command
type AppCatalog struct {
	Apps []App `yaml:"apps"`
}

// Validate validates every app and rejects duplicate names
func (c *AppCatalog) Validate() error {
	names := make(map[string]bool)
	for i, app := range c.Apps {
		if err := app.Validate(); err != nil {
			return goerr.Wrap(err, "invalid app at index",
				goerr.V("index", i),
				goerr.V("name", app.Name))
		}

		if names[app.Name] {
			return goerr.New("duplicate app name",
				goerr.V("name", app.Name))
		}
		names[app.Name] = true
	}

	return nil
}

// FindApp finds an app by name
func (c *AppCatalog) FindApp(name string) (App, error) {
	for _, app := range c.Apps {
		if app.Name == name {
			return app, nil
		}
	}
	return App{}, goerr.Wrap(ErrAppNotFound, "no app with the given name",
		goerr.V("name", name))
}
