package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/applink/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Target holds the app and page a single resolution runs for
type Target struct {
	Port          int
	Name          string
	HiddenService string
	Path          string
	PageURL       string
}

// Flags returns CLI flags for Target configuration
func (t *Target) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "port",
			Usage:       "Internal port of the app",
			Category:    "App",
			Required:    true,
			Destination: &t.Port,
		},
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Name of the app",
			Category:    "App",
			Value:       "app",
			Destination: &t.Name,
		},
		&cli.StringFlag{
			Name:        "hidden-service",
			Usage:       "Onion address of the app",
			Category:    "App",
			Destination: &t.HiddenService,
		},
		&cli.StringFlag{
			Name:        "path",
			Usage:       "Path appended to the resolved URL",
			Category:    "App",
			Destination: &t.Path,
		},
		&cli.StringFlag{
			Name:        "page-url",
			Usage:       "URL the front end is served from",
			Category:    "App",
			Value:       "http://localhost",
			Sources:     cli.EnvVars("APPLINK_PAGE_URL"),
			Destination: &t.PageURL,
		},
	}
}

// Configure validates the flags and returns the app and page
func (t *Target) Configure() (model.App, model.Page, error) {
	app := model.App{
		Name:          t.Name,
		Port:          t.Port,
		HiddenService: t.HiddenService,
		Path:          t.Path,
	}
	if err := app.Validate(); err != nil {
		return model.App{}, model.Page{}, err
	}

	page, err := model.NewPage(t.PageURL)
	if err != nil {
		return model.App{}, model.Page{}, goerr.Wrap(err, "invalid page URL")
	}

	return app, page, nil
}

// LogValue returns structured log value
func (t Target) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("port", t.Port),
		slog.String("name", t.Name),
		slog.String("hidden_service", t.HiddenService),
		slog.String("path", t.Path),
		slog.String("page_url", t.PageURL),
	)
}
