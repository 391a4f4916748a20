package config

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/applink/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Catalog holds the app catalog configuration
type Catalog struct {
	Path string
}

// Flags returns CLI flags for Catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "apps",
			Usage:       "Path to the YAML app catalog",
			Category:    "Apps",
			Sources:     cli.EnvVars("APPLINK_APPS"),
			Destination: &c.Path,
		},
	}
}

// Configure loads the catalog. An unset path yields an empty catalog.
func (c *Catalog) Configure(ctx context.Context) (*model.AppCatalog, error) {
	if c.Path == "" {
		ctxlog.From(ctx).Warn("No app catalog configured, only /api/resolve is usable")
		return &model.AppCatalog{}, nil
	}
	return LoadAppCatalogFromFile(c.Path)
}

// LoadAppCatalogFromFile loads the app catalog from YAML file
func LoadAppCatalogFromFile(path string) (*model.AppCatalog, error) {
	if path == "" {
		return nil, goerr.New("app catalog file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "app catalog file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read app catalog file",
			goerr.V("path", path))
	}

	var catalog model.AppCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML app catalog",
			goerr.V("path", path))
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid app catalog",
			goerr.V("path", path))
	}

	return &catalog, nil
}
