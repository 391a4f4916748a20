package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/applink/pkg/domain/interfaces"
	"github.com/secmon-lab/applink/pkg/domain/model"
	"github.com/secmon-lab/applink/pkg/service/traefik"
	"github.com/urfave/cli/v3"
)

// Proxy holds reverse proxy API configuration
type Proxy struct {
	APIURL   string
	Timeout  time.Duration
	Username string
	Password string
	Disabled bool
}

// Flags returns CLI flags for Proxy configuration
func (p *Proxy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "proxy-api",
			Usage:       "Base URL of the Traefik API (defaults to the page origin)",
			Category:    "Proxy",
			Sources:     cli.EnvVars("APPLINK_PROXY_API"),
			Destination: &p.APIURL,
		},
		&cli.DurationFlag{
			Name:        "proxy-timeout",
			Usage:       "Timeout of each Traefik API request (0 disables it)",
			Category:    "Proxy",
			Value:       traefik.DefaultTimeout,
			Sources:     cli.EnvVars("APPLINK_PROXY_TIMEOUT"),
			Destination: &p.Timeout,
		},
		&cli.StringFlag{
			Name:        "proxy-user",
			Usage:       "Basic auth user for the Traefik API",
			Category:    "Proxy",
			Sources:     cli.EnvVars("APPLINK_PROXY_USER"),
			Destination: &p.Username,
		},
		&cli.StringFlag{
			Name:        "proxy-password",
			Usage:       "Basic auth password for the Traefik API",
			Category:    "Proxy",
			Sources:     cli.EnvVars("APPLINK_PROXY_PASSWORD"),
			Destination: &p.Password,
		},
		&cli.BoolFlag{
			Name:        "proxy-disabled",
			Usage:       "Skip the Traefik lookup and always use host:port URLs",
			Category:    "Proxy",
			Sources:     cli.EnvVars("APPLINK_PROXY_DISABLED"),
			Destination: &p.Disabled,
		},
	}
}

// Configure returns the directory client used for apps viewed from page.
// Without an explicit API URL the API is expected on the page origin.
func (p *Proxy) Configure(page model.Page) interfaces.Directory {
	if p.Disabled {
		return nil
	}

	base := p.APIURL
	if base == "" {
		base = page.Origin
	}

	opts := []traefik.Option{traefik.WithTimeout(p.Timeout)}
	if p.Username != "" {
		opts = append(opts, traefik.WithBasicAuth(p.Username, p.Password))
	}
	return traefik.New(base, opts...)
}

// LogValue returns structured log value
func (p Proxy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_url", p.APIURL),
		slog.Duration("timeout", p.Timeout),
		slog.Bool("has_username", p.Username != ""),
		slog.Bool("has_password", p.Password != ""),
		slog.Bool("disabled", p.Disabled),
	)
}
