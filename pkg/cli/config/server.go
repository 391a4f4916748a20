package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr    string
	PageURL string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("APPLINK_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "page-url",
			Usage:       "URL the front end is served from (if not set, automatically detected from request headers)",
			Value:       "",
			Sources:     cli.EnvVars("APPLINK_PAGE_URL"),
			Destination: &s.PageURL,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("page_url", s.PageURL),
	)
}
