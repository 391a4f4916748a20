package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/applink/pkg/cli/config"
	"github.com/secmon-lab/applink/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdResolve() *cli.Command {
	var (
		targetCfg config.Target
		proxyCfg  config.Proxy
		withPath  bool
	)

	flags := joinFlags(
		targetCfg.Flags(),
		proxyCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "with-path",
				Usage:       "Join the app path onto the resolved URL",
				Category:    "App",
				Destination: &withPath,
			},
		},
	)

	return &cli.Command{
		Name:  "resolve",
		Usage: "Print the public URL of an app",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			app, page, err := targetCfg.Configure()
			if err != nil {
				return err
			}

			logger.Debug("Resolving app URL",
				slog.Any("app", app),
				slog.Any("page", page),
				slog.Any("proxy", proxyCfg),
			)

			resolver := usecase.NewResolver(proxyCfg.Configure(page), page)

			var url string
			if withPath {
				url = resolver.ResolveWithPath(ctx, app)
			} else {
				url = resolver.Resolve(ctx, app)
			}

			_, err = fmt.Fprintln(c.Root().Writer, url)
			return err
		},
	}
}
