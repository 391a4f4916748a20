package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/applink/pkg/cli/config"
	controller "github.com/secmon-lab/applink/pkg/controller/http"
	"github.com/secmon-lab/applink/pkg/domain/interfaces"
	"github.com/secmon-lab/applink/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		proxyCfg   config.Proxy
		catalogCfg config.Catalog
	)

	flags := joinFlags(
		serverCfg.Flags(),
		proxyCfg.Flags(),
		catalogCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting applink server",
				slog.Any("server", serverCfg),
				slog.Any("proxy", proxyCfg),
				slog.String("apps", catalogCfg.Path),
			)

			catalog, err := catalogCfg.Configure(ctx)
			if err != nil {
				return err
			}
			logger.Info("App catalog loaded", slog.Int("apps", len(catalog.Apps)))

			directory := func(page model.Page) interfaces.Directory {
				return proxyCfg.Configure(page)
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, catalog, directory, serverCfg.PageURL)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server stopped unexpectedly",
					goerr.V("addr", serverCfg.Addr))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
