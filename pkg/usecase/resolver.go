package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/applink/pkg/domain/interfaces"
	"github.com/secmon-lab/applink/pkg/domain/model"
	"github.com/secmon-lab/applink/pkg/utils/urljoin"
)

// Resolver finds the public URL of an app behind the reverse proxy. Each call
// to Resolve is independent; Resolver holds no mutable state.
type Resolver struct {
	directory interfaces.Directory
	page      model.Page
}

// NewResolver creates a resolver for apps viewed from page. directory may be
// nil, in which case every app resolves to its default URL.
func NewResolver(directory interfaces.Directory, page model.Page) *Resolver {
	return &Resolver{
		directory: directory,
		page:      page,
	}
}

// Resolve returns the URL of app as seen from the page. Lookups against the
// directory run one after another and block; the first router whose service
// has a server on app.Port and whose rule names a host wins. Any failure
// yields scheme://hostname:port.
func (r *Resolver) Resolve(ctx context.Context, app model.App) (resolved string) {
	logger := ctxlog.From(ctx).With(
		slog.String("resolution_id", uuid.NewString()),
		slog.Any("app", app),
	)
	ctx = ctxlog.With(ctx, logger)

	if r.page.IsHiddenService() {
		return hiddenServiceURL(r.page, app.HiddenService)
	}

	fallback := defaultURL(r.page, app.Port)
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Proxy lookup failed", "recover", rec)
			resolved = fallback
		}
	}()

	if r.directory == nil {
		return fallback
	}

	routers, ok := r.directory.Routers(ctx)
	if !ok || len(routers) == 0 {
		logger.Debug("No routers available, using default URL", "url", fallback)
		return fallback
	}

	services := &serviceLookup{directory: r.directory}
	for _, router := range routers {
		subdomain, ok := r.matchRouter(ctx, services, router, app.Port)
		if !ok {
			continue
		}

		url := routedURL(r.page, subdomain)
		logger.Debug("Resolved app URL from proxy router",
			"service", router.ServiceName,
			"rule", router.Rule,
			"url", url,
		)
		return url
	}

	logger.Debug("No router matched app port, using default URL", "url", fallback)
	return fallback
}

// ResolveWithPath resolves app and joins its path onto the result
func (r *Resolver) ResolveWithPath(ctx context.Context, app model.App) string {
	base := r.Resolve(ctx, app)

	joined, err := urljoin.Join(base, app.Path)
	if err != nil {
		ctxlog.From(ctx).Debug("Falling back to path join", "base", base, "error", err)
		return urljoin.PathJoin(base, app.Path)
	}
	return joined
}

// matchRouter returns the subdomain routed to port by router. A panic while
// inspecting the router only discards this router.
func (r *Resolver) matchRouter(ctx context.Context, services *serviceLookup, router model.Router, port int) (subdomain string, ok bool) {
	logger := ctxlog.From(ctx)
	defer func() {
		if rec := recover(); rec != nil {
			logger.Warn("Skipping router after lookup failure",
				"service", router.ServiceName,
				"recover", rec,
			)
			subdomain, ok = "", false
		}
	}()

	if router.ServiceName == "" {
		return "", false
	}

	svc, found := services.find(ctx, router.ServiceName)
	if !found {
		logger.Debug("Service not found", "service", router.ServiceName)
		return "", false
	}

	for _, srv := range svc.Servers {
		p, valid := serverPort(srv.URL)
		if !valid || p != port {
			continue
		}

		host, matched := HostFromRule(router.Rule)
		if !matched {
			continue
		}
		return firstLabel(host), true
	}

	return "", false
}

// serviceLookup resolves services for one Resolve call. The full listing is
// fetched at most once and only when a direct lookup misses.
type serviceLookup struct {
	directory interfaces.Directory
	listing   model.ServiceDirectory
	fetched   bool
}

func (l *serviceLookup) find(ctx context.Context, name string) (model.Service, bool) {
	if svc, ok := l.directory.Service(ctx, name); ok {
		return svc, true
	}

	if !l.fetched {
		l.fetched = true
		listing, ok := l.directory.Services(ctx)
		if ok {
			l.listing = listing
		}
	}
	return l.listing.Find(name)
}
