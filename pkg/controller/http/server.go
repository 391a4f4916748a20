package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/applink/pkg/domain/interfaces"
	"github.com/secmon-lab/applink/pkg/domain/model"
	"github.com/secmon-lab/applink/pkg/usecase"
	"github.com/secmon-lab/applink/pkg/utils/apperr"
)

// DirectoryFactory returns the proxy directory to consult for a page. It may
// return nil when no proxy API is available.
type DirectoryFactory func(page model.Page) interfaces.Directory

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	catalog   *model.AppCatalog
	directory DirectoryFactory
	pageURL   string
}

// AppURL is the JSON representation of a resolved app
type AppURL struct {
	Name string `json:"name"`
	Port int    `json:"port"`
	URL  string `json:"url"`
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	catalog *model.AppCatalog,
	directory DirectoryFactory,
	pageURL string,
) (*Server, error) {
	if catalog == nil {
		catalog = &model.AppCatalog{}
	}
	if directory == nil {
		return nil, goerr.New("directory factory is required")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:    router,
		catalog:   catalog,
		directory: directory,
		pageURL:   pageURL,
	}

	// Health check
	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/apps", server.handleListApps)
		r.Get("/apps/{name}", server.handleGetApp)
		r.Get("/resolve", server.handleResolve)
	})

	return server, nil
}

// resolver builds a resolver for the page the request was made from
func (s *Server) resolver(r *http.Request) (*usecase.Resolver, error) {
	page, err := PageFromRequest(r, s.pageURL)
	if err != nil {
		return nil, err
	}
	return usecase.NewResolver(s.directory(page), page), nil
}

func (s *Server) handleListApps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resolver, err := s.resolver(r)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	apps := make([]AppURL, 0, len(s.catalog.Apps))
	for _, app := range s.catalog.Apps {
		apps = append(apps, AppURL{
			Name: app.Name,
			Port: app.Port,
			URL:  resolver.ResolveWithPath(ctx, app),
		})
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"apps": apps})
}

func (s *Server) handleGetApp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	app, err := s.catalog.FindApp(chi.URLParam(r, "name"))
	if err != nil {
		apperr.Handle(ctx, err)
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrAppNotFound) {
			status = http.StatusNotFound
		}
		writeError(ctx, w, err, status)
		return
	}

	resolver, err := s.resolver(r)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	writeJSON(ctx, w, http.StatusOK, AppURL{
		Name: app.Name,
		Port: app.Port,
		URL:  resolver.ResolveWithPath(ctx, app),
	})
}

// handleResolve resolves an app described by query parameters
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	port, err := strconv.Atoi(q.Get("port"))
	if err != nil {
		err = goerr.Wrap(model.ErrInvalidPort, "port query parameter is not a number",
			goerr.V("port", q.Get("port")))
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	app := model.App{
		Name:          q.Get("name"),
		Port:          port,
		HiddenService: q.Get("hiddenService"),
		Path:          q.Get("path"),
	}
	if app.Name == "" {
		app.Name = "port-" + strconv.Itoa(port)
	}
	if err := app.Validate(); err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	resolver, err := s.resolver(r)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	writeJSON(ctx, w, http.StatusOK, AppURL{
		Name: app.Name,
		Port: app.Port,
		URL:  resolver.ResolveWithPath(ctx, app),
	})
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "applink",
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}
