package cli_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/applink/pkg/cli"
	"github.com/secmon-lab/applink/pkg/service/traefik"
)

func newTraefikAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(traefik.PathRouters, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"service": "app@docker", "rule": "Host(` + "`app.umbrel.example.com`" + `)"}]`))
	})
	mux.HandleFunc(traefik.PathServices+"/app@docker", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"loadBalancer": {"servers": [{"url": "http://10.21.0.7:3700"}]}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func runResolve(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	base := []string{"applink", "--log-format", "json", "--log-level", "error", "resolve"}
	err := cli.NewApp(&out).Run(context.Background(), append(base, args...))
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	api := newTraefikAPI(t)

	t.Run("routed app", func(t *testing.T) {
		out, err := runResolve(t,
			"--port", "3700",
			"--page-url", "https://umbrel.example.com",
			"--proxy-api", api.URL,
		)
		gt.NoError(t, err)
		gt.Equal(t, out, "https://app.umbrel.example.com\n")
	})

	t.Run("routed app with path", func(t *testing.T) {
		out, err := runResolve(t,
			"--port", "3700",
			"--path", "/admin/",
			"--with-path",
			"--page-url", "https://umbrel.example.com",
			"--proxy-api", api.URL,
		)
		gt.NoError(t, err)
		gt.Equal(t, out, "https://app.umbrel.example.com/admin/\n")
	})

	t.Run("unrouted port uses default", func(t *testing.T) {
		out, err := runResolve(t,
			"--port", "8081",
			"--page-url", "https://umbrel.example.com",
			"--proxy-api", api.URL,
		)
		gt.NoError(t, err)
		gt.Equal(t, out, "https://umbrel.example.com:8081\n")
	})

	t.Run("disabled proxy uses default", func(t *testing.T) {
		out, err := runResolve(t,
			"--port", "3700",
			"--page-url", "http://umbrel.local",
			"--proxy-disabled",
		)
		gt.NoError(t, err)
		gt.Equal(t, out, "http://umbrel.local:3700\n")
	})

	t.Run("onion page uses hidden service", func(t *testing.T) {
		out, err := runResolve(t,
			"--port", "3700",
			"--hidden-service", "hidden.onion",
			"--page-url", "http://abcdefghijklmnop.onion",
			"--proxy-api", api.URL,
		)
		gt.NoError(t, err)
		gt.Equal(t, out, "http://hidden.onion\n")
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := runResolve(t, "--port", "0", "--proxy-disabled")
		gt.Error(t, err)
	})

	t.Run("invalid page URL", func(t *testing.T) {
		_, err := runResolve(t, "--port", "3700", "--page-url", "umbrel.local", "--proxy-disabled")
		gt.Error(t, err)
	})
}
