package http_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	ctrlhttp "github.com/secmon-lab/applink/pkg/controller/http"
)

func TestPageFromRequest(t *testing.T) {
	t.Run("returns configured page when provided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "example.com"

		page, err := ctrlhttp.PageFromRequest(req, "https://configured.example.com:8443")
		gt.NoError(t, err)
		gt.Equal(t, page.Origin, "https://configured.example.com:8443")
		gt.Equal(t, page.Hostname, "configured.example.com")
	})

	t.Run("invalid configured page is an error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := ctrlhttp.PageFromRequest(req, "ftp://configured.example.com")
		gt.Error(t, err)
	})

	t.Run("plain request uses http and Host header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "umbrel.local:8080"

		page, err := ctrlhttp.PageFromRequest(req, "")
		gt.NoError(t, err)
		gt.Equal(t, page.Scheme, "http")
		gt.Equal(t, page.Hostname, "umbrel.local")
		gt.Equal(t, page.Origin, "http://umbrel.local:8080")
	})

	t.Run("TLS request uses https", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "umbrel.local"
		req.TLS = &tls.ConnectionState{}

		page, err := ctrlhttp.PageFromRequest(req, "")
		gt.NoError(t, err)
		gt.Equal(t, page.Scheme, "https")
	})

	t.Run("X-Forwarded-Proto overrides scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "umbrel.local"
		req.Header.Set("X-Forwarded-Proto", "HTTPS, http")

		page, err := ctrlhttp.PageFromRequest(req, "")
		gt.NoError(t, err)
		gt.Equal(t, page.Scheme, "https")
	})

	t.Run("Alt-Used takes precedence over X-Forwarded-Host", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "internal.example.com"
		req.Header.Set("X-Forwarded-Host", "public.example.com")
		req.Header.Set("Alt-Used", "alt.example.com")

		page, err := ctrlhttp.PageFromRequest(req, "")
		gt.NoError(t, err)
		gt.Equal(t, page.Hostname, "alt.example.com")
	})

	t.Run("uses first X-Forwarded-Host value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "internal.example.com"
		req.Header.Set("X-Forwarded-Host", "  public.example.com  , proxy1.example.com")

		page, err := ctrlhttp.PageFromRequest(req, "")
		gt.NoError(t, err)
		gt.Equal(t, page.Hostname, "public.example.com")
	})

	t.Run("onion host is a hidden service page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "abcdefghijklmnop.onion"

		page, err := ctrlhttp.PageFromRequest(req, "")
		gt.NoError(t, err)
		gt.True(t, page.IsHiddenService())
	})

	t.Run("falls back to localhost when no host is available", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = ""

		page, err := ctrlhttp.PageFromRequest(req, "")
		gt.NoError(t, err)
		gt.Equal(t, page.Origin, "http://localhost")
	})

	t.Run("handles IPv6 addresses with port", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "[2001:db8::1]:8080"

		page, err := ctrlhttp.PageFromRequest(req, "")
		gt.NoError(t, err)
		gt.Equal(t, page.Hostname, "2001:db8::1")
		gt.Equal(t, page.Origin, "http://[2001:db8::1]:8080")
	})

	t.Run("unsupported forwarded scheme is an error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "umbrel.local"
		req.Header.Set("X-Forwarded-Proto", "ws")

		_, err := ctrlhttp.PageFromRequest(req, "")
		gt.Error(t, err)
	})
}
