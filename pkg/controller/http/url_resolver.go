package http

import (
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/applink/pkg/domain/model"
)

// PageFromRequest returns the page the request's front end is served from.
// configuredURL: page URL configured via environment variable or flag
// If configuredURL is empty, the page is derived from request headers
func PageFromRequest(r *http.Request, configuredURL string) (model.Page, error) {
	// If explicitly configured, use that URL
	if configuredURL != "" {
		page, err := model.NewPage(configuredURL)
		if err != nil {
			return model.Page{}, goerr.Wrap(err, "invalid configured page URL")
		}
		return page, nil
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		// X-Forwarded-Proto may be a list as well, the first entry is the client's
		first, _, _ := strings.Cut(proto, ",")
		scheme = strings.ToLower(strings.TrimSpace(first))
	}

	// Priority: Alt-Used (Cloud Run) > X-Forwarded-Host > Host
	host := r.Host
	if altUsed := r.Header.Get("Alt-Used"); altUsed != "" {
		host = altUsed
	} else if forwardedHost := r.Header.Get("X-Forwarded-Host"); forwardedHost != "" {
		// Use the first one (original client request)
		first, _, _ := strings.Cut(forwardedHost, ",")
		host = strings.TrimSpace(first)
	}

	if host == "" {
		host = "localhost"
	}

	page, err := model.NewPage(scheme + "://" + host)
	if err != nil {
		return model.Page{}, goerr.Wrap(err, "failed to derive page from request",
			goerr.V("scheme", scheme),
			goerr.V("host", host))
	}
	return page, nil
}
