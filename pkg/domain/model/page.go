package model

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// hiddenServiceMarker marks an origin served over a Tor onion address
const hiddenServiceMarker = ".onion"

// Page describes where the front end is being served from. It replaces the
// browser location object: resolved URLs reuse its scheme and hostname.
type Page struct {
	// Scheme is "http" or "https", without the trailing colon
	Scheme string
	// Hostname excludes the port
	Hostname string
	// Origin is scheme://host[:port]
	Origin string
}

// NewPage builds a Page from an absolute URL such as "https://umbrel.local:8443/apps"
func NewPage(rawURL string) (Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Page{}, goerr.Wrap(err, "failed to parse page URL", goerr.V("url", rawURL))
	}

	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Hostname() == "" {
		return Page{}, goerr.Wrap(ErrInvalidPageURL, "unsupported page URL", goerr.V("url", rawURL))
	}

	return Page{
		Scheme:   scheme,
		Hostname: u.Hostname(),
		Origin:   scheme + "://" + u.Host,
	}, nil
}

// IsHiddenService reports whether the page is served from an onion address
func (p Page) IsHiddenService() bool {
	return strings.Contains(p.Origin, hiddenServiceMarker)
}

// LogValue returns structured log value
func (p Page) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("scheme", p.Scheme),
		slog.String("hostname", p.Hostname),
		slog.String("origin", p.Origin),
	)
}
