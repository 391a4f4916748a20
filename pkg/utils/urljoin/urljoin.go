package urljoin

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Join resolves relative against base as a browser would. Unlike a plain path
// join it keeps the trailing slash of base when relative is empty or only a
// query string, e.g. Join("http://localhost:9091/transmission/web/", "?a=1")
// returns "http://localhost:9091/transmission/web/?a=1".
func Join(base, relative string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse base URL", goerr.V("base", base))
	}
	if !b.IsAbs() || b.Host == "" {
		return "", goerr.New("base URL must be absolute", goerr.V("base", base))
	}
	if b.Path == "" && b.Opaque == "" {
		b.Path = "/"
	}

	ref, err := url.Parse(relative)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse relative URL",
			goerr.V("base", base),
			goerr.V("relative", relative))
	}

	joined := b.ResolveReference(ref)
	if relative == "" {
		joined.Fragment = ""
		joined.RawFragment = ""
	}
	return joined.String(), nil
}

// PathJoin concatenates base and path with exactly one slash between them. It
// has no URL semantics and works for values that Join rejects, such as
// PathJoin("foo", "bar").
func PathJoin(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
