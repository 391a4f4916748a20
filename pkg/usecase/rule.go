package usecase

import (
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/secmon-lab/applink/pkg/domain/model"
)

var hostRulePattern = regexp.MustCompile("Host\\(`([^`]+)`\\)")

// HostFromRule extracts the first Host(`...`) matcher of a router rule
func HostFromRule(rule string) (string, bool) {
	m := hostRulePattern.FindStringSubmatch(rule)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// firstLabel returns the leftmost DNS label of host
func firstLabel(host string) string {
	label, _, _ := strings.Cut(host, ".")
	return label
}

// serverPort returns the effective port of a backend URL. Only absolute URLs
// with a host qualify.
func serverPort(raw string) (int, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return 0, false
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return 0, false
		}
		return port, true
	}

	if u.Scheme == "https" {
		return 443, true
	}
	return 80, true
}

func hiddenServiceURL(page model.Page, hiddenService string) string {
	return page.Scheme + "://" + hiddenService
}

func routedURL(page model.Page, subdomain string) string {
	return page.Scheme + "://" + subdomain + "." + page.Hostname
}

func defaultURL(page model.Page, port int) string {
	return page.Scheme + "://" + net.JoinHostPort(page.Hostname, strconv.Itoa(port))
}
