package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/applink/pkg/domain/model"
)

func TestNewPage(t *testing.T) {
	t.Run("https with port", func(t *testing.T) {
		page, err := model.NewPage("https://umbrel.local:8443/apps?x=1")
		gt.NoError(t, err)
		gt.Equal(t, page.Scheme, "https")
		gt.Equal(t, page.Hostname, "umbrel.local")
		gt.Equal(t, page.Origin, "https://umbrel.local:8443")
	})

	t.Run("scheme is lowercased", func(t *testing.T) {
		page, err := model.NewPage("HTTP://umbrel.local")
		gt.NoError(t, err)
		gt.Equal(t, page.Scheme, "http")
		gt.Equal(t, page.Origin, "http://umbrel.local")
	})

	t.Run("IPv6 hostname has no brackets", func(t *testing.T) {
		page, err := model.NewPage("http://[2001:db8::1]:8080")
		gt.NoError(t, err)
		gt.Equal(t, page.Hostname, "2001:db8::1")
		gt.Equal(t, page.Origin, "http://[2001:db8::1]:8080")
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		_, err := model.NewPage("ftp://umbrel.local")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidPageURL))
	})

	t.Run("relative URL", func(t *testing.T) {
		_, err := model.NewPage("/apps")
		gt.Error(t, err)
	})
}

func TestPage_IsHiddenService(t *testing.T) {
	testCases := []struct {
		origin   string
		expected bool
	}{
		{"http://abcdefghijklmnop.onion", true},
		{"http://abcdefghijklmnop.onion:8080", true},
		{"https://umbrel.local", false},
		{"http://onion.example.com", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.origin, func(t *testing.T) {
			page := model.Page{Origin: tc.origin}
			gt.Equal(t, page.IsHiddenService(), tc.expected)
		})
	}
}
