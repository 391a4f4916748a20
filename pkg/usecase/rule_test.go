package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/applink/pkg/usecase"
)

func TestHostFromRule(t *testing.T) {
	testCases := []struct {
		name     string
		rule     string
		host     string
		expected bool
	}{
		{
			name:     "plain host",
			rule:     "Host(`files.umbrel.example.com`)",
			host:     "files.umbrel.example.com",
			expected: true,
		},
		{
			name:     "host combined with path",
			rule:     "Host(`files.example.com`) && PathPrefix(`/api`)",
			host:     "files.example.com",
			expected: true,
		},
		{
			name:     "first host wins",
			rule:     "Host(`a.example.com`) || Host(`b.example.com`)",
			host:     "a.example.com",
			expected: true,
		},
		{
			name: "empty host",
			rule: "Host(``)",
		},
		{
			name: "host regexp is not a host",
			rule: "HostRegexp(`{sub:[a-z]+}.example.com`)",
		},
		{
			name: "quoted with double quotes",
			rule: `Host("files.example.com")`,
		},
		{
			name: "empty rule",
			rule: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			host, ok := usecase.HostFromRule(tc.rule)
			gt.Equal(t, ok, tc.expected)
			gt.Equal(t, host, tc.host)
		})
	}
}
