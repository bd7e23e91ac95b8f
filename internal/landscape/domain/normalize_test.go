package domain

import "testing"

func TestCanonical(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SYS-001", "SYS-001"},
		{"SYS-001-P", "SYS-001"},
		{"SYS-001-C", "SYS-001"},
		{"API_GATEWAY-C", "API_GATEWAY"},
		{"-P", ""},
		{"", ""},
		{"SYS-001-X", "SYS-001-X"},
	}
	for _, tc := range cases {
		if got := Canonical(tc.in); got != tc.want {
			t.Errorf("Canonical(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeMiddleware(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"NONE", ""},
		{"none", ""},
		{"None", ""},
		{"API_GATEWAY", "API_GATEWAY"},
		{"API_GATEWAY-P", "API_GATEWAY"},
		{" ESB ", "ESB"},
	}
	for _, tc := range cases {
		if got := NormalizeMiddleware(tc.in); got != tc.want {
			t.Errorf("NormalizeMiddleware(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
