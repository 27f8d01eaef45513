// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

package browser

import (
	"errors"
	"testing"
)

func TestOpenRejectsNonHTTPURLs(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"file scheme", "file:///etc/passwd"},
		{"no scheme", "example.com"},
		{"javascript", "javascript:alert(1)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Open(tc.url)
			if !errors.Is(err, ErrUnsupportedURL) {
				t.Errorf("Open(%q) = %v, want ErrUnsupportedURL", tc.url, err)
			}
		})
	}
}

func TestCommandPerPlatform(t *testing.T) {
	// The launcher binary is platform-specific; just verify the URL is
	// passed through as the final argument.
	cmd := command("https://example.com")
	if got := cmd.Args[len(cmd.Args)-1]; got != "https://example.com" {
		t.Errorf("last arg = %q, want the url", got)
	}
}
