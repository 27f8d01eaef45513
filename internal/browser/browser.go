// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package browser opens URLs with the operating system's default handler.
package browser

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedURL is returned for URLs that are empty or not http(s).
var ErrUnsupportedURL = errors.New("unsupported url")

// Open launches url in the system browser and returns without waiting
// for the spawned process. Failures are for the caller to log; they must
// never abort the application.
func Open(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, url)
	}

	cmd := command(url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %q: %w", url, err)
	}

	// Detach: the browser outlives us, and a failed page load is the
	// browser's problem. Reap the child without blocking the caller.
	go func() { _ = cmd.Wait() }()

	return nil
}

func command(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}
