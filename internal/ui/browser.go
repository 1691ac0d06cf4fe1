package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Browser opens profile URLs outside the terminal
type Browser struct {
	command string // overrides the platform opener when set
	goos    string
	start   func(name string, args ...string) error
}

// NewBrowser creates a browser opener. An empty command selects the
// platform default (open, xdg-open or rundll32).
func NewBrowser(command string) *Browser {
	return &Browser{
		command: command,
		goos:    runtime.GOOS,
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return err
			}
			// Reap the opener without blocking the UI
			go func() { _ = cmd.Wait() }()
			return nil
		},
	}
}

// Open launches the opener for url
func (b *Browser) Open(url string) error {
	if url == "" {
		return fmt.Errorf("no profile URL")
	}
	name, args := b.commandFor(url)
	if err := b.start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

func (b *Browser) commandFor(url string) (string, []string) {
	if fields := strings.Fields(b.command); len(fields) > 0 {
		return fields[0], append(fields[1:], url)
	}
	switch b.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
