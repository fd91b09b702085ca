package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
)

// Launcher opens catalog detail pages in a web browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments placed before the URL
	goos    string
	logger  *slog.Logger

	// start runs the prepared command without waiting for it
	start func(cmd *exec.Cmd) error
}

// NewLauncher creates a new Launcher
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: command,
		args:    args,
		goos:    runtime.GOOS,
		logger:  logger,
		start:   func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Open opens rawURL in the configured browser or the system default handler.
// Only http and https URLs are accepted.
func (l *Launcher) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("refusing to open non-web URL %q", rawURL)
	}

	cmd := l.buildCommand(rawURL)
	l.logger.Info("opening in browser", "command", cmd.Path, "args", cmd.Args[1:])

	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// buildCommand returns the command that opens rawURL
func (l *Launcher) buildCommand(rawURL string) *exec.Cmd {
	// Tier 1: user configured a specific browser
	if l.command != "" {
		args := append(append([]string{}, l.args...), rawURL)
		return exec.Command(l.command, args...)
	}

	// Tier 2: system default handler (open/xdg-open/start)
	switch l.goos {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", rawURL)
	default:
		// Linux and other Unix-like systems
		return exec.Command("xdg-open", rawURL)
	}
}
