// Package term resolves whether ANSI colors should be used and applies the
// decision process-wide.
//
// fatih/color keeps a package-level NoColor switch; [Configure] sets it once
// during startup so every color.Color created afterwards (logging, display)
// follows the same decision.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"
	xterm "golang.org/x/term"

	"github.com/backmassage/namecorpus/internal/config"
)

// Configure resolves the color mode and applies it to fatih/color.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) bool {
	enabled := Resolve(mode, os.Stdout)
	color.NoColor = !enabled
	return enabled
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return !color.NoColor }

// Resolve determines whether colors should be enabled based on the configured
// mode, TTY detection on out, and the NO_COLOR env var (https://no-color.org).
func Resolve(mode config.ColorMode, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(out) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
