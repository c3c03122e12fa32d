// Package display formats sizes and candidate names for console output.
package display

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// MaxNameWidth is the terminal column budget for a name in progress lines.
const MaxNameWidth = 60

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// SafeName renders a candidate name so it cannot corrupt a terminal line.
// Names with control characters, invalid UTF-8, or leading/trailing spaces
// are quoted with escapes; everything else is returned as-is.
func SafeName(name string) string {
	if name == "" || needsQuoting(name) {
		return strconv.QuoteToGraphic(name)
	}
	return name
}

func needsQuoting(name string) bool {
	if strings.TrimSpace(name) != name {
		return true
	}
	for _, r := range name {
		if r == unicode.ReplacementChar || !unicode.IsGraphic(r) {
			return true
		}
	}
	return false
}

// ShortName is [SafeName] truncated to [MaxNameWidth] display columns.
// East Asian wide runes and emoji count as two columns.
func ShortName(name string) string {
	return runewidth.Truncate(SafeName(name), MaxNameWidth, "…")
}
