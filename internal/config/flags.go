package config

// This file implements CLI flag binding on top of pflag (via cobra).
// Flags are grouped into display/utility (persistent) and build (per command).
// Negated flags (e.g. --no-color) are applied after parsing so Config defaults
// hold unless set.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// NegatedFlags holds boolean flags that are applied after parsing.
// These override another setting rather than mapping onto a field directly.
type NegatedFlags struct {
	noColor bool
}

// BindPersistentFlags registers the flags shared by every subcommand:
// --color, --no-color, --verbose, --log and --config.
func BindPersistentFlags(fs *pflag.FlagSet, cfg *Config, n *NegatedFlags) {
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "Colored logs: auto | always | never")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs (same as --color=never)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Read settings from a TOML file (flags take precedence)")
}

// BindBuildFlags registers the flags of the corpus-building subcommands.
func BindBuildFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.ManifestPath, "manifest", "m", "", "Write a manifest of creation records to this path")
	fs.Var(&manifestFormatValue{&cfg.ManifestFormat}, "manifest-format", "Manifest encoding: toml | msgpack")
	fs.BoolVar(&cfg.FailOnFallback, "fail-on-fallback", false, "Exit 1 if any candidate needed a fallback name")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Only print the summary")
}

// ApplyNegatedFlags copies negated flag values into cfg.
func ApplyNegatedFlags(cfg *Config, n *NegatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	}
}

// ParseGenerator maps a user-supplied generator name onto a Generator.
func ParseGenerator(s string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edge", "edge-case", "edgecase":
		return GeneratorEdge, nil
	case "typical":
		return GeneratorTypical, nil
	}
	return "", fmt.Errorf("invalid generator %q (use 'edge' or 'typical')", s)
}

// pflag.Value adapters so enum types (ColorMode, ManifestFormat) work with fs.Var.

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always", "on":
		*c.p = ColorAlways
	case "never", "off":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}

type manifestFormatValue struct{ p *ManifestFormat }

func (m *manifestFormatValue) String() string { return string(*m.p) }
func (m *manifestFormatValue) Type() string   { return "format" }
func (m *manifestFormatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "toml":
		*m.p = ManifestTOML
	case "msgpack", "mpk":
		*m.p = ManifestMsgpack
	default:
		return fmt.Errorf("invalid manifest format %q (use 'toml' or 'msgpack')", s)
	}
	return nil
}
