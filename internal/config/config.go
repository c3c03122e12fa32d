// Package config holds runtime configuration: defaults, CLI flag binding,
// the optional TOML config file, and validation.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// Generator selects which corpus is built.
type Generator string

const (
	GeneratorEdge    Generator = "edge"    // Adversarial filenames with fallback handling (default).
	GeneratorTypical Generator = "typical" // Benign filenames with extension-appropriate content.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ManifestFormat is the encoding of the optional run manifest.
type ManifestFormat string

const (
	ManifestTOML    ManifestFormat = "toml"    // Human-readable (default).
	ManifestMsgpack ManifestFormat = "msgpack" // Compact binary.
)

// Default corpus directories, one per generator.
const (
	DefaultEdgeDir    = "test_files"
	DefaultTypicalDir = "typical_files"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], then by CLI flags, and finally checked
// by [Config.Validate].
type Config struct {
	// What to build and where.
	Generator Generator
	OutputDir string // Default depends on Generator; see [DefaultDir].

	// Run output.
	ManifestPath   string         // Optional; empty disables the manifest.
	ManifestFormat ManifestFormat // Default: "toml".
	FailOnFallback bool           // Exit non-zero when any candidate fell back.

	// Display and logging.
	Verbose    bool
	Quiet      bool      // Suppress per-file progress lines.
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Optional TOML file applied before flags.
}

// DefaultConfig returns a Config for the edge generator with the original
// tool's behavior: no manifest, success exit status regardless of fallbacks.
func DefaultConfig() Config {
	return Config{
		Generator:      GeneratorEdge,
		ManifestFormat: ManifestTOML,
		FailOnFallback: false,
		Verbose:        false,
		Quiet:          false,
		ColorMode:      ColorAuto,
	}
}

// DefaultDir returns the conventional corpus directory for gen.
func DefaultDir(gen Generator) string {
	if gen == GeneratorTypical {
		return DefaultTypicalDir
	}
	return DefaultEdgeDir
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and fills in the output directory when it was
// left empty.
func (c *Config) Validate() error {
	switch c.Generator {
	case GeneratorEdge, GeneratorTypical:
		// valid
	default:
		return errors.New("invalid generator (use 'edge' or 'typical')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	switch c.ManifestFormat {
	case ManifestTOML, ManifestMsgpack:
		// valid
	default:
		return errors.New("invalid manifest format (use 'toml' or 'msgpack')")
	}

	if c.Verbose && c.Quiet {
		return errors.New("--verbose and --quiet are mutually exclusive")
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultDir(c.Generator)
	}
	return nil
}

// ValidatePaths ensures the manifest does not land inside the corpus
// directory, where it would become an extra corpus file. Both arguments must
// be absolute paths; an empty manifest path is always valid.
func (c *Config) ValidatePaths(corpusAbs, manifestAbs string) error {
	if manifestAbs == "" {
		return nil
	}
	sep := string(filepath.Separator)
	if manifestAbs == corpusAbs || strings.HasPrefix(manifestAbs, corpusAbs+sep) {
		return errors.New("manifest must not be written inside the corpus directory")
	}
	return nil
}
