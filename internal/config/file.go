package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the keys accepted in a TOML config file.
type fileConfig struct {
	Color          string `toml:"color"`
	LogFile        string `toml:"log_file"`
	Verbose        bool   `toml:"verbose"`
	Quiet          bool   `toml:"quiet"`
	Manifest       string `toml:"manifest"`
	ManifestFormat string `toml:"manifest_format"`
	FailOnFallback bool   `toml:"fail_on_fallback"`
}

// LoadFile overlays the settings found in the TOML file at path onto cfg.
// Keys absent from the file leave cfg untouched. changed reports whether the
// flag of the same name was set on the command line; such settings are kept,
// so flags take precedence over the file. A nil changed treats every flag as
// unset.
func LoadFile(path string, cfg *Config, changed func(flag string) bool) error {
	if changed == nil {
		changed = func(string) bool { return false }
	}
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("color") && !changed("color") && !changed("no-color") {
		if err := (&colorModeValue{&cfg.ColorMode}).Set(fc.Color); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if meta.IsDefined("log_file") && !changed("log") {
		cfg.LogFile = fc.LogFile
	}
	if meta.IsDefined("verbose") && !changed("verbose") {
		cfg.Verbose = fc.Verbose
	}
	if meta.IsDefined("quiet") && !changed("quiet") {
		cfg.Quiet = fc.Quiet
	}
	if meta.IsDefined("manifest") && !changed("manifest") {
		cfg.ManifestPath = fc.Manifest
	}
	if meta.IsDefined("manifest_format") && !changed("manifest-format") {
		if err := (&manifestFormatValue{&cfg.ManifestFormat}).Set(fc.ManifestFormat); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if meta.IsDefined("fail_on_fallback") && !changed("fail-on-fallback") {
		cfg.FailOnFallback = fc.FailOnFallback
	}
	return nil
}
