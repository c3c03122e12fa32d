// Package manifest exports creation records so scripts and test harnesses
// can see which candidates fell back without parsing console output.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/backmassage/namecorpus/internal/config"
	"github.com/backmassage/namecorpus/internal/corpus"
)

// ErrUnknownFormat is returned for a format other than toml or msgpack.
var ErrUnknownFormat = errors.New("unknown manifest format")

// Manifest describes one corpus run.
type Manifest struct {
	Generator string  `toml:"generator" msgpack:"generator"`
	Directory string  `toml:"directory" msgpack:"directory"`
	Total     int     `toml:"total" msgpack:"total"`
	Created   int     `toml:"created" msgpack:"created"`
	Fallback  int     `toml:"fallback" msgpack:"fallback"`
	Failed    int     `toml:"failed" msgpack:"failed"`
	Entries   []Entry `toml:"entry" msgpack:"entries"`
}

// Entry is the serialized form of a corpus.CreationRecord.
type Entry struct {
	Index      int    `toml:"index" msgpack:"index"`
	Category   string `toml:"category" msgpack:"category"`
	Intended   string `toml:"intended" msgpack:"intended"`
	Final      string `toml:"final" msgpack:"final"`
	Outcome    string `toml:"outcome" msgpack:"outcome"`
	Error      string `toml:"error,omitempty" msgpack:"error,omitempty"`
	FallbackID int    `toml:"fallback_id" msgpack:"fallback_id"`
	NFC        bool   `toml:"nfc" msgpack:"nfc"`
	// Escaped is set when the names were not valid UTF-8 and Intended and
	// Final hold strconv.Unquote-able Go string literals instead.
	Escaped bool `toml:"escaped,omitempty" msgpack:"escaped,omitempty"`
}

// New builds a Manifest from records. TOML cannot carry invalid UTF-8, so
// such names are stored escaped (see [Entry.Escaped]) and error texts have
// invalid bytes replaced.
func New(gen config.Generator, dir string, records []corpus.CreationRecord) Manifest {
	s := corpus.Summarize(records)
	m := Manifest{
		Generator: string(gen),
		Directory: dir,
		Total:     s.Total,
		Created:   s.Created,
		Fallback:  s.Fallback,
		Failed:    s.Failed,
		Entries:   make([]Entry, 0, len(records)),
	}
	for _, r := range records {
		e := Entry{
			Index:      r.Index,
			Category:   string(r.Candidate.Category),
			Intended:   r.Candidate.Name,
			Final:      r.FinalName,
			Outcome:    string(r.Outcome),
			FallbackID: r.FallbackID,
			NFC:        r.Candidate.IsNFC(),
		}
		if !utf8.ValidString(e.Intended) || !utf8.ValidString(e.Final) {
			e.Intended = strconv.QuoteToGraphic(e.Intended)
			e.Final = strconv.QuoteToGraphic(e.Final)
			e.Escaped = true
		}
		if r.Err != nil {
			e.Error = strings.ToValidUTF8(r.Err.Error(), "\uFFFD")
		}
		m.Entries = append(m.Entries, e)
	}
	return m
}

// Encode serializes m in format.
func Encode(m Manifest, format config.ManifestFormat) ([]byte, error) {
	switch format {
	case config.ManifestTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, fmt.Errorf("encode toml manifest: %w", err)
		}
		return buf.Bytes(), nil
	case config.ManifestMsgpack:
		b, err := msgpack.Marshal(&m)
		if err != nil {
			return nil, fmt.Errorf("encode msgpack manifest: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Decode parses data written by Encode.
func Decode(data []byte, format config.ManifestFormat) (Manifest, error) {
	var m Manifest
	switch format {
	case config.ManifestTOML:
		if _, err := toml.Decode(string(data), &m); err != nil {
			return Manifest{}, fmt.Errorf("decode toml manifest: %w", err)
		}
	case config.ManifestMsgpack:
		if err := msgpack.Unmarshal(data, &m); err != nil {
			return Manifest{}, fmt.Errorf("decode msgpack manifest: %w", err)
		}
	default:
		return Manifest{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return m, nil
}

// Write encodes m and writes it to path, creating parent directories.
func Write(path string, format config.ManifestFormat, m Manifest) error {
	data, err := Encode(m, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Read loads a manifest written by Write.
func Read(path string, format config.ManifestFormat) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return Decode(data, format)
}
