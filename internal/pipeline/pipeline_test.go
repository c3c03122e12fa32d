package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/namecorpus/internal/config"
	"github.com/backmassage/namecorpus/internal/corpus"
	"github.com/backmassage/namecorpus/internal/logging"
	"github.com/backmassage/namecorpus/internal/manifest"
)

// --- Inventory tests ---

func TestInventory_RegularFilesSorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.txt")
	touch(t, dir, "a.txt")
	touch(t, dir, "#hash.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	touch(t, filepath.Join(dir, "sub"), "nested.txt")

	files, err := Inventory(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"#hash.txt", "a.txt", "b.txt"}, files)
}

func TestInventory_EmptyDir(t *testing.T) {
	files, err := Inventory(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestInventory_Missing(t *testing.T) {
	_, err := Inventory(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

// --- RunStats tests ---

func TestRunStats_Add(t *testing.T) {
	var s RunStats
	s.add(corpus.CreationRecord{Outcome: corpus.OutcomeCreated, Bytes: 10})
	s.add(corpus.CreationRecord{Outcome: corpus.OutcomeFallback, Bytes: 5})
	s.add(corpus.CreationRecord{Outcome: corpus.OutcomeFailed})

	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 1, s.Created)
	assert.Equal(t, 1, s.Fallback)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, int64(15), s.BytesWritten)
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name           string
		failOnFallback bool
		stats          RunStats
		want           int
	}{
		{"clean", false, RunStats{Created: 100}, 0},
		{"fallback tolerated", false, RunStats{Created: 99, Fallback: 1}, 0},
		{"failure tolerated", false, RunStats{Created: 99, Failed: 1}, 0},
		{"clean strict", true, RunStats{Created: 100}, 0},
		{"fallback strict", true, RunStats{Created: 99, Fallback: 1}, 1},
		{"failure strict", true, RunStats{Created: 99, Failed: 1}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.FailOnFallback = tc.failOnFallback
			assert.Equal(t, tc.want, ExitCode(&cfg, tc.stats))
		})
	}
}

// --- Run tests ---

func TestRun_Edge(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("only Linux filesystems are known to accept every edge name")
	}
	cfg := testConfig(t, config.GeneratorEdge)
	log, out := testLogger(t, &cfg)

	stats, err := Run(&cfg, log)
	require.NoError(t, err)

	assert.Equal(t, 100, stats.Total)
	assert.Equal(t, 100, stats.Created)
	assert.Zero(t, stats.Fallback)
	assert.Zero(t, stats.Failed)
	assert.Equal(t, 100, stats.OnDisk)
	assert.Len(t, stats.Records, 100)
	assert.Zero(t, ExitCode(&cfg, stats))

	assert.Contains(t, out.String(), "[1/100] Created: ")
	assert.Contains(t, out.String(), "Created 100 files in '"+cfg.OutputDir+"' directory")
	assert.Contains(t, out.String(), "  - special-char")
}

func TestRun_TypicalContent(t *testing.T) {
	cfg := testConfig(t, config.GeneratorTypical)
	log, _ := testLogger(t, &cfg)

	stats, err := Run(&cfg, log)
	require.NoError(t, err)
	assert.Equal(t, 100, stats.Created)

	b, err := os.ReadFile(filepath.Join(cfg.OutputDir, "config.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "{"), "config.json: %q", b)

	b, err = os.ReadFile(filepath.Join(cfg.OutputDir, "meeting_notes.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "text document")
}

func TestRun_Quiet(t *testing.T) {
	cfg := testConfig(t, config.GeneratorTypical)
	cfg.Quiet = true
	log, out := testLogger(t, &cfg)

	_, err := Run(&cfg, log)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "[1/100]")
	assert.Contains(t, out.String(), "Created 100 files")
}

func TestRun_ReportsLeftoverFiles(t *testing.T) {
	cfg := testConfig(t, config.GeneratorTypical)
	require.NoError(t, os.MkdirAll(cfg.OutputDir, 0o755))
	touch(t, cfg.OutputDir, "left_over_from_before.bin")
	log, out := testLogger(t, &cfg)

	stats, err := Run(&cfg, log)
	require.NoError(t, err)
	assert.Equal(t, 101, stats.OnDisk)
	assert.Contains(t, out.String(), "1 from earlier runs")
}

func TestRun_WritesManifest(t *testing.T) {
	for _, format := range []config.ManifestFormat{config.ManifestTOML, config.ManifestMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			cfg := testConfig(t, config.GeneratorTypical)
			cfg.ManifestPath = filepath.Join(t.TempDir(), "out", "manifest."+string(format))
			cfg.ManifestFormat = format
			log, _ := testLogger(t, &cfg)

			stats, err := Run(&cfg, log)
			require.NoError(t, err)

			m, err := manifest.Read(cfg.ManifestPath, format)
			require.NoError(t, err)
			assert.Equal(t, "typical", m.Generator)
			assert.Equal(t, stats.Total, m.Total)
			assert.Equal(t, stats.Created, m.Created)
			require.Len(t, m.Entries, 100)
			assert.Equal(t, "meeting_notes.txt", m.Entries[0].Intended)

			// The manifest is not part of the corpus.
			assert.Equal(t, 100, stats.OnDisk)
		})
	}
}

func TestRun_ManifestInsideCorpus(t *testing.T) {
	cfg := testConfig(t, config.GeneratorTypical)
	cfg.ManifestPath = filepath.Join(cfg.OutputDir, "manifest.toml")
	log, _ := testLogger(t, &cfg)

	_, err := Run(&cfg, log)
	require.Error(t, err)
	assert.NoDirExists(t, cfg.OutputDir, "nothing should be built when the manifest path is rejected")
}

func TestRun_TargetIsAFile(t *testing.T) {
	cfg := testConfig(t, config.GeneratorEdge)
	require.NoError(t, os.WriteFile(cfg.OutputDir, []byte("x"), 0o644))
	log, _ := testLogger(t, &cfg)

	_, err := Run(&cfg, log)
	assert.Error(t, err)
}

// --- Helpers ---

func testConfig(t *testing.T, gen config.Generator) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Generator = gen
	cfg.OutputDir = filepath.Join(t.TempDir(), config.DefaultDir(gen))
	cfg.ColorMode = config.ColorNever
	require.NoError(t, cfg.Validate())
	return cfg
}

func testLogger(t *testing.T, cfg *config.Config) (*logging.Logger, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	log, err := logging.NewLoggerTo(cfg, &out, &out)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log, &out
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
		t.Fatal(err)
	}
}
