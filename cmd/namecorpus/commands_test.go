package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/namecorpus/internal/config"
)

func execute(t *testing.T, args ...string) (*app, string, error) {
	t.Helper()
	a := newApp()
	root := a.rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return a, out.String(), err
}

func TestList_Single(t *testing.T) {
	_, out, err := execute(t, "list", "typical", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "typical (100 names)")
	assert.Contains(t, out, "  documents\n    meeting_notes.txt\n")
	assert.NotContains(t, out, "edge (")
}

func TestList_Both(t *testing.T) {
	_, out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "edge (100 names)")
	assert.Contains(t, out, "typical (100 names)")
	assert.Contains(t, out, "!important_file.txt")
}

func TestList_BadGenerator(t *testing.T) {
	_, _, err := execute(t, "list", "bogus")
	assert.Error(t, err)
}

func TestTypical_BuildsIntoDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "corpus")
	a, _, err := execute(t, "typical", dir, "--no-color", "--quiet")
	require.NoError(t, err)
	assert.Zero(t, a.exitCode)
	assert.Equal(t, config.GeneratorTypical, a.cfg.Generator)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 100)
}

func TestBuild_ManifestInsideCorpusFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "corpus")
	a, _, err := execute(t, "typical", dir, "--no-color", "-q", "--manifest", filepath.Join(dir, "m.toml"))
	require.NoError(t, err)
	assert.Equal(t, 1, a.exitCode)
	assert.NoDirExists(t, dir)
}

func TestBuild_RejectsExtraArgs(t *testing.T) {
	_, _, err := execute(t, "edge", "a", "b")
	assert.Error(t, err)
}

func TestBuild_VerboseQuietConflict(t *testing.T) {
	_, _, err := execute(t, "typical", t.TempDir(), "-v", "-q")
	assert.Error(t, err)
}

func TestConfigFile_FlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "namecorpus.toml")
	body := "color = \"always\"\nmanifest_format = \"msgpack\"\nfail_on_fallback = true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	dir := filepath.Join(t.TempDir(), "corpus")
	a, _, err := execute(t, "typical", dir, "--config", path, "--no-color", "-q")
	require.NoError(t, err)
	assert.Equal(t, config.ColorNever, a.cfg.ColorMode)
	assert.Equal(t, config.ManifestMsgpack, a.cfg.ManifestFormat)
	assert.True(t, a.cfg.FailOnFallback)
}

func TestConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "namecorpus.toml")
	require.NoError(t, os.WriteFile(path, []byte("unknown_key = 1\n"), 0o644))
	_, _, err := execute(t, "list", "--config", path)
	assert.Error(t, err)
}

func TestCheck_FileTarget(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	a, _, err := execute(t, "check", file, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, 1, a.exitCode)
}

func TestVersion(t *testing.T) {
	_, out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
