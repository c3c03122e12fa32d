// Package check provides filesystem diagnostics (the check subcommand) and
// the pre-build target validation (CheckTarget).
//
// The probes are empirical: they create throwaway files and look at what the
// filesystem did with them. Nothing here predicts which corpus names will
// fail; the builder discovers that on its own.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentinel errors returned by CheckTarget.
var (
	ErrNotDirectory = errors.New("target exists and is not a directory")
	ErrNotWritable  = errors.New("target directory is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

const probeDirName = ".namecorpus-probe"

// CheckTarget verifies that dir is usable as a corpus directory: it either
// does not exist yet or is a directory a file can be created in.
func CheckTarget(dir string) error {
	fi, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return ErrNotDirectory
	}
	f, err := os.CreateTemp(dir, ".namecorpus-write-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotWritable, err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}

// Report holds the results of the filesystem probes.
type Report struct {
	CaseSensitive bool
	PreservesNFD  bool
	Accepts255    bool
	Rejected      []string // Probe names the filesystem refused.
}

// controlProbes are names with characters many filesystems refuse.
var controlProbes = []string{
	"tab\tinside.txt",
	"newline\ninside.txt",
	"colon:inside.txt",
	"pipe|inside.txt",
	"question?inside.txt",
	"trailing_dot.",
	"trailing_space ",
}

// Probe runs the probes in a scratch directory under dir and removes it
// afterwards. dir is created if needed.
func Probe(dir string) (Report, error) {
	var r Report
	scratch := filepath.Join(dir, probeDirName)
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return r, fmt.Errorf("create probe directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	// Case sensitivity: write lower, look for upper.
	if err := touch(scratch, "case_probe.txt"); err != nil {
		return r, fmt.Errorf("write probe file: %w", err)
	}
	_, err := os.Stat(filepath.Join(scratch, "CASE_PROBE.TXT"))
	r.CaseSensitive = errors.Is(err, os.ErrNotExist)

	// Normalization: write NFD, see whether the listing still has NFD.
	nfd := norm.NFD.String("résumé_probe.txt")
	if touch(scratch, nfd) == nil {
		entries, _ := os.ReadDir(scratch)
		for _, e := range entries {
			if e.Name() == nfd {
				r.PreservesNFD = true
			}
		}
	}

	r.Accepts255 = touch(scratch, strings.Repeat("n", 251)+".txt") == nil

	for _, name := range controlProbes {
		if touch(scratch, name) != nil {
			r.Rejected = append(r.Rejected, name)
		}
	}
	return r, nil
}

// RunCheck runs the interactive check flow and logs the results. It returns
// false only if the target is unusable; probe findings are informational.
func RunCheck(dir string, verbose bool, log Logger) bool {
	log.Info("=== Filesystem Check: %s ===", dir)

	if err := CheckTarget(dir); err != nil {
		log.Error("%s: %v", dir, err)
		return false
	}
	log.Success("Target is usable")

	r, err := Probe(dir)
	if err != nil {
		log.Error("Probe failed: %v", err)
		return false
	}

	if r.CaseSensitive {
		log.Info("Case sensitive: yes")
	} else {
		log.Warn("Case sensitive: no (names differing only in case collide)")
	}
	if r.PreservesNFD {
		log.Info("Unicode normalization: preserved as written")
	} else {
		log.Warn("Unicode normalization: names are normalized by the filesystem")
	}
	if r.Accepts255 {
		log.Info("255-byte names: accepted")
	} else {
		log.Warn("255-byte names: rejected")
	}
	if len(r.Rejected) == 0 {
		log.Info("Control/punctuation probes: all accepted")
	} else {
		log.Warn("Control/punctuation probes rejected: %d of %d", len(r.Rejected), len(controlProbes))
		for _, name := range r.Rejected {
			log.Debug(verbose, "  rejected %q", name)
		}
	}
	return true
}

func touch(dir, name string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte("probe\n"), 0o644)
}
