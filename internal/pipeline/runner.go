package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/backmassage/namecorpus/internal/catalog"
	"github.com/backmassage/namecorpus/internal/check"
	"github.com/backmassage/namecorpus/internal/config"
	"github.com/backmassage/namecorpus/internal/corpus"
	"github.com/backmassage/namecorpus/internal/display"
	"github.com/backmassage/namecorpus/internal/logging"
	"github.com/backmassage/namecorpus/internal/manifest"
)

// Run builds the corpus selected by cfg.Generator into cfg.OutputDir.
// The returned error is reserved for problems that stop the run as a whole
// (unusable target, bad manifest path, manifest write failure); rejected
// names only show up in the stats.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	manifestAbs, err := resolveManifest(cfg)
	if err != nil {
		return stats, err
	}
	if err := check.CheckTarget(cfg.OutputDir); err != nil {
		return stats, fmt.Errorf("%s: %w", cfg.OutputDir, err)
	}

	candidates := catalog.ForKind(catalog.Kind(cfg.Generator))
	stats.Total = len(candidates)
	logBatchHeader(cfg, log, &stats)

	records, err := newBuilder(cfg, log, &stats).Build(candidates, cfg.OutputDir)
	if err != nil {
		return stats, err
	}
	stats.Records = records

	files, err := Inventory(cfg.OutputDir)
	if err != nil {
		log.Warn("Cannot list %s: %v", cfg.OutputDir, err)
	}
	stats.OnDisk = len(files)

	logSummary(cfg, log, &stats)

	if manifestAbs != "" {
		m := manifest.New(cfg.Generator, cfg.OutputDir, records)
		if err := manifest.Write(manifestAbs, cfg.ManifestFormat, m); err != nil {
			return stats, err
		}
		log.Info("Manifest (%s): %s", cfg.ManifestFormat, cfg.ManifestPath)
	}
	return stats, nil
}

// newBuilder configures the corpus builder for the generator and hooks
// per-record progress output into it.
func newBuilder(cfg *config.Config, log *logging.Logger, stats *RunStats) *corpus.Builder {
	opts := []corpus.Option{
		corpus.WithObserver(func(r corpus.CreationRecord) {
			stats.add(r)
			if !cfg.Quiet {
				logRecord(cfg, log, stats, r)
			}
		}),
	}
	if cfg.Generator == config.GeneratorTypical {
		opts = append(opts, corpus.WithContent(corpus.TypicalContent), corpus.WithoutFallback())
	}
	return corpus.New(opts...)
}

// resolveManifest returns the absolute manifest path, or "" when no manifest
// was requested, after making sure it lies outside the corpus directory.
func resolveManifest(cfg *config.Config) (string, error) {
	if cfg.ManifestPath == "" {
		return "", nil
	}
	manifestAbs, err := filepath.Abs(cfg.ManifestPath)
	if err != nil {
		return "", fmt.Errorf("resolve manifest path: %w", err)
	}
	corpusAbs, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return "", fmt.Errorf("resolve corpus directory: %w", err)
	}
	if err := cfg.ValidatePaths(corpusAbs, manifestAbs); err != nil {
		return "", err
	}
	return manifestAbs, nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Generator: %s", cfg.Generator)
	log.Info("Out: %s", cfg.OutputDir)
	log.Info("Candidates: %d", stats.Total)
	if cfg.Generator == config.GeneratorEdge {
		log.Info("Rejected names: fall back to failed_creation_<n>.txt")
	} else {
		log.Info("Rejected names: reported, no substitute file")
	}
	if cfg.FailOnFallback {
		log.Info("Exit status: non-zero on any fallback")
	}
	log.Info("")
}

func logRecord(cfg *config.Config, log *logging.Logger, stats *RunStats, r corpus.CreationRecord) {
	prefix := fmt.Sprintf("[%d/%d]", stats.Current, stats.Total)
	switch r.Outcome {
	case corpus.OutcomeCreated:
		log.Info("%s Created: %s", prefix, display.ShortName(r.FinalName))
	case corpus.OutcomeFallback:
		log.Fallback("%s Created (safe): %s (original failed: %s)",
			prefix, r.FinalName, display.ShortName(r.Candidate.Name))
		log.Debug(cfg.Verbose, "  %v", r.Err)
	case corpus.OutcomeFailed:
		log.Error("%s Failed to create %s: %v", prefix, display.ShortName(r.Candidate.Name), r.Err)
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	written := stats.Created + stats.Fallback
	log.Info("==============================")
	log.Success("Created %d files in '%s' directory (%s)",
		written, cfg.OutputDir, display.FormatBytes(stats.BytesWritten))
	log.Info("  Under intended name: %d", stats.Created)
	if stats.Fallback > 0 {
		log.Warn("  Under fallback name: %d", stats.Fallback)
	}
	if stats.Failed > 0 {
		log.Error("  Not created: %d", stats.Failed)
	}
	if stats.OnDisk > written {
		log.Warn("  Directory holds %d files (%d from earlier runs or other tools)",
			stats.OnDisk, stats.OnDisk-written)
	}

	log.Info("Categories:")
	for _, c := range catalog.Categories(catalog.Kind(cfg.Generator)) {
		log.Info("  - %s", c)
	}
}
