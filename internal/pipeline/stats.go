package pipeline

import (
	"github.com/backmassage/namecorpus/internal/config"
	"github.com/backmassage/namecorpus/internal/corpus"
)

// RunStats tracks aggregate counters across a corpus run.
type RunStats struct {
	Total        int
	Current      int
	Created      int
	Fallback     int
	Failed       int
	BytesWritten int64
	OnDisk       int // Regular files in the target directory after the run.
	Records      []corpus.CreationRecord
}

func (s *RunStats) add(r corpus.CreationRecord) {
	s.Current++
	switch r.Outcome {
	case corpus.OutcomeCreated:
		s.Created++
	case corpus.OutcomeFallback:
		s.Fallback++
	case corpus.OutcomeFailed:
		s.Failed++
	}
	s.BytesWritten += int64(r.Bytes)
}

// ExitCode maps a finished run onto a process status. By default every run
// that got as far as building exits 0, however many candidates fell back;
// FailOnFallback makes fallbacks and failures visible to calling scripts.
func ExitCode(cfg *config.Config, s RunStats) int {
	if cfg.FailOnFallback && s.Fallback+s.Failed > 0 {
		return 1
	}
	return 0
}
