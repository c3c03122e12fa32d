package corpus

import "github.com/backmassage/namecorpus/internal/catalog"

// Outcome is the terminal state of one candidate.
type Outcome string

const (
	// OutcomeCreated: the file exists under the candidate's own name.
	OutcomeCreated Outcome = "created"
	// OutcomeFallback: the name was rejected and a failed_creation_<n>.txt
	// file was written in its place.
	OutcomeFallback Outcome = "fallback"
	// OutcomeFailed: nothing was written. Only happens when fallback is
	// disabled or the fallback file itself could not be written.
	OutcomeFailed Outcome = "failed"
)

// CreationRecord is the result of attempting to materialize one candidate.
type CreationRecord struct {
	Index      int // Position in the input sequence.
	Candidate  catalog.Candidate
	FinalName  string // Name actually on disk; empty for OutcomeFailed.
	Outcome    Outcome
	Err        error // Classified failure; nil for OutcomeCreated.
	FallbackID int   // n in failed_creation_<n>.txt; -1 unless OutcomeFallback.
	Bytes      int   // Size of the file written.
}

// OK reports whether the candidate was created under its own name.
func (r CreationRecord) OK() bool { return r.Outcome == OutcomeCreated }

// Summary counts records by outcome.
type Summary struct {
	Total    int
	Created  int
	Fallback int
	Failed   int
	Bytes    int64
}

// Summarize tallies records.
func Summarize(records []CreationRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Outcome {
		case OutcomeCreated:
			s.Created++
		case OutcomeFallback:
			s.Fallback++
		case OutcomeFailed:
			s.Failed++
		}
		s.Bytes += int64(r.Bytes)
	}
	return s
}
