package corpus

import (
	"errors"
	"fmt"

	"github.com/backmassage/namecorpus/internal/catalog"
)

// Builder creates one file per candidate. The zero value is not usable; call
// [New].
type Builder struct {
	content  ContentFunc
	fallback bool
	observe  func(CreationRecord)
}

// Option configures a Builder.
type Option func(*Builder)

// WithContent sets the body written for each candidate (default
// [EdgeContent]).
func WithContent(fn ContentFunc) Option {
	return func(b *Builder) { b.content = fn }
}

// WithoutFallback disables fallback files: rejected candidates are recorded
// as [OutcomeFailed] and nothing is written for them.
func WithoutFallback() Option {
	return func(b *Builder) { b.fallback = false }
}

// WithObserver calls fn with every record as soon as it is final, in input
// order. Used for progress output.
func WithObserver(fn func(CreationRecord)) Option {
	return func(b *Builder) { b.observe = fn }
}

// New returns an edge-case Builder with fallback enabled, modified by opts.
func New(opts ...Option) *Builder {
	b := &Builder{content: EdgeContent, fallback: true}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build creates targetDir if needed and materializes candidates in it with a
// default Builder. See [Builder.Build].
func Build(candidates []catalog.Candidate, targetDir string, opts ...Option) ([]CreationRecord, error) {
	return New(opts...).Build(candidates, targetDir)
}

// Build creates targetDir if needed and materializes candidates in it. The
// only error is failure to create or open targetDir; per-candidate failures
// end up in the returned records, one per candidate.
func (b *Builder) Build(candidates []catalog.Candidate, targetDir string) ([]CreationRecord, error) {
	dir, err := OpenDir(targetDir)
	if err != nil {
		return nil, err
	}
	defer dir.Close()
	return b.BuildIn(candidates, dir), nil
}

// BuildIn materializes candidates in dir, in order. It always returns
// exactly len(candidates) records.
func (b *Builder) BuildIn(candidates []catalog.Candidate, dir Dir) []CreationRecord {
	alloc := newFallbackAllocator()
	records := make([]CreationRecord, 0, len(candidates))
	for i, c := range candidates {
		rec := b.create(dir, alloc, c)
		rec.Index = i
		records = append(records, rec)
		if b.observe != nil {
			b.observe(rec)
		}
	}
	return records
}

// create runs the Pending -> Created / FallbackCreated protocol for one
// candidate. There are no retries. A name some earlier file of the run already
// took is not written again; it is rejected with ErrNameInUse so the earlier
// file survives.
func (b *Builder) create(dir Dir, alloc *fallbackAllocator, c catalog.Candidate) CreationRecord {
	body := b.content(c)
	var err error
	if alloc.taken(c.Name) {
		err = fmt.Errorf("%w: %w", ErrNameRejected, ErrNameInUse)
	} else {
		err = dir.WriteFile(c.Name, body)
	}
	if err == nil {
		alloc.claim(c.Name)
		return CreationRecord{
			Candidate:  c,
			FinalName:  c.Name,
			Outcome:    OutcomeCreated,
			FallbackID: -1,
			Bytes:      len(body),
		}
	}

	cause := Classify(c.Name, err)
	if !b.fallback {
		return CreationRecord{Candidate: c, Outcome: OutcomeFailed, Err: cause, FallbackID: -1}
	}

	id, name := alloc.next(c.Name)
	fb := FallbackContent(c.Name, cause)
	if ferr := dir.WriteFile(name, fb); ferr != nil {
		return CreationRecord{
			Candidate:  c,
			Outcome:    OutcomeFailed,
			Err:        errors.Join(cause, fmt.Errorf("write fallback %s: %w", name, ferr)),
			FallbackID: -1,
		}
	}
	return CreationRecord{
		Candidate:  c,
		FinalName:  name,
		Outcome:    OutcomeFallback,
		Err:        cause,
		FallbackID: id,
		Bytes:      len(fb),
	}
}
