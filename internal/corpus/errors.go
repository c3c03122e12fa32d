package corpus

import (
	"errors"
	"fmt"
	"syscall"
	"unicode/utf8"
)

// Failure kinds for a single candidate. Both are handled the same way; the
// distinction only shows up in records and manifests.
var (
	ErrNameRejected        = errors.New("name rejected")
	ErrEncodingUnsupported = errors.New("encoding unsupported")
)

// ErrNameInUse marks a candidate whose name an earlier file of the same run
// already took, either a created candidate or a fallback. It is always
// wrapped in ErrNameRejected.
var ErrNameInUse = errors.New("name already used in this run")

// Classify wraps a creation error for name in the matching failure kind.
// Invalid UTF-8 names and EILSEQ from the OS count as encoding failures;
// anything else (illegal characters, reserved names, length limits,
// permissions) counts as a rejected name. Already classified errors and nil
// are returned unchanged.
func Classify(name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNameRejected) || errors.Is(err, ErrEncodingUnsupported) {
		return err
	}
	if !utf8.ValidString(name) || errors.Is(err, syscall.EILSEQ) {
		return fmt.Errorf("%w: %w", ErrEncodingUnsupported, err)
	}
	return fmt.Errorf("%w: %w", ErrNameRejected, err)
}
