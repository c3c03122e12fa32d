package corpus

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		err      error
		wantKind error
	}{
		{"invalid argument", "a\x00b", syscall.EINVAL, ErrNameRejected},
		{"too long", "x", syscall.ENAMETOOLONG, ErrNameRejected},
		{"permission", "x", fs.ErrPermission, ErrNameRejected},
		{"illegal byte sequence", "x", syscall.EILSEQ, ErrEncodingUnsupported},
		{"invalid utf-8 name", "bad\xff.txt", syscall.EINVAL, ErrEncodingUnsupported},
		{"wrapped EILSEQ", "x", &fs.PathError{Op: "openat", Path: "x", Err: syscall.EILSEQ}, ErrEncodingUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.in, tt.err)
			assert.ErrorIs(t, got, tt.wantKind)
			assert.ErrorIs(t, got, tt.err, "cause stays reachable")
		})
	}
}

func TestClassify_NilAndIdempotent(t *testing.T) {
	assert.NoError(t, Classify("x", nil))

	once := Classify("x", syscall.EINVAL)
	assert.Same(t, once, Classify("x", once))
}

func TestClassify_MessageNamesKind(t *testing.T) {
	err := Classify("x", errors.New("boom"))
	assert.Equal(t, "name rejected: boom", err.Error())
}
