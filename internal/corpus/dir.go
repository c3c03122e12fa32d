package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Dir is a directory that files are created in by bare name.
type Dir interface {
	// WriteFile creates or truncates the file called name and writes data.
	// On error a file created by this call is not left behind.
	WriteFile(name string, data []byte) error
}

// OSDir is a [Dir] backed by an [os.Root], so a candidate can never create a
// file outside the directory, whatever its name contains.
type OSDir struct {
	path  string
	root  *os.Root
	write func(*os.File, []byte) (int, error)
}

// OpenDir creates path (and parents) if needed and opens it as an OSDir.
// An existing directory is reused as-is; its files are not removed.
func OpenDir(path string) (*OSDir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create corpus directory: %w", err)
	}
	root, err := os.OpenRoot(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus directory: %w", err)
	}
	return &OSDir{path: path, root: root, write: (*os.File).Write}, nil
}

// Path returns the directory path OpenDir was called with.
func (d *OSDir) Path() string { return d.path }

// WriteFile implements [Dir]. An existing file is truncated and rewritten.
// If the write fails, a file this call created is removed again; a file that
// already existed is left in place, possibly truncated.
func (d *OSDir) WriteFile(name string, data []byte) error {
	created := true
	f, err := d.root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		created = false
		f, err = d.root.OpenFile(name, os.O_WRONLY|os.O_TRUNC, 0o644)
	}
	if err != nil {
		return err
	}
	_, werr := d.write(f, data)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		if created {
			_ = d.root.Remove(name)
		}
		return werr
	}
	return nil
}

// Close releases the directory handle.
func (d *OSDir) Close() error {
	return d.root.Close()
}
