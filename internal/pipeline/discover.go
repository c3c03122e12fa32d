package pipeline

import (
	"os"
	"sort"
)

// Inventory returns the names of the regular files directly inside dir,
// sorted lexicographically. Subdirectories and their contents are ignored.
func Inventory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
