package corpus

import (
	"fmt"
	"hash/crc32"

	"fortio.org/safecast"
)

// FallbackRange bounds fallback ids to [0, FallbackRange).
const FallbackRange = 10000

// FallbackID derives the numeric suffix of a fallback name from the UTF-8
// bytes of name: CRC-32 (IEEE polynomial) modulo FallbackRange. The result
// depends on name alone, so it is identical across runs and processes.
func FallbackID(name string) int {
	sum := crc32.ChecksumIEEE([]byte(name)) % FallbackRange
	id, err := safecast.Conv[int](sum)
	if err != nil {
		return 0
	}
	return id
}

// FallbackName returns failed_creation_<FallbackID(name)>.txt.
func FallbackName(name string) string {
	return fallbackFileName(FallbackID(name))
}

func fallbackFileName(id int) string {
	return fmt.Sprintf("failed_creation_%d.txt", id)
}

// fallbackAllocator hands out fallback names within one run. Two rejected
// names with the same id would otherwise share one file; the later one
// probes id+1, id+2, ... (mod FallbackRange) until it finds a name nobody in
// this run has claimed.
type fallbackAllocator struct {
	claimed map[string]bool // final names already on disk in this run
}

func newFallbackAllocator() *fallbackAllocator {
	return &fallbackAllocator{claimed: make(map[string]bool)}
}

// claim marks name as taken by a created file.
func (a *fallbackAllocator) claim(name string) {
	a.claimed[name] = true
}

// taken reports whether a file called name was already written in this run.
func (a *fallbackAllocator) taken(name string) bool {
	return a.claimed[name]
}

// next returns the id and file name for the candidate name.
func (a *fallbackAllocator) next(name string) (int, string) {
	base := FallbackID(name)
	for i := 0; i < FallbackRange; i++ {
		id := (base + i) % FallbackRange
		fn := fallbackFileName(id)
		if !a.claimed[fn] {
			a.claimed[fn] = true
			return id, fn
		}
	}
	// Every id is taken; reuse the natural one.
	return base, fallbackFileName(base)
}
