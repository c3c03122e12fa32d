package catalog

import "golang.org/x/text/unicode/norm"

// MaxCandidates caps every candidate sequence. Longer taxonomies are
// truncated in table order; shorter ones are never padded.
const MaxCandidates = 100

// Kind names a taxonomy.
type Kind string

const (
	KindEdge    Kind = "edge"
	KindTypical Kind = "typical"
)

// Category tags a candidate with the taxonomy group it was drawn from.
type Category string

// Candidate is a proposed filename, not yet known to be creatable.
type Candidate struct {
	Category Category
	Name     string
}

// IsNFC reports whether Name is already in Unicode normalization form C.
// Renaming tools on macOS commonly receive names in NFD instead.
func (c Candidate) IsNFC() bool {
	return norm.NFC.IsNormalString(c.Name)
}

// group is one row of a taxonomy table.
type group struct {
	category Category
	names    []string
}

// Edge returns the adversarial taxonomy as an ordered, capped sequence.
func Edge() []Candidate {
	return flatten(edgeTable)
}

// Typical returns the benign taxonomy as an ordered, capped sequence.
func Typical() []Candidate {
	return flatten(typicalTable)
}

// ForKind returns the candidate sequence for k, or nil for an unknown kind.
func ForKind(k Kind) []Candidate {
	switch k {
	case KindEdge:
		return Edge()
	case KindTypical:
		return Typical()
	}
	return nil
}

// Categories returns the categories of k in declaration order.
func Categories(k Kind) []Category {
	var table []group
	switch k {
	case KindEdge:
		table = edgeTable
	case KindTypical:
		table = typicalTable
	default:
		return nil
	}
	out := make([]Category, 0, len(table))
	for _, g := range table {
		out = append(out, g.category)
	}
	return out
}

// Cap returns the first MaxCandidates elements of cs.
func Cap(cs []Candidate) []Candidate {
	if len(cs) > MaxCandidates {
		return cs[:MaxCandidates]
	}
	return cs
}

func flatten(table []group) []Candidate {
	var out []Candidate
	for _, g := range table {
		for _, name := range g.names {
			out = append(out, Candidate{Category: g.category, Name: name})
		}
	}
	return Cap(out)
}
