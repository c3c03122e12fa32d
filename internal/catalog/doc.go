// Package catalog holds the fixed filename taxonomies a corpus is built from.
//
// Each taxonomy is a data table of categories, each with an ordered list of
// literal names. [Edge] and [Typical] flatten a table in declaration order
// and cap the result at [MaxCandidates]. The tables are fixture data: they
// are not configurable and the order is part of the output contract, since
// the same table must always produce the same corpus.
package catalog
