// Package sat implements a codec for the ACIS SAT format, the ASCII
// exchange representation of ACIS geometry-kernel data carried as a text
// blob inside CAD entities.
//
// # File Layout
//
// A SAT blob is a 3-line header followed by one record per entity and a
// terminator line:
//
//	400 0 0 0
//	11 some product 12 ACIS 4.00 NT 24 Sat Jan  1 00:00:00 2022
//	1 9.9999999999999995e-007 1e-010
//	body $-1 $1 #
//	wire $0 #
//	End-of-ACIS-data
//
// Records may span multiple physical lines; the logical record ends at the
// "#" terminator. Header strings are length-prefixed; for version > 400 the
// length carries a leading "@".
//
// # Pointers
//
// A pointer token is "$" followed by the record number of the referenced
// entity, or "$-1" for the null pointer. Forward references are legal and
// common, so parsing is two-pass: all entities are built keyed by record
// number first, then every pointer token is resolved to a live *Entity.
// The shared NullPtr sentinel stands for "no reference" and is compared by
// identity, never by structure.
//
// # Serialization
//
// Graph.Dump regenerates pointer tokens from the current entity order: an
// entity's index is its position in the graph's sequence, not a stored
// field. A reference to an entity outside the sequence fails the whole dump
// with ErrLinkStructure.
//
// # Error Tolerance
//
// Real-world SAT producers write stale or garbage header counts, units and
// dates; those fields default silently on decode. Pointer and version
// handling stays strict.
//
// The binary SAB variant and the trailing history section are out of scope;
// history data is skipped on parse.
package sat
