package sat

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Graph owns a resolved SAT entity sequence. The sequence order is
// authoritative: an entity's pointer index on dump is its position in the
// sequence, not a stored field, so reordering entities changes the emitted
// indices deterministically.
//
// The graph provides no locking. A caller mutating a graph must not read it
// concurrently; the shared NullPtr is immutable and safe to read from any
// number of graphs.
type Graph struct {
	Header Header

	entities []*Entity
	bodies   []*Entity
}

// NewGraph returns an empty graph with default header values.
func NewGraph() *Graph {
	return &Graph{Header: NewHeader()}
}

// Entities returns the entity sequence in serialization order.
func (g *Graph) Entities() []*Entity { return g.entities }

// Bodies returns the entities named "body", in sequence order.
func (g *Graph) Bodies() []*Entity { return g.bodies }

// SetEntities replaces the entity sequence and recomputes the body
// subsequence.
func (g *Graph) SetEntities(entities []*Entity) {
	g.entities = entities
	g.bodies = nil
	for _, e := range entities {
		if e.Name == "body" {
			g.bodies = append(g.bodies, e)
		}
	}
}

// Dump serializes the graph back to SAT text lines: the 3-line header, one
// line per entity and the end-of-data marker. Pointer tokens are
// regenerated from the current sequence order; a reference to an entity not
// in the sequence fails the whole dump with ErrLinkStructure, partial
// output is never produced.
func (g *Graph) Dump() ([]string, error) {
	records, err := buildRecordLines(g.entities, &g.Header)
	if err != nil {
		return nil, err
	}
	lines := g.Header.Dump()
	lines = append(lines, records...)
	lines = append(lines, endOfDataLine)
	return lines, nil
}

// buildRecordLines encodes one line per entity. References are looked up by
// identity in the sequence being serialized; graphs may be cyclic, so only
// index lookup is used, never a graph walk.
func buildRecordLines(entities []*Entity, h *Header) ([]string, error) {
	ptrToken := func(e *Entity) (string, error) {
		if e == NullPtr {
			return "$-1", nil
		}
		for i, candidate := range entities {
			if candidate == e {
				return "$" + strconv.Itoa(i), nil
			}
		}
		return "", errors.Wrapf(ErrLinkStructure, "entity %s not in record storage", e)
	}

	hasIDs := h.hasEntityIDs()
	lines := make([]string, 0, len(entities))
	for _, e := range entities {
		tokens := []string{e.Name}
		attr, err := ptrToken(e.Attributes)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, attr)
		if hasIDs {
			tokens = append(tokens, strconv.Itoa(e.ID))
		}
		for _, d := range e.Data {
			if d.IsRef() {
				tok, err := ptrToken(d.Entity())
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tok)
			} else {
				tokens = append(tokens, d.Literal())
			}
		}
		tokens = append(tokens, recordTerminator)
		lines = append(lines, strings.Join(tokens, " "))
	}
	return lines, nil
}
