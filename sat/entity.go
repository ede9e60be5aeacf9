package sat

import "fmt"

// Entity is one resolved node of the ACIS object graph.
type Entity struct {
	Name string
	// ID is the explicit entity id column of version >= 700 files, -1
	// otherwise.
	ID int
	// Data holds the record payload in source order, a mix of literal
	// tokens and references to other entities.
	Data []Datum
	// Attributes links to the entity's attribute chain, or NullPtr.
	Attributes *Entity

	// attrPtr carries the raw attribute pointer token between record
	// build and pointer resolution.
	attrPtr string
}

// NullPtr is the shared null reference. There is exactly one per process;
// compare with ==. A structurally empty entity is not the null pointer.
var NullPtr = &Entity{Name: "null-ptr", ID: -1, attrPtr: "$-1"}

// NewEntity creates a standalone entity for building graphs
// programmatically. A nil attributes argument means NullPtr.
func NewEntity(name string, attributes *Entity, id int, data []Datum) *Entity {
	if attributes == nil {
		attributes = NullPtr
	}
	return &Entity{
		Name:       name,
		ID:         id,
		Data:       data,
		Attributes: attributes,
		attrPtr:    "$-1",
	}
}

// IsNull reports whether e is the shared null pointer.
func (e *Entity) IsNull() bool { return e == NullPtr }

// String returns "name(id)".
func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%d)", e.Name, e.ID)
}

// Datum is one element of an entity's data list: either a literal token or
// a reference to another entity in the same graph.
type Datum struct {
	ref *Entity
	lit string
}

// Lit creates a literal data token.
func Lit(s string) Datum { return Datum{lit: s} }

// Ref creates an entity reference.
func Ref(e *Entity) Datum { return Datum{ref: e} }

// IsRef reports whether the datum is an entity reference.
func (d Datum) IsRef() bool { return d.ref != nil }

// Entity returns the referenced entity, or nil for a literal.
func (d Datum) Entity() *Entity { return d.ref }

// Literal returns the literal token, or "" for a reference.
func (d Datum) Literal() string { return d.lit }

// IsPtr reports whether s is lexically a pointer token: "$" followed by a
// record number, or "$-1" for null.
func IsPtr(s string) bool {
	return len(s) > 0 && s[0] == '$'
}
