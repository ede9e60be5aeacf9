package sat

import "github.com/cockroachdb/errors"

var (
	// ErrLinkStructure reports a reference to an entity that is not
	// present, by identity, in the sequence being serialized.
	ErrLinkStructure = errors.New("invalid ACIS link structure")

	// ErrUnresolvedRef reports a pointer token naming a record number
	// absent from the parsed records.
	ErrUnresolvedRef = errors.New("unresolved entity reference")

	// ErrMalformedPointer reports a value that is required to be a pointer
	// token but is not lexically one.
	ErrMalformedPointer = errors.New("malformed pointer token")

	// ErrInvalidVersion reports an unsupported ACIS version number.
	ErrInvalidVersion = errors.New("invalid ACIS version number")
)
