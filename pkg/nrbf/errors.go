package nrbf

import "errors"

var (
	// ErrBadHeader indicates the stream does not start with a serialization header.
	ErrBadHeader = errors.New("nrbf: missing serialization header")
	// ErrUnsupportedRecord indicates a record type outside the flat-class subset.
	ErrUnsupportedRecord = errors.New("nrbf: unsupported record type")
	// ErrUnsupportedPrimitive indicates a primitive type this package cannot represent.
	ErrUnsupportedPrimitive = errors.New("nrbf: unsupported primitive type")
	// ErrDanglingReference indicates a member references an object never defined.
	ErrDanglingReference = errors.New("nrbf: dangling object reference")
	// ErrNoRootClass indicates the stream ended without a root class record.
	ErrNoRootClass = errors.New("nrbf: no root class")
	// ErrLength indicates a negative or implausibly large length prefix.
	ErrLength = errors.New("nrbf: invalid length")
)
