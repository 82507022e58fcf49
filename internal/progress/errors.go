package progress

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required member is absent.
	ErrMissingField = errors.New("missing field")
	// ErrFieldType is returned when a member has the wrong primitive type.
	ErrFieldType = errors.New("wrong field type")
	// ErrFieldLength is returned when a fixed-size array has the wrong length.
	ErrFieldLength = errors.New("wrong array length")
	// ErrUnknownValue is returned for enum discriminants the catalog does not know.
	ErrUnknownValue = errors.New("unknown value")
	// ErrClassName is returned when a file holds a different class than expected.
	ErrClassName = errors.New("unexpected class")
	// ErrNotDirectory is returned by Load and Save when the slot path is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrNotNumber is returned for text that does not hold a representable number.
	ErrNotNumber = errors.New("not a representable number")
	// ErrReservedLevel is returned for a current level whose id the game
	// reads back as "no level".
	ErrReservedLevel = errors.New("level id is reserved for no level")
)

// FieldError reports which member of a record could not be parsed.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// UnrepresentableError reports an in-memory value that cannot be written as
// its backing primitive.
type UnrepresentableError struct {
	Field string
	Value string
	Err   error
}

func (e *UnrepresentableError) Error() string {
	return fmt.Sprintf("field %s: cannot store %q: %v", e.Field, e.Value, e.Err)
}

func (e *UnrepresentableError) Unwrap() error { return e.Err }
