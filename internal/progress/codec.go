// Package progress maps the game's save-slot files onto typed records and back.
//
// Each record knows how to read itself from a decoded class and how to write
// itself as an ordered field map. The orchestration in this package decides
// which file a record lives in and whether that file should exist at all.
package progress

import (
	"fmt"

	"ultrakill-save-editor/pkg/nrbf"
)

// LibraryName is the assembly every save class is declared in.
const LibraryName = "Assembly-CSharp, Version=0.0.0.0, Culture=neutral, PublicKeyToken=null"

// Single is a record stored in exactly one file per slot.
type Single interface {
	HasFile() bool
	Unparse() (*nrbf.FieldMap, error)
}

// Keyed is a record stored once per catalog variant. The key is passed to
// Unparse because some records write it back into the file.
type Keyed[K variant] interface {
	HasFile() bool
	Unparse(key K) (*nrbf.FieldMap, error)
}

type variant interface {
	~uint8 | ~uint16
	FileInfix() string
	String() string
}

// document describes a Single record's class and file.
type document[T Single] struct {
	className string
	fileName  string
	parse     func(*nrbf.Class) (T, error)
	create    func() T
}

// family describes a Keyed record family. Member files are named
// prefix + key.FileInfix() + suffix.
type family[K variant, T Keyed[K]] struct {
	className string
	prefix    string
	suffix    string
	variants  func() []K
	parse     func(*nrbf.Class, K) (T, error)
	create    func(K) T
}

func (f family[K, T]) fileName(key K) string {
	return f.prefix + key.FileInfix() + f.suffix
}

func readField[T nrbf.Value](c *nrbf.Class, name string) (T, error) {
	var zero T
	v, ok := c.Fields.Get(name)
	if !ok {
		return zero, &FieldError{Field: name, Err: ErrMissingField}
	}
	t, ok := v.(T)
	if !ok {
		return zero, &FieldError{
			Field: name,
			Err:   fmt.Errorf("%w: have %s, want %s", ErrFieldType, describe(v), describe(zero)),
		}
	}
	return t, nil
}

// readArray reads an array member that must hold exactly n elements.
func readArray[T interface {
	nrbf.Value
	~[]E
}, E any](c *nrbf.Class, name string, n int) (T, error) {
	v, err := readField[T](c, name)
	if err != nil {
		return v, err
	}
	if len(v) != n {
		var zero T
		return zero, &FieldError{
			Field: name,
			Err:   fmt.Errorf("%w: have %d, want %d", ErrFieldLength, len(v), n),
		}
	}
	return v, nil
}

func writeField[T nrbf.Value](m *nrbf.FieldMap, name string, v T) {
	m.Set(name, v)
}

func describe(v nrbf.Value) string {
	if v == nil {
		return "nothing"
	}
	if v.IsArray() {
		return v.Type().String() + "[]"
	}
	return v.Type().String()
}

func unknownValue(field string, v int32) error {
	return &FieldError{Field: field, Err: fmt.Errorf("%w: %d", ErrUnknownValue, v)}
}
