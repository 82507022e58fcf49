// Package nrbf reads and writes the subset of the .NET Remoting Binary Format
// (MS-NRBF) that Unity's BinaryFormatter produces for flat save classes: one root
// class whose members are primitives, strings or single-dimension primitive arrays.
package nrbf

import "fmt"

// PrimitiveType is the MS-NRBF PrimitiveTypeEnum.
type PrimitiveType byte

const (
	PrimitiveBoolean PrimitiveType = 1
	PrimitiveByte    PrimitiveType = 2
	PrimitiveDouble  PrimitiveType = 6
	PrimitiveInt16   PrimitiveType = 7
	PrimitiveInt32   PrimitiveType = 8
	PrimitiveInt64   PrimitiveType = 9
	PrimitiveSingle  PrimitiveType = 11
	PrimitiveString  PrimitiveType = 18
)

func (p PrimitiveType) String() string {
	switch p {
	case PrimitiveBoolean:
		return "Boolean"
	case PrimitiveByte:
		return "Byte"
	case PrimitiveDouble:
		return "Double"
	case PrimitiveInt16:
		return "Int16"
	case PrimitiveInt32:
		return "Int32"
	case PrimitiveInt64:
		return "Int64"
	case PrimitiveSingle:
		return "Single"
	case PrimitiveString:
		return "String"
	}
	return fmt.Sprintf("PrimitiveType(%d)", byte(p))
}

// Value is a decoded member value. The set of implementations is closed.
type Value interface {
	// Type reports the element type; arrays report the type of their elements.
	Type() PrimitiveType
	// IsArray reports whether the value is a single-dimension array.
	IsArray() bool
	value()
}

type (
	Boolean bool
	Byte    uint8
	Int16   int16
	Int32   int32
	Int64   int64
	Single  float32
	Double  float64
	String  string

	BooleanArray []bool
	ByteArray    []uint8
	Int16Array   []int16
	Int32Array   []int32
	Int64Array   []int64
	SingleArray  []float32
	DoubleArray  []float64
)

func (Boolean) Type() PrimitiveType { return PrimitiveBoolean }
func (Byte) Type() PrimitiveType    { return PrimitiveByte }
func (Int16) Type() PrimitiveType   { return PrimitiveInt16 }
func (Int32) Type() PrimitiveType   { return PrimitiveInt32 }
func (Int64) Type() PrimitiveType   { return PrimitiveInt64 }
func (Single) Type() PrimitiveType  { return PrimitiveSingle }
func (Double) Type() PrimitiveType  { return PrimitiveDouble }
func (String) Type() PrimitiveType  { return PrimitiveString }

func (BooleanArray) Type() PrimitiveType { return PrimitiveBoolean }
func (ByteArray) Type() PrimitiveType    { return PrimitiveByte }
func (Int16Array) Type() PrimitiveType   { return PrimitiveInt16 }
func (Int32Array) Type() PrimitiveType   { return PrimitiveInt32 }
func (Int64Array) Type() PrimitiveType   { return PrimitiveInt64 }
func (SingleArray) Type() PrimitiveType  { return PrimitiveSingle }
func (DoubleArray) Type() PrimitiveType  { return PrimitiveDouble }

func (Boolean) IsArray() bool { return false }
func (Byte) IsArray() bool    { return false }
func (Int16) IsArray() bool   { return false }
func (Int32) IsArray() bool   { return false }
func (Int64) IsArray() bool   { return false }
func (Single) IsArray() bool  { return false }
func (Double) IsArray() bool  { return false }
func (String) IsArray() bool  { return false }

func (BooleanArray) IsArray() bool { return true }
func (ByteArray) IsArray() bool    { return true }
func (Int16Array) IsArray() bool   { return true }
func (Int32Array) IsArray() bool   { return true }
func (Int64Array) IsArray() bool   { return true }
func (SingleArray) IsArray() bool  { return true }
func (DoubleArray) IsArray() bool  { return true }

func (Boolean) value() {}
func (Byte) value()    {}
func (Int16) value()   {}
func (Int32) value()   {}
func (Int64) value()   {}
func (Single) value()  {}
func (Double) value()  {}
func (String) value()  {}

func (BooleanArray) value() {}
func (ByteArray) value()    {}
func (Int16Array) value()   {}
func (Int32Array) value()   {}
func (Int64Array) value()   {}
func (SingleArray) value()  {}
func (DoubleArray) value()  {}

// FieldMap is a member-name to value map that remembers insertion order.
// Order matters: it is the member order written to the stream.
type FieldMap struct {
	names  []string
	values map[string]Value
}

// NewFieldMap returns an empty map.
func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]Value)}
}

// Set stores v under name. Replacing an existing name keeps its position.
func (m *FieldMap) Set(name string, v Value) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = v
}

// Get returns the value stored under name.
func (m *FieldMap) Get(name string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[name]
	return v, ok
}

// Names returns member names in insertion order.
func (m *FieldMap) Names() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.names...)
}

// Len returns the number of members.
func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// All iterates members in insertion order.
func (m *FieldMap) All() func(yield func(string, Value) bool) {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for _, name := range m.names {
			if !yield(name, m.values[name]) {
				return
			}
		}
	}
}

// Class is the root object of a stream: a named class from a named library.
type Class struct {
	LibraryName string
	Name        string
	Fields      *FieldMap
}
