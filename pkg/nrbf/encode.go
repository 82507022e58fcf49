package nrbf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	rootObjectID int32 = 1
	libraryID    int32 = 2
)

type writer struct {
	w   *bufio.Writer
	err error
}

func (e *writer) write(v any) {
	if e.err != nil {
		return
	}
	e.err = binary.Write(e.w, binary.LittleEndian, v)
}

func (e *writer) byte(b byte) {
	if e.err != nil {
		return
	}
	e.err = e.w.WriteByte(b)
}

func (e *writer) int32(v int32) { e.write(v) }

func (e *writer) string(s string) {
	n := uint32(len(s))
	for n >= 0x80 {
		e.byte(byte(n) | 0x80)
		n >>= 7
	}
	e.byte(byte(n))
	if e.err == nil {
		_, e.err = e.w.WriteString(s)
	}
}

func (e *writer) primitive(v Value) {
	switch v := v.(type) {
	case Boolean:
		if v {
			e.byte(1)
		} else {
			e.byte(0)
		}
	case Byte:
		e.byte(byte(v))
	case Int16:
		e.write(int16(v))
	case Int32:
		e.write(int32(v))
	case Int64:
		e.write(int64(v))
	case Single:
		e.write(math.Float32bits(float32(v)))
	case Double:
		e.write(math.Float64bits(float64(v)))
	default:
		e.fail(fmt.Errorf("%w: %T as primitive", ErrUnsupportedPrimitive, v))
	}
}

func (e *writer) array(id int32, v Value) {
	e.byte(recordArraySinglePrimitive)
	e.int32(id)
	switch v := v.(type) {
	case BooleanArray:
		e.int32(int32(len(v)))
		e.byte(byte(PrimitiveBoolean))
		for _, b := range v {
			e.primitive(Boolean(b))
		}
	case ByteArray:
		e.int32(int32(len(v)))
		e.byte(byte(PrimitiveByte))
		e.write([]byte(v))
	case Int16Array:
		e.int32(int32(len(v)))
		e.byte(byte(PrimitiveInt16))
		e.write([]int16(v))
	case Int32Array:
		e.int32(int32(len(v)))
		e.byte(byte(PrimitiveInt32))
		e.write([]int32(v))
	case Int64Array:
		e.int32(int32(len(v)))
		e.byte(byte(PrimitiveInt64))
		e.write([]int64(v))
	case SingleArray:
		e.int32(int32(len(v)))
		e.byte(byte(PrimitiveSingle))
		e.write([]float32(v))
	case DoubleArray:
		e.int32(int32(len(v)))
		e.byte(byte(PrimitiveDouble))
		e.write([]float64(v))
	default:
		e.fail(fmt.Errorf("%w: %T as array", ErrUnsupportedPrimitive, v))
	}
}

func (e *writer) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Encode writes c as a complete MS-NRBF stream. Primitive and string members are
// written inline; arrays are written as member references followed by one
// ArraySinglePrimitive record each, the layout BinaryFormatter itself produces.
func Encode(w io.Writer, c *Class) error {
	e := &writer{w: bufio.NewWriter(w)}

	e.byte(recordHeader)
	e.int32(rootObjectID)
	e.int32(-1)
	e.int32(1)
	e.int32(0)

	e.byte(recordBinaryLibrary)
	e.int32(libraryID)
	e.string(c.LibraryName)

	names := c.Fields.Names()
	e.byte(recordClassWithMembersAndTypes)
	e.int32(rootObjectID)
	e.string(c.Name)
	e.int32(int32(len(names)))
	for _, name := range names {
		e.string(name)
	}
	for _, name := range names {
		v, _ := c.Fields.Get(name)
		switch {
		case v.IsArray():
			e.byte(binaryPrimitiveArray)
		case v.Type() == PrimitiveString:
			e.byte(binaryString)
		default:
			e.byte(binaryPrimitive)
		}
	}
	for _, name := range names {
		v, _ := c.Fields.Get(name)
		if v.Type() != PrimitiveString {
			e.byte(byte(v.Type()))
		}
	}
	e.int32(libraryID)

	type reference struct {
		id    int32
		value Value
	}
	id := libraryID
	var arrays []reference
	for _, name := range names {
		v, _ := c.Fields.Get(name)
		switch {
		case v.IsArray():
			id++
			e.byte(recordMemberReference)
			e.int32(id)
			arrays = append(arrays, reference{id: id, value: v})
		case v.Type() == PrimitiveString:
			id++
			e.byte(recordObjectString)
			e.int32(id)
			e.string(string(v.(String)))
		default:
			e.primitive(v)
		}
	}
	for _, ref := range arrays {
		e.array(ref.id, ref.value)
	}
	e.byte(recordMessageEnd)

	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}
