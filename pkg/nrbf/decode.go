package nrbf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// Record types from MS-NRBF 2.1.2.1.
const (
	recordHeader                   byte = 0
	recordClassWithMembersAndTypes byte = 5
	recordObjectString             byte = 6
	recordMemberPrimitiveTyped     byte = 8
	recordMemberReference          byte = 9
	recordObjectNull               byte = 10
	recordMessageEnd               byte = 11
	recordBinaryLibrary            byte = 12
	recordArraySinglePrimitive     byte = 15
)

// Binary types from MS-NRBF 2.1.2.2.
const (
	binaryPrimitive      byte = 0
	binaryString         byte = 1
	binaryObject         byte = 2
	binarySystemClass    byte = 3
	binaryClass          byte = 4
	binaryObjectArray    byte = 5
	binaryStringArray    byte = 6
	binaryPrimitiveArray byte = 7
)

const (
	maxArrayLength  = 1 << 20
	maxStringLength = 1 << 20
)

type reader struct {
	r *bufio.Reader
}

func (d *reader) byte() (byte, error) {
	b, err := d.r.ReadByte()
	if err == io.EOF {
		return 0, io.ErrUnexpectedEOF
	}
	return b, err
}

func (d *reader) read(v any) error {
	err := binary.Read(d.r, binary.LittleEndian, v)
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (d *reader) int32() (int32, error) {
	var v int32
	err := d.read(&v)
	return v, err
}

// string reads a LengthPrefixedString: a 7-bit encoded length followed by UTF-8.
func (d *reader) string() (string, error) {
	var n, shift uint32
	for i := 0; ; i++ {
		if i == 5 {
			return "", fmt.Errorf("%w: string length prefix too long", ErrLength)
		}
		b, err := d.byte()
		if err != nil {
			return "", err
		}
		n |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	if n > maxStringLength {
		return "", fmt.Errorf("%w: string of %d bytes", ErrLength, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("nrbf: string is not valid UTF-8")
	}
	return string(buf), nil
}

func (d *reader) length() (int, error) {
	n, err := d.int32()
	if err != nil {
		return 0, err
	}
	if n < 0 || n > maxArrayLength {
		return 0, fmt.Errorf("%w: %d", ErrLength, n)
	}
	return int(n), nil
}

func (d *reader) primitive(t PrimitiveType) (Value, error) {
	switch t {
	case PrimitiveBoolean:
		b, err := d.byte()
		return Boolean(b != 0), err
	case PrimitiveByte:
		b, err := d.byte()
		return Byte(b), err
	case PrimitiveInt16:
		var v int16
		err := d.read(&v)
		return Int16(v), err
	case PrimitiveInt32:
		v, err := d.int32()
		return Int32(v), err
	case PrimitiveInt64:
		var v int64
		err := d.read(&v)
		return Int64(v), err
	case PrimitiveSingle:
		var bits uint32
		err := d.read(&bits)
		return Single(math.Float32frombits(bits)), err
	case PrimitiveDouble:
		var bits uint64
		err := d.read(&bits)
		return Double(math.Float64frombits(bits)), err
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPrimitive, t)
}

func (d *reader) primitiveArray(t PrimitiveType, n int) (Value, error) {
	var (
		v   Value
		err error
	)
	switch t {
	case PrimitiveBoolean:
		raw := make([]byte, n)
		if _, err = io.ReadFull(d.r, raw); err == nil {
			out := make(BooleanArray, n)
			for i, b := range raw {
				out[i] = b != 0
			}
			v = out
		}
	case PrimitiveByte:
		out := make(ByteArray, n)
		_, err = io.ReadFull(d.r, out)
		v = out
	case PrimitiveInt16:
		out := make(Int16Array, n)
		err = d.read(out)
		v = out
	case PrimitiveInt32:
		out := make(Int32Array, n)
		err = d.read(out)
		v = out
	case PrimitiveInt64:
		out := make(Int64Array, n)
		err = d.read(out)
		v = out
	case PrimitiveSingle:
		out := make(SingleArray, n)
		err = d.read(out)
		v = out
	case PrimitiveDouble:
		out := make(DoubleArray, n)
		err = d.read(out)
		v = out
	default:
		return nil, fmt.Errorf("%w: array of %s", ErrUnsupportedPrimitive, t)
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

type memberType struct {
	binary    byte
	primitive PrimitiveType
}

type decoder struct {
	reader
	libraries map[int32]string
	objects   map[int32]Value
	refs      map[string]int32
	members   []string
	inline    map[string]Value
	root      *Class
	rootID    int32
}

// Decode reads one MS-NRBF stream whose root object is a flat class.
func Decode(r io.Reader) (*Class, error) {
	d := &decoder{
		reader:    reader{r: bufio.NewReader(r)},
		libraries: make(map[int32]string),
		objects:   make(map[int32]Value),
		refs:      make(map[string]int32),
		inline:    make(map[string]Value),
	}
	if err := d.header(); err != nil {
		return nil, err
	}
	for {
		rt, err := d.byte()
		if err != nil {
			return nil, err
		}
		switch rt {
		case recordMessageEnd:
			return d.finish()
		case recordBinaryLibrary:
			err = d.library()
		case recordClassWithMembersAndTypes:
			if d.root != nil {
				return nil, fmt.Errorf("%w: nested class", ErrUnsupportedRecord)
			}
			err = d.class()
		case recordArraySinglePrimitive:
			_, err = d.array()
		case recordObjectString:
			_, err = d.objectString()
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedRecord, rt)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (d *decoder) header() error {
	rt, err := d.byte()
	if err != nil {
		return err
	}
	if rt != recordHeader {
		return ErrBadHeader
	}
	var h struct {
		RootID, HeaderID, Major, Minor int32
	}
	if err := d.read(&h); err != nil {
		return err
	}
	if h.Major != 1 || h.Minor != 0 {
		return fmt.Errorf("%w: version %d.%d", ErrBadHeader, h.Major, h.Minor)
	}
	d.rootID = h.RootID
	return nil
}

func (d *decoder) library() error {
	id, err := d.int32()
	if err != nil {
		return err
	}
	name, err := d.string()
	if err != nil {
		return err
	}
	d.libraries[id] = name
	return nil
}

func (d *decoder) class() error {
	if _, err := d.int32(); err != nil {
		return err
	}
	name, err := d.string()
	if err != nil {
		return err
	}
	count, err := d.length()
	if err != nil {
		return err
	}
	names := make([]string, count)
	for i := range names {
		if names[i], err = d.string(); err != nil {
			return err
		}
	}
	types := make([]memberType, count)
	for i := range types {
		if types[i].binary, err = d.byte(); err != nil {
			return err
		}
	}
	for i := range types {
		if err := d.additionalInfo(&types[i]); err != nil {
			return err
		}
	}
	libID, err := d.int32()
	if err != nil {
		return err
	}

	for i, member := range names {
		v, err := d.member(member, types[i])
		if err != nil {
			return fmt.Errorf("member %q: %w", member, err)
		}
		if v != nil {
			d.inline[member] = v
		}
		if _, ref := d.refs[member]; v != nil || ref {
			d.members = append(d.members, member)
		}
	}
	d.root = &Class{
		LibraryName: d.libraries[libID],
		Name:        name,
	}
	return nil
}

func (d *decoder) additionalInfo(t *memberType) error {
	switch t.binary {
	case binaryPrimitive, binaryPrimitiveArray:
		b, err := d.byte()
		t.primitive = PrimitiveType(b)
		return err
	case binarySystemClass:
		_, err := d.string()
		return err
	case binaryClass:
		if _, err := d.string(); err != nil {
			return err
		}
		_, err := d.int32()
		return err
	case binaryString, binaryObject, binaryObjectArray, binaryStringArray:
		return nil
	}
	return fmt.Errorf("%w: binary type %d", ErrUnsupportedRecord, t.binary)
}

// member reads one member value. A nil Value with a nil error means the member
// is either null or a reference resolved in finish.
func (d *decoder) member(name string, t memberType) (Value, error) {
	if t.binary == binaryPrimitive {
		return d.primitive(t.primitive)
	}
	for {
		rt, err := d.byte()
		if err != nil {
			return nil, err
		}
		switch rt {
		case recordBinaryLibrary:
			if err := d.library(); err != nil {
				return nil, err
			}
			continue
		case recordObjectNull:
			return nil, nil
		case recordMemberReference:
			id, err := d.int32()
			if err != nil {
				return nil, err
			}
			d.refs[name] = id
			return nil, nil
		case recordMemberPrimitiveTyped:
			b, err := d.byte()
			if err != nil {
				return nil, err
			}
			return d.primitive(PrimitiveType(b))
		case recordObjectString:
			return d.objectString()
		case recordArraySinglePrimitive:
			return d.array()
		}
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedRecord, rt)
	}
}

func (d *decoder) objectString() (Value, error) {
	id, err := d.int32()
	if err != nil {
		return nil, err
	}
	s, err := d.string()
	if err != nil {
		return nil, err
	}
	d.objects[id] = String(s)
	return String(s), nil
}

func (d *decoder) array() (Value, error) {
	id, err := d.int32()
	if err != nil {
		return nil, err
	}
	n, err := d.length()
	if err != nil {
		return nil, err
	}
	b, err := d.byte()
	if err != nil {
		return nil, err
	}
	v, err := d.primitiveArray(PrimitiveType(b), n)
	if err != nil {
		return nil, err
	}
	d.objects[id] = v
	return v, nil
}

func (d *decoder) finish() (*Class, error) {
	if d.root == nil {
		return nil, ErrNoRootClass
	}
	fields := NewFieldMap()
	for _, name := range d.members {
		if v, ok := d.inline[name]; ok {
			fields.Set(name, v)
			continue
		}
		id := d.refs[name]
		v, ok := d.objects[id]
		if !ok {
			return nil, fmt.Errorf("%w: member %q -> object %d", ErrDanglingReference, name, id)
		}
		fields.Set(name, v)
	}
	d.root.Fields = fields
	return d.root, nil
}
