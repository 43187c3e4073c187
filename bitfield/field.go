package bitfield

// Field is one declared entry in a Group's wire schema. A schema is data:
// constructing a []Field value is how a type opts into the bit layout
// engine, with no compile-time reflection or generated code involved.
type Field struct {
	Name string
	Kind Kind

	// Width is the declared bit width for KindUint and KindBool. Ignored
	// for every other Kind, whose width is computed dynamically.
	Width int

	// GetUint/SetUint back KindUint and KindBool.
	GetUint func() uint64
	SetUint func(uint64)

	// GetBytes/SetBytes back KindBytes. ByteLen, if non-nil, tells
	// FromNetBytes how many bytes to consume; otherwise len(GetBytes())
	// is used (the field must already hold a buffer of the right size).
	GetBytes func() []byte
	SetBytes func([]byte)
	ByteLen  func() int

	// Group backs KindNested and KindVariant: the sub-record folded in
	// place. For KindVariant this is the arm already selected by the
	// owning type; Tag names that arm for diagnostics only, it is never
	// part of the wire image.
	Group func() Group
	Tag   string

	// Present backs KindOptional: whether Group() should be folded in at
	// all. An absent optional contributes zero bits.
	Present func() bool
}

// NewUintField declares an unsigned-integer leaf of the given bit width.
func NewUintField(name string, width int, get func() uint64, set func(uint64)) Field {
	return Field{Name: name, Kind: KindUint, Width: width, GetUint: get, SetUint: set}
}

// NewBoolField declares a 1-bit boolean leaf.
func NewBoolField(name string, get func() bool, set func(bool)) Field {
	return Field{
		Name:  name,
		Kind:  KindBool,
		Width: 1,
		GetUint: func() uint64 {
			if get() {
				return 1
			}
			return 0
		},
		SetUint: func(v uint64) { set(v != 0) },
	}
}

// NewNestedField declares a sub-record folded in place.
func NewNestedField(name string, group func() Group) Field {
	return Field{Name: name, Kind: KindNested, Group: group}
}

// NewVariantField declares a tagged-variant field. group must return the
// arm already selected by the owning type; tag is that arm's name, for
// diagnostics only.
func NewVariantField(name string, tag string, group func() Group) Field {
	return Field{Name: name, Kind: KindVariant, Tag: tag, Group: group}
}

// NewOptionalField declares an optional sub-record.
func NewOptionalField(name string, present func() bool, group func() Group) Field {
	return Field{Name: name, Kind: KindOptional, Present: present, Group: group}
}

// NewBytesField declares a byte-aligned raw byte string.
func NewBytesField(name string, get func() []byte, set func([]byte)) Field {
	return Field{Name: name, Kind: KindBytes, GetBytes: get, SetBytes: set}
}

// Group is implemented by every BitFieldGroup record: a type whose wire
// layout is described by an ordered Field schema.
type Group interface {
	// Schema returns the ordered field list. Implementations build this
	// slice fresh on each call, closing over the receiver's own storage;
	// there is no hidden shared state between two Group values of the
	// same type.
	Schema() []Field
	// GroupKind classifies the record for the annotated formatter.
	GroupKind() GroupKind
	// Layer is the advisory OSI layer (2, 3, 4, or 7).
	Layer() int
	// DisplayName is the title the formatter renders for this record.
	DisplayName() string
}

// Width returns a field's current contribution to the record's bit width.
func Width(f Field) int {
	switch f.Kind {
	case KindUint, KindBool:
		return f.Width
	case KindNested, KindVariant:
		g := f.Group()
		if g == nil {
			return 0
		}
		return GroupWidth(g)
	case KindOptional:
		if f.Present == nil || !f.Present() {
			return 0
		}
		g := f.Group()
		if g == nil {
			return 0
		}
		return GroupWidth(g)
	case KindBytes:
		return byteLen(f) * 8
	default:
		return 0
	}
}

// GroupWidth returns the sum of a Group's field widths, optionals
// contributing zero when absent.
func GroupWidth(g Group) int {
	total := 0
	for _, f := range g.Schema() {
		total += Width(f)
	}
	return total
}

// ByteWidth returns ceil(GroupWidth(g)/8), the length AsNetBytes produces
// for a top-level emission.
func ByteWidth(g Group) int {
	bits := GroupWidth(g)
	return (bits + 7) / 8
}

func byteLen(f Field) int {
	if f.ByteLen != nil {
		return f.ByteLen()
	}
	if f.GetBytes == nil {
		return 0
	}
	return len(f.GetBytes())
}
