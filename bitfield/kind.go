package bitfield

// Kind classifies one entry in a Group's schema.
type Kind uint8

const (
	// KindUint is an unsigned integer leaf of 1..64 bits.
	KindUint Kind = iota
	// KindBool is a 1-bit boolean leaf.
	KindBool
	// KindNested embeds another Group's fields in place.
	KindNested
	// KindVariant behaves like KindNested for wire purposes: the active
	// arm (already selected by the owning type, out of band) is folded as
	// if it were a nested Group. The discriminator itself is never part
	// of the wire image.
	KindVariant
	// KindOptional embeds another Group's fields when present and
	// contributes zero bits when absent.
	KindOptional
	// KindBytes is a raw byte string, byte-aligned, whose length is
	// supplied by the owning type rather than computed from the schema.
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	case KindNested:
		return "nested"
	case KindVariant:
		return "variant"
	case KindOptional:
		return "optional"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// GroupKind classifies a Group for the annotated formatter: only
// non-BASIC, non-OPTION groups get a boxed title.
type GroupKind uint8

const (
	Basic GroupKind = iota
	Option
	Header
	Packet
	Frame
)

func (k GroupKind) String() string {
	switch k {
	case Basic:
		return "BASIC"
	case Option:
		return "OPTION"
	case Header:
		return "HEADER"
	case Packet:
		return "PACKET"
	case Frame:
		return "FRAME"
	default:
		return "UNKNOWN"
	}
}
