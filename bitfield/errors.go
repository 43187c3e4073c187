package bitfield

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientBytes is returned by FromNetBytes when the supplied
	// buffer is shorter than the schema's byte-aligned width requires.
	ErrInsufficientBytes = errors.New("bitfield: insufficient bytes")

	// ErrUnalignedPayload is returned when a byte-string field is declared
	// at a bit position that is not a multiple of 8.
	ErrUnalignedPayload = errors.New("bitfield: byte-string field at non-byte-aligned position")
)

// InvalidWidthError reports a field whose value does not fit the width
// declared for it in the schema.
type InvalidWidthError struct {
	Field string
	Width int
	Value uint64
}

func (e InvalidWidthError) Error() string {
	return fmt.Sprintf("bitfield: field %q value %d does not fit %d bits", e.Field, e.Value, e.Width)
}

// UnknownVariantTagError reports a discriminator that does not match any
// arm of a tagged-variant field.
type UnknownVariantTagError struct {
	Field string
	Tag   string
}

func (e UnknownVariantTagError) Error() string {
	return fmt.Sprintf("bitfield: field %q has unknown variant tag %q", e.Field, e.Tag)
}
