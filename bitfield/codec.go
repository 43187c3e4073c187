package bitfield

// AsNetBytes returns g's wire image: fields folded in declaration order,
// MSB-first, written big-endian. The returned slice has length
// ByteWidth(g); if GroupWidth(g) is not a multiple of 8 the trailing bits
// of the last byte are zero.
func AsNetBytes(g Group) ([]byte, error) {
	w := newBitWriter(GroupWidth(g))
	if err := writeGroup(w, g); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// AsBytes returns the diagnostic native-endian image: AsNetBytes with
// each complete 32-bit word byte-swapped, reproducing the little-endian
// host reinterpretation the original in-memory layout produced. It is
// only meaningful for diagnostic inspection on little-endian hosts; use
// AsNetBytes for anything that goes on the wire.
func AsBytes(g Group) ([]byte, error) {
	net, err := AsNetBytes(g)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(net))
	copy(out, net)
	for i := 0; i+4 <= len(out); i += 4 {
		out[i], out[i+1], out[i+2], out[i+3] = out[i+3], out[i+2], out[i+1], out[i+0]
	}
	return out, nil
}

// FromNetBytes is the inverse of AsNetBytes: it reads data big-endian and
// slices each field out MSB-first into g's own storage.
func FromNetBytes(g Group, data []byte) error {
	need := ByteWidth(g)
	if len(data) < need {
		return ErrInsufficientBytes
	}
	r := newBitReader(data)
	return readGroup(r, g)
}

func writeGroup(w *bitWriter, g Group) error {
	for _, f := range g.Schema() {
		switch f.Kind {
		case KindUint, KindBool:
			v := f.GetUint()
			if !fitsWidth(v, f.Width) {
				return InvalidWidthError{Field: f.Name, Width: f.Width, Value: v}
			}
			w.writeBits(v, f.Width)
		case KindNested:
			sub := f.Group()
			if sub == nil {
				return InvalidWidthError{Field: f.Name, Width: 0}
			}
			if err := writeGroup(w, sub); err != nil {
				return err
			}
		case KindVariant:
			sub := f.Group()
			if sub == nil {
				return UnknownVariantTagError{Field: f.Name, Tag: f.Tag}
			}
			if err := writeGroup(w, sub); err != nil {
				return err
			}
		case KindOptional:
			if f.Present != nil && f.Present() {
				sub := f.Group()
				if sub == nil {
					return InvalidWidthError{Field: f.Name, Width: 0}
				}
				if err := writeGroup(w, sub); err != nil {
					return err
				}
			}
		case KindBytes:
			if w.bitPos%8 != 0 {
				return ErrUnalignedPayload
			}
			w.writeBytes(f.GetBytes())
		}
	}
	return nil
}

func readGroup(r *bitReader, g Group) error {
	for _, f := range g.Schema() {
		switch f.Kind {
		case KindUint, KindBool:
			v, err := r.readBits(f.Width)
			if err != nil {
				return err
			}
			f.SetUint(v)
		case KindNested:
			sub := f.Group()
			if sub == nil {
				return InvalidWidthError{Field: f.Name, Width: 0}
			}
			if err := readGroup(r, sub); err != nil {
				return err
			}
		case KindVariant:
			sub := f.Group()
			if sub == nil {
				return UnknownVariantTagError{Field: f.Name, Tag: f.Tag}
			}
			if err := readGroup(r, sub); err != nil {
				return err
			}
		case KindOptional:
			if f.Present != nil && f.Present() {
				sub := f.Group()
				if sub == nil {
					return InvalidWidthError{Field: f.Name, Width: 0}
				}
				if err := readGroup(r, sub); err != nil {
					return err
				}
			}
		case KindBytes:
			n := byteLen(f)
			buf, err := r.readBytes(n)
			if err != nil {
				return err
			}
			f.SetBytes(buf)
		}
	}
	return nil
}

func fitsWidth(v uint64, width int) bool {
	if width >= 64 {
		return true
	}
	return v < (uint64(1) << uint(width))
}
