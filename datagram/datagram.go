package datagram

import (
	"github.com/corvidnet/bitwire/addr"
	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/derive"
	"github.com/corvidnet/bitwire/layers"
)

// Full is the nestable tagged record {L2-hdr, L3-hdr, optional L4-hdr,
// payload, L2-ftr}. L2Hdr and L2Ftr are presently always the Ethernet
// variant (see newL2/newL2Footer); L3Hdr is the ip or icmp variant;
// L4Hdr, when present, is udp or tcp.
type Full struct {
	L2Hdr bitfield.Group
	l2Tag string

	L3Hdr bitfield.Group
	l3Tag string

	L4Hdr bitfield.Group // nil when absent
	l4Tag string

	Payload []byte

	L2Ftr    bitfield.Group
	l2FtrTag string
}

func (d *Full) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewNestedField("l2_hdr", func() bitfield.Group { return d.L2Hdr }),
		bitfield.NewVariantField("l3_hdr", d.l3Tag, func() bitfield.Group { return d.L3Hdr }),
		bitfield.NewOptionalField("l4_hdr", func() bool { return d.L4Hdr != nil }, func() bitfield.Group { return d.L4Hdr }),
		bitfield.NewBytesField("payload", func() []byte { return d.Payload }, func(b []byte) { d.Payload = b }),
		bitfield.NewNestedField("l2_ftr", func() bitfield.Group { return d.L2Ftr }),
	}
}

func (d *Full) GroupKind() bitfield.GroupKind { return bitfield.Frame }
func (d *Full) Layer() int                    { return 2 }
func (d *Full) DisplayName() string           { return "Datagram" }

// pseudoHeaderSetter is implemented by the L4 headers that need the L3
// IPv4 addresses for their pseudo-header checksum. It is not part of
// the bitfield.Group or derive contracts: it is a private wiring detail
// the aggregator uses to hand addresses across the layer boundary
// before dispatching the derived-field call, since
// LengthChecksummer.CalcLengthAndChecksum takes only a payload.
type pseudoHeaderSetter interface {
	SetPseudoHeaderAddrs(src, dst addr.IPv4)
}

// Init constructs a Full. layer names the outermost layer the caller
// supplies explicitly; headers above it are defaulted to Ethernet (L2)
// and IPv4 (L3). header-tags[0] names the layer-2 variant when
// layer==2, the layer-3 variant when layer==3, and the layer-4 variant
// when layer==4; header-tags[1] (if present) names the next layer down.
func Init(layer int, headerTags []string, payload []byte, footerTag string) (*Full, error) {
	var l2Tag, l3Tag, l4Tag string
	hasL4 := false

	idx := 0
	next := func() (string, bool) {
		if idx < len(headerTags) {
			v := headerTags[idx]
			idx++
			return v, true
		}
		return "", false
	}

	switch layer {
	case 2:
		l2Tag, _ = next()
		l3Tag, _ = next()
		if t, ok := next(); ok {
			l4Tag, hasL4 = t, true
		}
	case 3:
		l2Tag = "eth"
		l3Tag, _ = next()
		if t, ok := next(); ok {
			l4Tag, hasL4 = t, true
		}
	case 4:
		l2Tag = "eth"
		l3Tag = "ip"
		l4Tag, hasL4 = next()
	default:
		return nil, ErrInvalidHeader
	}

	l2Hdr, err := newL2(l2Tag)
	if err != nil {
		return nil, err
	}
	l3Hdr, err := newL3(l3Tag)
	if err != nil {
		return nil, err
	}
	var l4Hdr bitfield.Group
	if hasL4 {
		l4Hdr, err = newL4(l4Tag)
		if err != nil {
			return nil, err
		}
	}
	l2Ftr, err := newL2Footer(footerTag)
	if err != nil {
		return nil, err
	}

	return &Full{
		L2Hdr: l2Hdr, l2Tag: l2Tag,
		L3Hdr: l3Hdr, l3Tag: l3Tag,
		L4Hdr: l4Hdr, l4Tag: l4Tag,
		Payload:  payload,
		L2Ftr:    l2Ftr,
		l2FtrTag: footerTag,
	}, nil
}

func newL2(tag string) (bitfield.Group, error) {
	switch tag {
	case "eth":
		return &layers.EthHeader{}, nil
	default:
		// "wifi" is a named variant in the type's closed set but the
		// catalog declares no WiFi schema; treat it the same as an
		// unrecognized tag.
		return nil, ErrInvalidHeader
	}
}

func newL3(tag string) (bitfield.Group, error) {
	switch tag {
	case "ip":
		return layers.NewIPv4Header(), nil
	case "icmp":
		return &layers.ICMPPacket{}, nil
	default:
		return nil, ErrInvalidHeader
	}
}

func newL4(tag string) (bitfield.Group, error) {
	switch tag {
	case "udp":
		return &layers.UDPHeader{}, nil
	case "tcp":
		return layers.NewTCPHeader(), nil
	default:
		return nil, ErrInvalidHeader
	}
}

func newL2Footer(tag string) (bitfield.Group, error) {
	switch tag {
	case "eth":
		return &layers.EthFooter{}, nil
	default:
		return nil, ErrInvalidFooter
	}
}

// CalcFromPayload runs the cross-layer derived-field orchestration:
// L4 strictly before L3, strictly before the L2 footer, each reading
// the wire image the previous step produced.
func (d *Full) CalcFromPayload() error {
	if ip, ok := d.L3Hdr.(*layers.IPv4Header); ok {
		if setter, ok := d.L4Hdr.(pseudoHeaderSetter); ok {
			setter.SetPseudoHeaderAddrs(ip.Src, ip.Dst)
		}
	}

	l4Wire := []byte(nil)
	if d.L4Hdr != nil {
		lc, ok := d.L4Hdr.(derive.LengthChecksummer)
		if !ok {
			return ErrNoCalcMethod
		}
		if err := lc.CalcLengthAndChecksum(d.Payload); err != nil {
			return err
		}
		wire, err := bitfield.AsNetBytes(d.L4Hdr)
		if err != nil {
			return err
		}
		l4Wire = wire
	}

	l3Payload := concat(l4Wire, d.Payload)
	if err := calcL3(d.L3Hdr, l3Payload); err != nil {
		return err
	}
	l3Wire, err := bitfield.AsNetBytes(d.L3Hdr)
	if err != nil {
		return err
	}

	l2Hdr, err := bitfield.AsNetBytes(d.L2Hdr)
	if err != nil {
		return err
	}

	// Pad only now, after the L4 and L3 length/checksum fields have
	// already been derived from the unpadded payload: the alignment
	// filler must stretch the wire image to a 4-byte boundary without
	// ever being counted by UDPHeader.Length or IPv4Header.TotalLength.
	d.padPayload(len(l2Hdr) + len(l3Wire) + len(l3Payload))

	l2Payload := concat(l3Wire, concat(l4Wire, d.Payload))
	frameWithoutFooter := concat(l2Hdr, l2Payload)

	crcer, ok := d.L2Ftr.(derive.CRCer)
	if !ok {
		return ErrNoCalcMethod
	}
	return crcer.CalcCRC(frameWithoutFooter)
}

// calcL3 dispatches to whichever derived-field capability the L3
// header implements: IPv4 exposes HeaderChecksummer, ICMP exposes
// LengthChecksummer.
func calcL3(l3 bitfield.Group, payload []byte) error {
	if hc, ok := l3.(derive.HeaderChecksummer); ok {
		return hc.CalcLengthAndHeaderChecksum(payload)
	}
	if lc, ok := l3.(derive.LengthChecksummer); ok {
		return lc.CalcLengthAndChecksum(payload)
	}
	return ErrNoCalcMethod
}

// padPayload extends the payload with zero bytes so that precedingLen
// (the length of everything emitted ahead of the footer, the unpadded
// payload included) plus the footer lands on a 4-byte boundary. Padding is plain zero fill:
// treating the filler as zero bytes rather than any sentinel string
// resolves the one ambiguity the source left open here.
func (d *Full) padPayload(precedingLen int) {
	total := precedingLen + bitfield.ByteWidth(d.L2Ftr)
	pad := (4 - total%4) % 4
	if pad > 0 {
		d.Payload = append(d.Payload, make([]byte, pad)...)
	}
}

// AsNetBytes concatenates L2-hdr, L3, L4 (if present), payload, and
// L2-ftr and emits the result big-endian. The result's length is a
// multiple of 4 bytes once CalcFromPayload has run.
func AsNetBytes(d *Full) ([]byte, error) {
	return bitfield.AsNetBytes(d)
}

// FromNetBytes parses a wire image into d, whose L2/L3/L4/footer
// variants must already be selected (e.g. via Init) so the schema
// knows which concrete type to decode each slot into. The payload
// field has no fixed width, so FromNetBytes first sizes d.Payload to
// whatever is left over after the fixed-width headers and footer,
// which is what the byte-string field's length falls back to during
// decode.
func FromNetBytes(d *Full, data []byte) error {
	fixed := bitfield.ByteWidth(d.L2Hdr) + bitfield.ByteWidth(d.L3Hdr) + bitfield.ByteWidth(d.L2Ftr)
	if d.L4Hdr != nil {
		fixed += bitfield.ByteWidth(d.L4Hdr)
	}
	if len(data) < fixed {
		return bitfield.ErrInsufficientBytes
	}
	d.Payload = make([]byte, len(data)-fixed)
	return bitfield.FromNetBytes(d, data)
}

func concat(a, b []byte) []byte {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
