package layers

import (
	"github.com/corvidnet/bitwire/addr"
	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/derive"
)

// TCPHeader is the 160-bit TCP header, no options.
type TCPHeader struct {
	SrcPort    addr.Port
	DstPort    addr.Port
	Seq        uint32
	Ack        uint32
	DataOffset uint8 // 4 bits, in 32-bit words
	Reserved   uint8 // 6 bits
	URG        bool
	ACK        bool
	PSH        bool
	RST        bool
	SYN        bool
	FIN        bool
	Window     uint16
	Checksum   uint16
	UrgentPtr  uint16

	pseudoSrc, pseudoDst addr.IPv4
}

// NewTCPHeader returns a header with DataOffset set for a 20-byte
// header (no options).
func NewTCPHeader() *TCPHeader {
	return &TCPHeader{DataOffset: 5}
}

func (h *TCPHeader) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewNestedField("src_port", func() bitfield.Group { return &h.SrcPort }),
		bitfield.NewNestedField("dst_port", func() bitfield.Group { return &h.DstPort }),
		bitfield.NewUintField("seq", 32, func() uint64 { return uint64(h.Seq) }, func(v uint64) { h.Seq = uint32(v) }),
		bitfield.NewUintField("ack", 32, func() uint64 { return uint64(h.Ack) }, func(v uint64) { h.Ack = uint32(v) }),
		bitfield.NewUintField("data_offset", 4, func() uint64 { return uint64(h.DataOffset) }, func(v uint64) { h.DataOffset = uint8(v) }),
		bitfield.NewUintField("reserved", 6, func() uint64 { return uint64(h.Reserved) }, func(v uint64) { h.Reserved = uint8(v) }),
		bitfield.NewBoolField("urg", func() bool { return h.URG }, func(v bool) { h.URG = v }),
		bitfield.NewBoolField("ack_flag", func() bool { return h.ACK }, func(v bool) { h.ACK = v }),
		bitfield.NewBoolField("psh", func() bool { return h.PSH }, func(v bool) { h.PSH = v }),
		bitfield.NewBoolField("rst", func() bool { return h.RST }, func(v bool) { h.RST = v }),
		bitfield.NewBoolField("syn", func() bool { return h.SYN }, func(v bool) { h.SYN = v }),
		bitfield.NewBoolField("fin", func() bool { return h.FIN }, func(v bool) { h.FIN = v }),
		bitfield.NewUintField("window", 16, func() uint64 { return uint64(h.Window) }, func(v uint64) { h.Window = uint16(v) }),
		bitfield.NewUintField("checksum", 16, func() uint64 { return uint64(h.Checksum) }, func(v uint64) { h.Checksum = uint16(v) }),
		bitfield.NewUintField("urgent_ptr", 16, func() uint64 { return uint64(h.UrgentPtr) }, func(v uint64) { h.UrgentPtr = uint16(v) }),
	}
}

func (h *TCPHeader) GroupKind() bitfield.GroupKind { return bitfield.Packet }
func (h *TCPHeader) Layer() int                    { return 4 }
func (h *TCPHeader) DisplayName() string           { return "TCP Header" }

// SetPseudoHeaderAddrs records the IPv4 addresses CalcLengthAndChecksum
// needs for the pseudo-header. Must be called before
// CalcLengthAndChecksum.
func (h *TCPHeader) SetPseudoHeaderAddrs(src, dst addr.IPv4) {
	h.pseudoSrc, h.pseudoDst = src, dst
}

// CalcLengthAndChecksum implements derive.LengthChecksummer. TCP has no
// length field of its own (the "length" half of the contract is a
// no-op), so this only fills the checksum: pseudo-header + header
// (checksum zeroed) + payload, per RFC 793.
func (h *TCPHeader) CalcLengthAndChecksum(payload []byte) error {
	h.Checksum = 0
	hdr, err := bitfield.AsNetBytes(h)
	if err != nil {
		return err
	}
	length := uint16(len(hdr) + len(payload))
	a, b, c, d := h.pseudoSrc.Octets()
	e, f, g, i := h.pseudoDst.Octets()
	pseudo := derive.PseudoHeader([4]byte{a, b, c, d}, [4]byte{e, f, g, i}, ProtoTCP, length)
	h.Checksum = derive.ChecksumOverRegions(pseudo, hdr, payload)
	return nil
}

var _ derive.LengthChecksummer = (*TCPHeader)(nil)
