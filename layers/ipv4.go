package layers

import (
	"github.com/corvidnet/bitwire/addr"
	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/derive"
)

// IP protocol numbers the catalog's L4 headers use in the IPv4 protocol
// field.
const (
	ProtoICMP uint8 = 1
	ProtoTCP  uint8 = 6
	ProtoUDP  uint8 = 17
)

// IPv4Header is the 160-bit IPv4 header, no options.
type IPv4Header struct {
	Version        uint8
	IHL            uint8
	TOS            uint8
	TotalLength    uint16
	ID             uint16
	Flags          uint8 // 3 bits
	FragOffset     uint16 // 13 bits
	TTL            uint8
	Protocol       uint8
	HeaderChecksum uint16
	Src            addr.IPv4
	Dst            addr.IPv4
}

// NewIPv4Header returns a header with version 4, a 20-byte IHL, and a TTL
// of 64, the rest left for the caller and CalcLengthAndHeaderChecksum to
// fill in.
func NewIPv4Header() *IPv4Header {
	return &IPv4Header{Version: 4, IHL: 5, TTL: 64}
}

func (h *IPv4Header) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewUintField("version", 4, func() uint64 { return uint64(h.Version) }, func(v uint64) { h.Version = uint8(v) }),
		bitfield.NewUintField("ihl", 4, func() uint64 { return uint64(h.IHL) }, func(v uint64) { h.IHL = uint8(v) }),
		bitfield.NewUintField("tos", 8, func() uint64 { return uint64(h.TOS) }, func(v uint64) { h.TOS = uint8(v) }),
		bitfield.NewUintField("total_length", 16, func() uint64 { return uint64(h.TotalLength) }, func(v uint64) { h.TotalLength = uint16(v) }),
		bitfield.NewUintField("id", 16, func() uint64 { return uint64(h.ID) }, func(v uint64) { h.ID = uint16(v) }),
		bitfield.NewUintField("flags", 3, func() uint64 { return uint64(h.Flags) }, func(v uint64) { h.Flags = uint8(v) }),
		bitfield.NewUintField("frag_offset", 13, func() uint64 { return uint64(h.FragOffset) }, func(v uint64) { h.FragOffset = uint16(v) }),
		bitfield.NewUintField("ttl", 8, func() uint64 { return uint64(h.TTL) }, func(v uint64) { h.TTL = uint8(v) }),
		bitfield.NewUintField("protocol", 8, func() uint64 { return uint64(h.Protocol) }, func(v uint64) { h.Protocol = uint8(v) }),
		bitfield.NewUintField("header_checksum", 16, func() uint64 { return uint64(h.HeaderChecksum) }, func(v uint64) { h.HeaderChecksum = uint16(v) }),
		bitfield.NewNestedField("src", func() bitfield.Group { return &h.Src }),
		bitfield.NewNestedField("dst", func() bitfield.Group { return &h.Dst }),
	}
}

func (h *IPv4Header) GroupKind() bitfield.GroupKind { return bitfield.Packet }
func (h *IPv4Header) Layer() int                    { return 3 }
func (h *IPv4Header) DisplayName() string           { return "IPv4 Header" }

// CalcLengthAndHeaderChecksum implements derive.HeaderChecksummer: total
// length covers header+payload; the header checksum covers the header
// alone, with its own checksum field zeroed during the sum.
func (h *IPv4Header) CalcLengthAndHeaderChecksum(payload []byte) error {
	h.TotalLength = uint16(bitfield.ByteWidth(h) + len(payload))
	h.HeaderChecksum = 0
	wire, err := bitfield.AsNetBytes(h)
	if err != nil {
		return err
	}
	h.HeaderChecksum = derive.InternetChecksum(wire)
	return nil
}

var _ derive.HeaderChecksummer = (*IPv4Header)(nil)
