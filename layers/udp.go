package layers

import (
	"github.com/corvidnet/bitwire/addr"
	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/derive"
)

// UDPHeader is the 64-bit UDP header: source port, destination port,
// length, checksum.
type UDPHeader struct {
	SrcPort  addr.Port
	DstPort  addr.Port
	Length   uint16
	Checksum uint16

	// pseudoSrc/pseudoDst are the IPv4 addresses the pseudo-header needs
	// for the checksum. They are not part of the wire schema (UDP's own
	// 64 bits carry no addresses) and must be set by SetPseudoHeaderAddrs
	// before CalcLengthAndChecksum runs. The Datagram Aggregator does this
	// using the Full's L3 header addresses.
	pseudoSrc, pseudoDst addr.IPv4
}

func (u *UDPHeader) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewNestedField("src_port", func() bitfield.Group { return &u.SrcPort }),
		bitfield.NewNestedField("dst_port", func() bitfield.Group { return &u.DstPort }),
		bitfield.NewUintField("length", 16, func() uint64 { return uint64(u.Length) }, func(v uint64) { u.Length = uint16(v) }),
		bitfield.NewUintField("checksum", 16, func() uint64 { return uint64(u.Checksum) }, func(v uint64) { u.Checksum = uint16(v) }),
	}
}

func (u *UDPHeader) GroupKind() bitfield.GroupKind { return bitfield.Packet }
func (u *UDPHeader) Layer() int                    { return 4 }
func (u *UDPHeader) DisplayName() string           { return "UDP Header" }

// SetPseudoHeaderAddrs records the IPv4 addresses CalcLengthAndChecksum
// needs for the pseudo-header. Must be called before
// CalcLengthAndChecksum.
func (u *UDPHeader) SetPseudoHeaderAddrs(src, dst addr.IPv4) {
	u.pseudoSrc, u.pseudoDst = src, dst
}

// CalcLengthAndChecksum implements derive.LengthChecksummer: length
// covers header+payload; checksum covers the pseudo-header + header
// (checksum zeroed) + payload, per RFC 768.
func (u *UDPHeader) CalcLengthAndChecksum(payload []byte) error {
	u.Length = uint16(bitfield.ByteWidth(u) + len(payload))
	u.Checksum = 0
	hdr, err := bitfield.AsNetBytes(u)
	if err != nil {
		return err
	}
	a, b, c, d := u.pseudoSrc.Octets()
	e, f, g, h := u.pseudoDst.Octets()
	pseudo := derive.PseudoHeader([4]byte{a, b, c, d}, [4]byte{e, f, g, h}, ProtoUDP, u.Length)
	u.Checksum = derive.ChecksumOverRegions(pseudo, hdr, payload)
	return nil
}

var _ derive.LengthChecksummer = (*UDPHeader)(nil)
