package layers

import (
	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/derive"
)

// ICMPPacket is the 64-bit fixed ICMP header: type, code, checksum, and
// a 32-bit rest-of-header whose interpretation depends on Type (unused
// by this catalog beyond carrying the bits).
type ICMPPacket struct {
	Type         uint8
	Code         uint8
	Checksum     uint16
	RestOfHeader uint32
}

func (p *ICMPPacket) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewUintField("type", 8, func() uint64 { return uint64(p.Type) }, func(v uint64) { p.Type = uint8(v) }),
		bitfield.NewUintField("code", 8, func() uint64 { return uint64(p.Code) }, func(v uint64) { p.Code = uint8(v) }),
		bitfield.NewUintField("checksum", 16, func() uint64 { return uint64(p.Checksum) }, func(v uint64) { p.Checksum = uint16(v) }),
		bitfield.NewUintField("rest", 32, func() uint64 { return uint64(p.RestOfHeader) }, func(v uint64) { p.RestOfHeader = uint32(v) }),
	}
}

func (p *ICMPPacket) GroupKind() bitfield.GroupKind { return bitfield.Packet }
func (p *ICMPPacket) Layer() int                    { return 3 }
func (p *ICMPPacket) DisplayName() string           { return "ICMP Packet" }

// CalcLengthAndChecksum implements derive.LengthChecksummer. ICMP has no
// length field of its own, so this only fills the checksum: over the
// header with its checksum zeroed, concatenated with payload, no
// pseudo-header.
func (p *ICMPPacket) CalcLengthAndChecksum(payload []byte) error {
	p.Checksum = 0
	hdr, err := bitfield.AsNetBytes(p)
	if err != nil {
		return err
	}
	p.Checksum = derive.ChecksumOverRegions(hdr, payload)
	return nil
}

var _ derive.LengthChecksummer = (*ICMPPacket)(nil)
