package layers

import (
	"github.com/corvidnet/bitwire/addr"
	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/derive"
)

// EtherType values for the headers the catalog produces payloads for.
const (
	EtherTypeIPv4 uint16 = 0x0800
)

// EthHeader is the 112-bit Ethernet II header: destination MAC, source
// MAC, and EtherType.
type EthHeader struct {
	Dst       addr.MAC
	Src       addr.MAC
	EtherType uint16
}

func (h *EthHeader) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewNestedField("dst", func() bitfield.Group { return &h.Dst }),
		bitfield.NewNestedField("src", func() bitfield.Group { return &h.Src }),
		bitfield.NewUintField("ethertype", 16, func() uint64 { return uint64(h.EtherType) }, func(v uint64) { h.EtherType = uint16(v) }),
	}
}

func (h *EthHeader) GroupKind() bitfield.GroupKind { return bitfield.Frame }
func (h *EthHeader) Layer() int                    { return 2 }
func (h *EthHeader) DisplayName() string           { return "Ethernet Header" }

// EthFooter is the 32-bit Ethernet frame check sequence.
type EthFooter struct {
	CRC uint32
}

func (f *EthFooter) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewUintField("crc", 32, func() uint64 { return uint64(f.CRC) }, func(v uint64) { f.CRC = uint32(v) }),
	}
}

func (f *EthFooter) GroupKind() bitfield.GroupKind { return bitfield.Frame }
func (f *EthFooter) Layer() int                    { return 2 }
func (f *EthFooter) DisplayName() string           { return "Ethernet Footer" }

// CalcCRC implements derive.CRCer: the IEEE 802.3 CRC-32 over the frame
// bytes preceding this footer.
func (f *EthFooter) CalcCRC(frameWithoutFooter []byte) error {
	f.CRC = derive.EthernetCRC(frameWithoutFooter)
	return nil
}

var _ derive.CRCer = (*EthFooter)(nil)
