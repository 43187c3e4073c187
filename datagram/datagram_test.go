package datagram

import (
	"errors"
	"testing"

	"github.com/corvidnet/bitwire/addr"
	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/layers"
)

// bareFooter implements bitfield.Group but none of the derive
// capabilities, to exercise the NoCalcMethod path.
type bareFooter struct{ v uint32 }

func (b *bareFooter) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewUintField("v", 32, func() uint64 { return uint64(b.v) }, func(x uint64) { b.v = uint32(x) }),
	}
}
func (b *bareFooter) GroupKind() bitfield.GroupKind { return bitfield.Frame }
func (b *bareFooter) Layer() int                    { return 2 }
func (b *bareFooter) DisplayName() string           { return "Bare Footer" }

func TestInitUnknownHeaderTag(t *testing.T) {
	_, err := Init(3, []string{"bogus", "udp"}, nil, "eth")
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("error = %v, want ErrInvalidHeader", err)
	}
}

func TestInitUnknownFooterTag(t *testing.T) {
	_, err := Init(3, []string{"ip", "udp"}, nil, "bogus")
	if !errors.Is(err, ErrInvalidFooter) {
		t.Fatalf("error = %v, want ErrInvalidFooter", err)
	}
}

func TestInitLayer3DefaultsEthernet(t *testing.T) {
	d, err := Init(3, []string{"ip", "udp"}, []byte("x"), "eth")
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	eth, ok := d.L2Hdr.(*layers.EthHeader)
	if !ok {
		t.Fatalf("L2Hdr = %T, want *layers.EthHeader", d.L2Hdr)
	}
	if eth.Dst != (addr.MAC{}) {
		t.Fatalf("defaulted Ethernet destination MAC = %v, want all zeros", eth.Dst)
	}
}

func buildUDPDatagram(t *testing.T, payload []byte) *Full {
	t.Helper()
	d, err := Init(2, []string{"eth", "ip", "udp"}, payload, "eth")
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	ip := d.L3Hdr.(*layers.IPv4Header)
	ip.Protocol = layers.ProtoUDP
	ip.Src = addr.NewIPv4(10, 0, 0, 1)
	ip.Dst = addr.NewIPv4(10, 0, 0, 2)
	udp := d.L4Hdr.(*layers.UDPHeader)
	udp.SrcPort, udp.DstPort = 1024, 1025
	return d
}

func TestCalcFromPayloadChecksumScenario(t *testing.T) {
	d := buildUDPDatagram(t, []byte("abcd"))
	if err := d.CalcFromPayload(); err != nil {
		t.Fatalf("CalcFromPayload error: %v", err)
	}
	ip := d.L3Hdr.(*layers.IPv4Header)
	udp := d.L4Hdr.(*layers.UDPHeader)
	if ip.TotalLength != 32 {
		t.Fatalf("IPv4 TotalLength = %d, want 32", ip.TotalLength)
	}
	if udp.Length != 12 {
		t.Fatalf("UDP Length = %d, want 12", udp.Length)
	}
	// Pinned against the RFC 791/768 sums for this exact header/address
	// combination, so a regression in either checksum path, not just its
	// length bookkeeping, fails this test.
	if ip.HeaderChecksum != 0x66CB {
		t.Fatalf("IPv4 HeaderChecksum = %#x, want 0x66cb", ip.HeaderChecksum)
	}
	if udp.Checksum != 0x1F0C {
		t.Fatalf("UDP Checksum = %#x, want 0x1f0c", udp.Checksum)
	}
}

func TestAsNetBytesAlignedToFourBytes(t *testing.T) {
	d := buildUDPDatagram(t, []byte("Hello World!"))
	if err := d.CalcFromPayload(); err != nil {
		t.Fatalf("CalcFromPayload error: %v", err)
	}
	wire, err := AsNetBytes(d)
	if err != nil {
		t.Fatalf("AsNetBytes error: %v", err)
	}
	if len(wire)%4 != 0 {
		t.Fatalf("len(wire) = %d, not a multiple of 4", len(wire))
	}
}

func TestRoundTripRecoversHeadersAndPayload(t *testing.T) {
	d := buildUDPDatagram(t, []byte("Hello World!"))
	if err := d.CalcFromPayload(); err != nil {
		t.Fatalf("CalcFromPayload error: %v", err)
	}
	wantPayloadLen := len(d.Payload)
	wire, err := AsNetBytes(d)
	if err != nil {
		t.Fatalf("AsNetBytes error: %v", err)
	}

	back, err := Init(2, []string{"eth", "ip", "udp"}, nil, "eth")
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := FromNetBytes(back, wire); err != nil {
		t.Fatalf("FromNetBytes error: %v", err)
	}

	gotUDP := back.L4Hdr.(*layers.UDPHeader)
	wantUDP := d.L4Hdr.(*layers.UDPHeader)
	if gotUDP.SrcPort != wantUDP.SrcPort || gotUDP.DstPort != wantUDP.DstPort {
		t.Fatalf("UDP ports = %+v, want %+v", gotUDP, wantUDP)
	}
	if len(back.Payload) != wantPayloadLen {
		t.Fatalf("len(Payload) = %d, want %d", len(back.Payload), wantPayloadLen)
	}
}

func TestCalcFromPayloadICMPAsL3Header(t *testing.T) {
	d, err := Init(3, []string{"icmp"}, []byte("ping"), "eth")
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := d.CalcFromPayload(); err != nil {
		t.Fatalf("CalcFromPayload error: %v", err)
	}
	// ICMP implements LengthChecksummer, not HeaderChecksummer; calcL3
	// must fall through to it rather than reporting NoCalcMethod.
	icmp := d.L3Hdr.(*layers.ICMPPacket)
	if icmp.Checksum == 0 {
		t.Fatalf("ICMP checksum should not be zero for this input")
	}
}

func TestCalcFromPayloadNoCalcMethodForFooter(t *testing.T) {
	d := &Full{
		L2Hdr:   &layers.EthHeader{},
		L3Hdr:   layers.NewIPv4Header(),
		Payload: []byte("x"),
		L2Ftr:   &bareFooter{},
	}
	err := d.CalcFromPayload()
	if !errors.Is(err, ErrNoCalcMethod) {
		t.Fatalf("error = %v, want ErrNoCalcMethod", err)
	}
}
