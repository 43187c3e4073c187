package addr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/internal/diagnostics"
)

// IPv4 is a 32-bit address, four octets a.b.c.d, big-endian.
type IPv4 uint32

// NewIPv4 builds an IPv4 from its four octets, a.b.c.d.
func NewIPv4(a, b, c, d byte) IPv4 {
	return IPv4(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

// Octets returns the address as a.b.c.d.
func (v IPv4) Octets() (a, b, c, d byte) {
	return byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)
}

func (v IPv4) String() string {
	a, b, c, d := v.Octets()
	return fmt.Sprintf("%d.%d.%d.%d", a, b, c, d)
}

// Schema implements bitfield.Group: the wire image is the 32-bit
// big-endian integer representation.
func (v *IPv4) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewUintField("ipv4", 32,
			func() uint64 { return uint64(*v) },
			func(x uint64) { *v = IPv4(x) },
		),
	}
}

func (v *IPv4) GroupKind() bitfield.GroupKind { return bitfield.Basic }
func (v *IPv4) Layer() int                    { return 3 }
func (v *IPv4) DisplayName() string           { return "IPv4" }

// ParseIPv4 accepts A.B.C.D, optionally followed by /cidr and/or :port,
// both discarded for the value itself. Malformed input is reported to
// stderr (via internal/diagnostics) in addition to the returned error,
// preserving the original offending string.
func ParseIPv4(s string) (IPv4, error) {
	raw := s
	body := stripIPv4Suffixes(strings.TrimSpace(s))
	octets := strings.Split(body, ".")
	if len(octets) != 4 {
		diagnostics.Warnf("addr: invalid IPv4 string %q", raw)
		return 0, ErrInvalidIPv4String
	}
	var v uint32
	for _, o := range octets {
		n, err := strconv.Atoi(o)
		if err != nil || n < 0 || n > 255 {
			diagnostics.Warnf("addr: invalid IPv4 string %q", raw)
			return 0, ErrInvalidIPv4String
		}
		v = v<<8 | uint32(n)
	}
	return IPv4(v), nil
}

func stripIPv4Suffixes(s string) string {
	cut := len(s)
	if i := strings.IndexByte(s, '/'); i >= 0 && i < cut {
		cut = i
	}
	if i := strings.IndexByte(s, ':'); i >= 0 && i < cut {
		cut = i
	}
	return s[:cut]
}

// SliceFromStr enumerates the addresses named by s:
//   - "A.B.C.D/cidr" (cidr in [0,31]) enumerates the subnet in numerical order;
//   - a comma-separated list of individual addresses;
//   - otherwise, an octet-range form A1[-A2].B1[-B2].C1[-C2].D1[-D2], the
//     Cartesian product of inclusive octet ranges, outer loop on the
//     leftmost octet.
func SliceFromStr(s string) ([]IPv4, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, "/"):
		return sliceCIDR(s)
	case strings.Contains(s, ","):
		return sliceList(s)
	default:
		return sliceOctetRanges(s)
	}
}

func sliceCIDR(s string) ([]IPv4, error) {
	parts := strings.SplitN(s, "/", 2)
	base, err := ParseIPv4(parts[0])
	if err != nil {
		return nil, err
	}
	cidr, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || cidr < 0 {
		diagnostics.Warnf("addr: invalid CIDR suffix %q", s)
		return nil, ErrInvalidIPv4String
	}
	if cidr > 31 {
		diagnostics.Warnf("addr: CIDR too large %q", s)
		return nil, ErrCIDRTooLarge
	}
	hostBits := uint(32 - cidr)
	var mask uint32
	if hostBits < 32 {
		mask = ^uint32(0) << hostBits
	}
	network := uint32(base) & mask
	count := uint64(1) << hostBits
	out := make([]IPv4, 0, count)
	for i := uint64(0); i < count; i++ {
		out = append(out, IPv4(network+uint32(i)))
	}
	return out, nil
}

func sliceList(s string) ([]IPv4, error) {
	parts := strings.Split(s, ",")
	out := make([]IPv4, 0, len(parts))
	for _, p := range parts {
		a, err := ParseIPv4(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func sliceOctetRanges(s string) ([]IPv4, error) {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		diagnostics.Warnf("addr: invalid IPv4 octet-range string %q", s)
		return nil, ErrInvalidIPv4String
	}
	var ranges [4][2]int
	for i, g := range groups {
		lo, hi, err := parseOctetRange(g)
		if err != nil {
			diagnostics.Warnf("addr: invalid IPv4 octet-range string %q", s)
			return nil, err
		}
		ranges[i] = [2]int{lo, hi}
	}
	var out []IPv4
	for a := ranges[0][0]; a <= ranges[0][1]; a++ {
		for b := ranges[1][0]; b <= ranges[1][1]; b++ {
			for c := ranges[2][0]; c <= ranges[2][1]; c++ {
				for d := ranges[3][0]; d <= ranges[3][1]; d++ {
					out = append(out, NewIPv4(byte(a), byte(b), byte(c), byte(d)))
				}
			}
		}
	}
	return out, nil
}

// parseOctetRange parses "N" or "N1-N2" as an inclusive [lo, hi] octet
// range, unlike the half-open Port ranges GetRange produces.
func parseOctetRange(g string) (lo, hi int, err error) {
	parts := strings.SplitN(g, "-", 2)
	lo, err = strconv.Atoi(parts[0])
	if err != nil || lo < 0 || lo > 255 {
		return 0, 0, ErrInvalidIPv4String
	}
	if len(parts) == 1 {
		return lo, lo, nil
	}
	hi, err = strconv.Atoi(parts[1])
	if err != nil || hi < 0 || hi > 255 || hi < lo {
		return 0, 0, ErrInvalidIPv4String
	}
	return lo, hi, nil
}
