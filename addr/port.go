package addr

import (
	"strconv"
	"strings"

	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/internal/diagnostics"
)

// Port is a 16-bit TCP/UDP port number.
type Port uint16

func (p Port) String() string {
	return strconv.FormatUint(uint64(p), 10)
}

// Schema implements bitfield.Group: the wire image is the 16-bit
// big-endian integer representation.
func (p *Port) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewUintField("port", 16,
			func() uint64 { return uint64(*p) },
			func(x uint64) { *p = Port(x) },
		),
	}
}

func (p *Port) GroupKind() bitfield.GroupKind { return bitfield.Basic }
func (p *Port) Layer() int                    { return 4 }
func (p *Port) DisplayName() string           { return "Port" }

// ParsePort parses a single decimal port number.
func ParsePort(s string) (Port, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		diagnostics.Warnf("addr: invalid port string %q", s)
		return 0, ErrInvalidPortString
	}
	return Port(n), nil
}

// PortSliceFromStr accepts a dash range "L-H" (half-open, [L, H)) or a
// comma-separated list of ports and individual ranges.
func PortSliceFromStr(s string) ([]Port, error) {
	raw := s
	parts := strings.Split(strings.TrimSpace(s), ",")
	var out []Port
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if strings.Contains(p, "-") {
			lo, hi, err := GetRange[Port](p)
			if err != nil {
				diagnostics.Warnf("addr: invalid port range string %q", raw)
				return nil, ErrInvalidPortString
			}
			for v := lo; v < hi; v++ {
				out = append(out, v)
			}
			continue
		}
		v, err := ParsePort(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
