package addr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidnet/bitwire/bitfield"
	"github.com/corvidnet/bitwire/internal/diagnostics"
)

// MAC is a 48-bit Ethernet hardware address.
type MAC [6]byte

func (m MAC) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", m[0], m[1], m[2], m[3], m[4], m[5])
}

// Schema implements bitfield.Group: the wire image is the 48-bit
// big-endian integer representation of the six octets.
func (m *MAC) Schema() []bitfield.Field {
	return []bitfield.Field{
		bitfield.NewUintField("mac", 48,
			func() uint64 {
				var v uint64
				for _, b := range *m {
					v = v<<8 | uint64(b)
				}
				return v
			},
			func(x uint64) {
				for i := 5; i >= 0; i-- {
					(*m)[i] = byte(x)
					x >>= 8
				}
			},
		),
	}
}

func (m *MAC) GroupKind() bitfield.GroupKind { return bitfield.Basic }
func (m *MAC) Layer() int                    { return 2 }
func (m *MAC) DisplayName() string           { return "MAC" }

// ParseMAC accepts colon-, hyphen-, or space-separated hex octets, or
// twelve bare hex digits, case-insensitively.
func ParseMAC(s string) (MAC, error) {
	raw := s
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '-', ' ':
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(s))
	if len(cleaned) != 12 {
		diagnostics.Warnf("addr: invalid MAC string %q", raw)
		return MAC{}, ErrInvalidMACString
	}
	var mac MAC
	for i := 0; i < 6; i++ {
		b, err := strconv.ParseUint(cleaned[i*2:i*2+2], 16, 8)
		if err != nil {
			diagnostics.Warnf("addr: invalid MAC string %q", raw)
			return MAC{}, ErrInvalidMACString
		}
		mac[i] = byte(b)
	}
	return mac, nil
}
