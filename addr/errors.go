package addr

import "errors"

var (
	// ErrInvalidIPv4String is returned when an IPv4 string does not
	// match A.B.C.D, optionally followed by /cidr and/or :port.
	ErrInvalidIPv4String = errors.New("addr: invalid IPv4 string")
	// ErrInvalidMACString is returned when a MAC string does not match
	// any of the accepted six-byte forms: colon-separated, hyphen-separated,
	// space-separated, or bare hex.
	ErrInvalidMACString = errors.New("addr: invalid MAC string")
	// ErrCIDRTooLarge is returned when a /cidr suffix exceeds 31.
	ErrCIDRTooLarge = errors.New("addr: CIDR too large")
	// ErrInvalidPortString is returned when a port or port-range string
	// does not parse.
	ErrInvalidPortString = errors.New("addr: invalid port string")
	// ErrInvalidRangeString is returned by GetRange on a malformed
	// start[-end] expression.
	ErrInvalidRangeString = errors.New("addr: invalid range string")
)
