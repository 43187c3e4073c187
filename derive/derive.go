package derive

// LengthChecksummer is implemented by the UDP, TCP, and ICMP headers. UDP
// sets its length field to header+payload bytes; TCP and ICMP have no
// length field. The checksum covers header + payload with the checksum
// field zeroed during computation, preceded by the pseudo-header for UDP
// and TCP (ICMP uses none).
type LengthChecksummer interface {
	CalcLengthAndChecksum(payload []byte) error
}

// HeaderChecksummer is implemented by the IPv4 header: total length
// covers header+payload, and the header checksum covers only the header
// with its checksum field zeroed.
type HeaderChecksummer interface {
	CalcLengthAndHeaderChecksum(payload []byte) error
}

// CRCer is implemented by the Ethernet footer: a CRC-32 (IEEE 802.3) over
// the frame bytes preceding the footer.
type CRCer interface {
	CalcCRC(frameWithoutFooter []byte) error
}
