// Package layers declares the concrete wire schemas in practical use:
// the Ethernet header and footer, IPv4, ICMP, UDP, and TCP. Each is a
// bitfield.Group with exact RFC field ordering and width, and each
// implements whichever derive capability its protocol defines.
package layers
