// Package addr owns the IPv4, MAC, and Port address leaves: fixed-width
// values that parse from and format to their textual forms (dotted-quad
// IPv4, colon/hyphen-separated MAC, decimal port), and that implement the
// bitfield.Group contract so they can sit directly inside a header's
// schema.
package addr
