// Package derive is the uniform capability surface header types expose so
// a higher layer can compute their length, checksum, and CRC fields from
// an assembled payload.
//
// A header type need not implement any of the three interfaces. The
// aggregator in package datagram does not skip such a header: it returns
// datagram.ErrNoCalcMethod when a slot it derives fields for (L4, L3, or
// the L2 footer) holds a header lacking the capability it dispatches to.
package derive
