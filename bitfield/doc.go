// Package bitfield owns the BitFieldGroup wire contract and parsing
// primitives.
//
// Ownership boundary:
//   - the Field/Group data model (a schema is data, not a generated type)
//   - bit-exact big-endian packing and unpacking of a schema
//   - the errors a malformed schema or malformed wire buffer can raise
//
// It does not know about any concrete protocol. Ethernet, IPv4, ICMP, UDP
// and TCP live in package layers and are ordinary consumers of this engine.
package bitfield
