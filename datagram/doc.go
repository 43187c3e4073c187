// Package datagram aggregates Layer 2 through 4 headers with a payload
// into a single nestable tagged record and orchestrates the
// cross-layer derived-field computation the headers expose through
// package derive.
package datagram
