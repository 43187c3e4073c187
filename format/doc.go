// Package format renders a bitfield.Group as an IETF-RFC-style bit
// diagram: a 32-column ruler, inter-field separators, and boxed titles
// for non-BASIC, non-OPTION groups. Rows carry no word index. It is
// purely presentational and never mutates the value it renders.
package format
