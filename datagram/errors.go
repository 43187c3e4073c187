package datagram

import "errors"

var (
	// ErrInvalidHeader is returned by Init when a header tag names no
	// known variant.
	ErrInvalidHeader = errors.New("datagram: invalid header tag")
	// ErrInvalidFooter is returned by Init when the footer tag names no
	// known variant.
	ErrInvalidFooter = errors.New("datagram: invalid footer tag")
	// ErrNoCalcMethod is returned by CalcFromPayload when a header is
	// dispatched a derived-field role its type implements none of.
	ErrNoCalcMethod = errors.New("datagram: header exposes no matching derive capability")
)
