package poker

import "errors"

var (
	// ErrMalformedCard is returned when a card token has an unknown rank or
	// suit symbol, or is not exactly one rank followed by one suit.
	ErrMalformedCard = errors.New("malformed card")

	// ErrInvalidHandSize is returned when a hand is built from anything other
	// than exactly five cards.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrEmptyCollection is returned when selecting from no hands at all.
	ErrEmptyCollection = errors.New("empty hand collection")
)
