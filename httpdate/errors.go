package httpdate

import "errors"

var (
	// ErrInvalidFormat is returned when a string matches none of the supported
	// HTTP date grammars
	ErrInvalidFormat = errors.New("httpdate: not in a valid HTTP date format")

	// ErrInvalidValue is returned when a string matches one of the supported
	// grammars but encodes an impossible calendar date or time of day
	ErrInvalidValue = errors.New("httpdate: not a valid date")
)
