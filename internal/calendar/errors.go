package calendar

import "errors"

var (
	ErrInvalidKey           = errors.New("invalid key format")
	ErrUnsupportedYear      = errors.New("unsupported year")
	ErrInvalidRuleParameter = errors.New("invalid rule parameter")
)
