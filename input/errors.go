package input

import "errors"

var (
	ErrUnknownIntent = errors.New("unknown intent")
	ErrUnknownKey    = errors.New("unknown key")
)
