package domain

import "errors"

var (
	ErrMalformedPrompt = errors.New("malformed prompt")
	ErrStorage         = errors.New("prompt store unavailable")
)
