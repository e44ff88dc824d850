package ir

import "errors"

var (
	ErrUnsupported = errors.New("unsupported value")
	ErrMalformed   = errors.New("malformed node")
)
