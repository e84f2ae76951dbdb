package client

import "errors"

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownStatus   = errors.New("unknown game status")
)
