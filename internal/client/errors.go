package client

import "errors"

var (
	ErrNoCommand           = errors.New("no command given")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrCounterNameRequired = errors.New("counter name required")
)
