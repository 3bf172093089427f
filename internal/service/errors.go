package service

import "errors"

var (
	ErrInvalidCounterName = errors.New("invalid counter name")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
