package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCounterName     = errors.New("counter name is empty")
	ErrNegativeCounterValue = errors.New("counter value is negative")
)
