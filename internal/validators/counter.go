package validators

import (
	"context"

	"github.com/MKhiriev/go-counters/models"
)

const (
	FieldName  = "name"
	FieldValue = "value"
)

type CounterValidator struct {
}

// NewCounterValidator validates counter names (passed as plain strings) and
// whole [models.Counter] values.
func NewCounterValidator() Validator {
	return &CounterValidator{}
}

func (v *CounterValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateCounter(ctx, models.Counter{Name: value}, FieldName)

	case models.Counter:
		return v.validateCounter(ctx, value, fields...)
	case *models.Counter:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCounter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// Any non-empty string is a valid name, including spaces, slashes and
// non-ASCII text.
func (v *CounterValidator) validateCounter(_ context.Context, counter models.Counter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if counter.Name == "" {
				return ErrEmptyCounterName
			}
		case FieldValue:
			if counter.Value < 0 {
				return ErrNegativeCounterValue
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
