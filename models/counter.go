package models

import (
	"encoding/json"
	"errors"
)

// Errors returned by [Counter.UnmarshalJSON] for payloads that cannot
// describe a counter.
var (
	errMalformedCounter = errors.New("counter JSON must contain exactly one name")
	errNegativeCounter  = errors.New("counter value must not be negative")
)

// Counter is a named, non-negative integer tracked by the counter registry.
//
// On the wire a Counter is represented as a single-key JSON object where the
// key is the counter name and the value is its current value:
//
//	{"bar": 1}
type Counter struct {
	// Name uniquely identifies the counter. It never changes after creation.
	Name string

	// Value is the current value. It starts at 0 and only grows by increments.
	Value int64
}

// MarshalJSON encodes the counter as {"<name>": <value>}.
func (c Counter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int64{c.Name: c.Value})
}

// UnmarshalJSON decodes a {"<name>": <value>} object into the counter.
func (c *Counter) UnmarshalJSON(data []byte) error {
	var body map[string]int64
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	if len(body) != 1 {
		return errMalformedCounter
	}

	for name, value := range body {
		if value < 0 {
			return errNegativeCounter
		}
		c.Name = name
		c.Value = value
	}

	return nil
}
