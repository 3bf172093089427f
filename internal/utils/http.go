package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// internalErrorBody is written when the response value itself cannot be
// encoded, so clients still receive the usual JSON error shape.
var internalErrorBody = []byte(`{"error":"Internal server error"}`)

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// The body is written without a trailing newline, so a counter is sent as
// exactly {"bar":1}. If marshaling fails the response becomes
// 500 {"error":"Internal server error"} and the marshal error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.Counter{Name: "bar", Value: 1}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "Counter not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
