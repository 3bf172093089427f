package models

// ErrorResponse is the JSON body returned together with a non-2xx status.
//
//	{"error": "Counter not found"}
type ErrorResponse struct {
	// Error is a short human-readable description of the failure.
	Error string `json:"error"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
