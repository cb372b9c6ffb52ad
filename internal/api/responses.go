// Package api defines the shared JSON envelope types used by all HTTP handlers.
// Every error response uses the same {"error": ...} shape regardless of endpoint.
package api

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
