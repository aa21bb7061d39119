package dto

// ErrorResponse represents an unexpected-failure response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ValidationErrorResponse is the body of every 400 response: one
// "field message" string per failed constraint.
type ValidationErrorResponse []string
