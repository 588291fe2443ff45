package dto

// MessageResponse is the standard confirmation shape for write operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard failure shape: an error field plus the
// matching HTTP status on the response itself.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InternalErrorResponse is the fixed shape for unexpected failures. The
// message is generic on purpose; details stay in the logs.
type InternalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewMessageResponse creates a confirmation response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewInternalErrorResponse creates the generic 500 response
func NewInternalErrorResponse() InternalErrorResponse {
	return InternalErrorResponse{
		Error:   "Internal Server Error",
		Message: "An unexpected error occurred",
	}
}
