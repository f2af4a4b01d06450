package model

import "time"

// EmployeeRequest is the inbound payload for create and partial update.
// A nil field means the client did not send it (or sent null).
type EmployeeRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// EmployeeResponse is a flat snapshot of a stored employee.
type EmployeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ErrorCode is the machine-readable code carried by ErrorResponse.
type ErrorCode string

const (
	ErrorCodeResourceNotFound        ErrorCode = "RESOURCE_NOT_FOUND"
	ErrorCodeMissingRequiredArgument ErrorCode = "MISSING_REQUIRED_ARGUMENT"
	ErrorCodeMalformedRequestBody    ErrorCode = "MALFORMED_REQUEST_BODY"
	ErrorCodeMethodNotAllowed        ErrorCode = "METHOD_NOT_ALLOWED"
	ErrorCodeServiceUnavailable      ErrorCode = "SERVICE_UNAVAILABLE"
	ErrorCodeInternalError           ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"errorCode"`
	RequestID string    `json:"requestId,omitempty"`
}
