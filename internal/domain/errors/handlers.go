package errors

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Status  string    `json:"status"`            // always "error"
	Code    string    `json:"code"`              // Business error code, e.g., "TOKEN_NOT_FOUND"
	Message string    `json:"message"`           // User-friendly error message
	Details any       `json:"details,omitempty"` // Detailed error information (optional)
	Meta    *MetaInfo `json:"meta,omitempty"`
}

// StatusResponse is the body of mutations that only report an outcome.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
