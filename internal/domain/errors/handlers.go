package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "DUPLICATE_USERNAME"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope produced by the HTTP error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`           // HTTP status code
	Message string     `json:"message"`        // User-friendly message
	Data    any        `json:"data,omitempty"` // Echoed form context on validation errors
	Error   *ErrorInfo `json:"error,omitempty"`
}
