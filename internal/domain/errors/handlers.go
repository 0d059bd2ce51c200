package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "LISTING_NOT_FOUND"
	Message string `json:"message"`           // User-facing error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ToErrorInfo converts an AppError into its wire shape.
func ToErrorInfo(appErr AppError) *ErrorInfo {
	info := &ErrorInfo{
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
	}
	if details := appErr.Details(); details != "" {
		info.Details = details
	}

	return info
}
