package models

// ApiResponse is the error envelope. Successful responses carry the bare resource.
type ApiResponse struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

func ValidationErrorResponse(verr *ValidationError) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   "validation failed",
		Fields:  verr.Fields,
	}
}
