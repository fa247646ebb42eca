package models

// APIResponse is the uniform envelope returned by every endpoint,
// error paths included.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}, message string) APIResponse {
	return APIResponse{Success: true, Data: data, Message: message}
}

// Fail wraps an error message in a failure envelope.
func Fail(errMsg string) APIResponse {
	return APIResponse{Success: false, Error: errMsg}
}
