package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// NewErrorResp returns an error body; code mirrors the HTTP status.
func NewErrorResp(code int, message string) Resp {
	return Resp{
		ErrorCode: code,
		Message:   message,
	}
}
