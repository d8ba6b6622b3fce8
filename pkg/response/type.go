package response

// Resp is the standard JSON error response body. Success responses return the
// resource body directly so the public contract stays free of envelopes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Errors    any    `json:"errors,omitempty"`
}
