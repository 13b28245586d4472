package lambda

// Request represents a normalized HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	RequestID   string            `json:"request_id"`
}

// Response is the {statusCode, body} envelope returned by a handler.
// Body holds a string for error outcomes and structured data otherwise.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       any               `json:"body"`
}

// QueryParam returns the named query parameter and whether it was supplied.
func (r *Request) QueryParam(name string) (string, bool) {
	if r.QueryParams == nil {
		return "", false
	}
	value, ok := r.QueryParams[name]
	return value, ok
}

// NewTextResponse creates a response carrying a plain message body
func NewTextResponse(statusCode int, message string) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       message,
	}
}

// NewJSONResponse creates a response carrying a structured body
func NewJSONResponse(statusCode int, body any) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}
