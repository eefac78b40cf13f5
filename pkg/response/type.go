package response

const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "something went wrong"

	CodeOK                  = 0
	CodeBadRequest          = 1
	CodeUnauthorized        = 401
	CodeTooManyRequests     = 429
	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
