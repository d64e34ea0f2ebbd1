package httperror

import (
	"errors"
	"net/http"

	"github.com/medai-pro/medai-server-go/internal/gemini"
)

// ErrorCode classifies API failures.
type ErrorCode string

const (
	// ErrorCodeInvalidRequest marks client-caused failures.
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrorCodeServiceUnavailable marks requests served without a model handle.
	ErrorCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrorCodeUpstream marks failed completion calls.
	ErrorCodeUpstream ErrorCode = "UPSTREAM_ERROR"
	// ErrorCodeEmptyUpstream marks completion calls that returned no text.
	ErrorCodeEmptyUpstream ErrorCode = "EMPTY_UPSTREAM_RESPONSE"
	// ErrorCodeServer marks unclassified internal faults.
	ErrorCodeServer ErrorCode = "SERVER_ERROR"
	// ErrorCodeNotFound marks unmatched routes.
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrorCodeHTTPRateLimit marks throttled requests.
	ErrorCodeHTTPRateLimit ErrorCode = "HTTP_RATE_LIMIT"
)

// excerptLimit bounds how much raw error text reaches the client.
const excerptLimit = 100

// ErrorResponse is the client-visible error envelope. The success flag is
// emitted only for consultation-endpoint failures, matching the contract.
type ErrorResponse struct {
	Error   string `json:"error"`
	Success *bool  `json:"success,omitempty"`
}

// Error is the internal standard error type.
type Error struct {
	Code            ErrorCode
	Status          int
	Message         string
	WithSuccessFlag bool
}

func (e *Error) Error() string {
	return e.Message
}

// Response converts an error into an HTTP status and envelope.
func Response(err error) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewServerError(errors.New("unknown error"))
	}

	payload := ErrorResponse{Error: apiErr.Message}
	if apiErr.WithSuccessFlag {
		success := false
		payload.Success = &success
	}
	return apiErr.Status, payload
}

// FromError normalizes an arbitrary error into *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, gemini.ErrNotInitialized) {
		return NewModelUnavailable()
	}

	if errors.Is(err, gemini.ErrEmptyResponse) {
		return NewEmptyUpstreamResponse()
	}

	return NewServerError(err)
}

// NewInvalidRequest builds a 400 client error.
func NewInvalidRequest(message string) *Error {
	return &Error{
		Code:    ErrorCodeInvalidRequest,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewModelUnavailable builds the no-model-handle error.
func NewModelUnavailable() *Error {
	return &Error{
		Code:            ErrorCodeServiceUnavailable,
		Status:          http.StatusInternalServerError,
		Message:         "AI model not initialized. Check your API key and try restarting.",
		WithSuccessFlag: true,
	}
}

// NewUpstreamError builds the failed-completion error with truncated detail.
func NewUpstreamError(err error) *Error {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return &Error{
		Code:            ErrorCodeUpstream,
		Status:          http.StatusInternalServerError,
		Message:         "API Error: " + Truncate(detail, excerptLimit),
		WithSuccessFlag: true,
	}
}

// NewEmptyUpstreamResponse builds the empty-completion error.
func NewEmptyUpstreamResponse() *Error {
	return &Error{
		Code:            ErrorCodeEmptyUpstream,
		Status:          http.StatusInternalServerError,
		Message:         "AI model returned empty response. Try again.",
		WithSuccessFlag: true,
	}
}

// NewServerError builds the catch-all error with truncated detail.
func NewServerError(err error) *Error {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return &Error{
		Code:            ErrorCodeServer,
		Status:          http.StatusInternalServerError,
		Message:         "Server error: " + Truncate(detail, excerptLimit),
		WithSuccessFlag: true,
	}
}

// NewNotFound builds the unmatched-route error.
func NewNotFound() *Error {
	return &Error{
		Code:    ErrorCodeNotFound,
		Status:  http.StatusNotFound,
		Message: "Endpoint not found",
	}
}

// NewRateLimitExceeded builds the throttling error.
func NewRateLimitExceeded() *Error {
	return &Error{
		Code:    ErrorCodeHTTPRateLimit,
		Status:  http.StatusTooManyRequests,
		Message: "Rate limit exceeded",
	}
}

// Truncate limits a string to n characters, counting runes.
func Truncate(value string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= n {
		return value
	}
	return string(runes[:n])
}
