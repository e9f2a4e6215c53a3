package vocabsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/vocab/pkg/httpx"
)

const (
	ErrorCodeValidation         = "validation_error"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeEmailTaken         = "email_taken"
	ErrorCodeConflict           = "conflict"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
	ErrorCodeSpeechUnavailable  = "speech_unavailable"
)

// APIError is the error body returned by every failing endpoint. The server
// writes it with WriteError; the client decodes it from non-success responses.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine readable error code, e.g. "forbidden"
	Code string `json:"error"`

	// Message is a human readable description
	Message string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (%d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes e as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Message)
}

// WithMessage returns a copy of e carrying msg.
func (e *APIError) WithMessage(msg string) *APIError {
	c := *e
	c.Message = msg
	return &c
}

var (
	ErrValidation = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    "the request is malformed or missing required fields",
	}

	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "authentication required",
	}

	// ErrInvalidCredentials does not say whether the email or the password was wrong.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid email or password",
	}

	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "token is invalid or expired",
	}

	ErrEmailTaken = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeEmailTaken,
		Message:    "email is already registered",
	}

	ErrConflict = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeConflict,
		Message:    "resource already exists",
	}

	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}

	ErrSpeechUnavailable = &APIError{
		StatusCode: http.StatusBadGateway,
		Code:       ErrorCodeSpeechUnavailable,
		Message:    "speech upstream unavailable",
	}
)

// NewAPIError creates an APIError with the given status, code and message.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// parseErrorResponse turns a non-success response into an *APIError. Bodies
// that are not JSON still yield an error carrying the status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = http.StatusText(resp.StatusCode)
		apiErr.Message = string(body)
	}
	return apiErr
}
