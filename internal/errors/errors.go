package errors

import (
	"fmt"
)

type Fields map[string]interface{}

// APIError is a wire-ready error: a stable numeric code, a human-readable
// message, the HTTP status it maps to, and optional structured detail.
type APIError interface {
	error
	Code() int
	Message() string
	ExpectedHTTPStatus() int
	SetDetail(str string, a ...any) APIError
	SetFields(d Fields) APIError
	GetFields() Fields
}

type apiError struct {
	message            string
	code               int
	expectedHTTPStatus int
	fields             Fields
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s [%d]", e.message, e.code)
}

func (e *apiError) Message() string {
	return e.message
}

func (e *apiError) Code() int {
	return e.code
}

func (e *apiError) ExpectedHTTPStatus() int {
	return e.expectedHTTPStatus
}

// SetDetail appends a formatted detail line to the message.
func (e *apiError) SetDetail(str string, a ...any) APIError {
	e.message = fmt.Sprintf("%s: %s", e.message, fmt.Sprintf(str, a...))

	return e
}

func (e *apiError) SetFields(d Fields) APIError {
	e.fields = d

	return e
}

func (e *apiError) GetFields() Fields {
	return e.fields
}

func define(message string, code int, httpStatus int) func() APIError {
	return func() APIError {
		return &apiError{
			message:            message,
			code:               code,
			expectedHTTPStatus: httpStatus,
			fields:             Fields{},
		}
	}
}

// From returns err as an APIError, wrapping unknown errors as an internal
// server error.
func From(err error) APIError {
	switch e := err.(type) {
	case APIError:
		return e
	default:
		return ErrInternalServerError().SetDetail(err.Error())
	}
}

// Compare reports whether err carries the same code as the error returned by
// ctor.
func Compare(err error, ctor func() APIError) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(APIError); ok {
		return e.Code() == ctor().Code()
	}

	return false
}

var (
	// Generic client errors
	ErrInvalidRequest = define("Invalid Request", 70400, 400)
	ErrUnknownRoute   = define("Unknown Route", 70404, 404)
	ErrRateLimited    = define("Too Many Requests", 70429, 429)

	// Presence errors
	ErrNotTracked          = define("User Not Tracked", 70441, 404)
	ErrUpstreamUnavailable = define("Presence Upstream Unavailable", 70502, 502)
	ErrFetchFailed         = define("Presence Fetch Failed", 70520, 502)

	// Counter errors
	ErrCounterFault = define("View Counter Fault", 70510, 500)

	// Server errors
	ErrInternalServerError = define("Internal Server Error", 70500, 500)
)
