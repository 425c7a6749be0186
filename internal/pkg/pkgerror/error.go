package pkgerror

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeNotFound            Code = "NOT_FOUND"
	CodeUpstreamUnavailable Code = "UPSTREAM_UNAVAILABLE"
	CodeInternal            Code = "INTERNAL"
)

// Business is an error carrying a machine-readable code. Handlers return it
// for expected failure modes; the router maps the code to an HTTP status.
type Business struct {
	message string
	code    Code
}

func NewBusiness(message string, code Code) *Business {
	return &Business{message: message, code: code}
}

func (e *Business) Error() string {
	return e.message
}

func (e *Business) Code() Code {
	return e.code
}

// CodeOf extracts the business code from an error chain. The second return
// is false when the error is not a business error.
func CodeOf(err error) (Code, bool) {
	var business *Business
	if errors.As(err, &business) {
		return business.code, true
	}
	return CodeInternal, false
}

func HTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
