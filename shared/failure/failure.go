// Package failure carries client facing errors. Anything else reaching the response writer
// is reported as a 500 with a generic message.
package failure

import (
	"errors"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError          = New(http.StatusForbidden, "You don't have the required permissions")
	ResourceRestrictedError = New(http.StatusForbidden, "You don't have permission to access this resource")
)

func (e *Failure) Error() string {
	return e.Message
}

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

// BadRequest wraps a decode or parse error. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// Forbidden is for callers acting on a resource they do not own or in a role that may not act.
func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

// Conflict reports a state transition that the current status does not allow.
func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

func TooManyRequests(msg string) error {
	return New(http.StatusTooManyRequests, msg)
}

// Upstream keeps the payment gateway's detail verbatim so clients can show it.
func Upstream(detail string) error {
	return New(http.StatusBadGateway, detail)
}

func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}

func GetMessage(err error) (string, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message, true
	}

	return "", false
}

func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
