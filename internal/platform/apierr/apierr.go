package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const MsgInternal = "Error interno del servidor."

// Error carries the HTTP status, machine code and client-facing message a
// handler should answer with. Err is the cause; it is logged, never sent.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

// PublicMessage is the text safe to return to a client. Server errors without
// an explicit message fall back to MsgInternal.
func (e *Error) PublicMessage() string {
	switch {
	case e == nil:
		return MsgInternal
	case e.Message != "":
		return e.Message
	case e.Status >= http.StatusInternalServerError || e.Status == 0:
		return MsgInternal
	case e.Err != nil:
		return e.Err.Error()
	default:
		return http.StatusText(e.Status)
	}
}

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func withMessage(status int, code, msg string) *Error {
	return &Error{Status: status, Code: code, Message: msg, Err: errors.New(msg)}
}

func Conflict(code, msg string) *Error {
	return withMessage(http.StatusConflict, code, msg)
}

func NotFound(code, msg string) *Error {
	return withMessage(http.StatusNotFound, code, msg)
}

func BadRequest(code, msg string) *Error {
	return withMessage(http.StatusBadRequest, code, msg)
}

// Internal hides err behind MsgInternal.
func Internal(code string, err error) *Error {
	return InternalWithMessage(code, MsgInternal, err)
}

func InternalWithMessage(code, msg string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: code, Message: msg, Err: err}
}

func Unavailable(code, msg string, err error) *Error {
	return &Error{Status: http.StatusServiceUnavailable, Code: code, Message: msg, Err: err}
}

// StatusOf reports the status carried by err, or 500 when err is not an *Error.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}
