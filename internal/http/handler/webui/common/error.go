package common

import (
	"fmt"
	"net/http"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

// Error attaches a status code and a message safe to show to the
// user to an internal error
type Error struct {
	err         error
	userMessage string
	statusCode  int
}

func (e *Error) StatusCode() int     { return e.statusCode }
func (e *Error) UserMessage() string { return e.userMessage }
func (e *Error) Unwrap() error       { return e.err }

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s: %v", e.statusCode, http.StatusText(e.statusCode), e.err)
}

func NewError(err error, userMessage string, statusCode int) *Error {
	return &Error{err: err, userMessage: userMessage, statusCode: statusCode}
}

func NewBadRequest(err error, userMessage string) *Error {
	return NewError(err, userMessage, http.StatusBadRequest)
}

func NewNotFound(err error, userMessage string) *Error {
	return NewError(err, userMessage, http.StatusNotFound)
}

var (
	_ UserFacingError = &Error{}
	_ HTTPError       = &Error{}
)
