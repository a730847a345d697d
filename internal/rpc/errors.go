package rpc

import (
	"errors"
	"fmt"
)

// Code is a stable wire-level domain error code.
type Code int

const (
	CodeWrongUserPassword Code = 1
	CodeMethodNotFound    Code = 2
	CodeBadParams         Code = 3
	CodeNotFound          Code = 4
	CodeInternal          Code = 5
)

// Error is the structured domain error carried in the response envelope.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func NewError(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func WrongUserPassword() *Error {
	return NewError(CodeWrongUserPassword, "wrong user/password")
}

func MethodNotFound(method string) *Error {
	return NewError(CodeMethodNotFound, "method not found: "+method)
}

func BadParams(op string) *Error {
	return NewError(CodeBadParams, "bad parameters for "+op)
}

func NotFound(what string) *Error {
	return NewError(CodeNotFound, what+" not found")
}

// AsError maps any handler failure into a wire error. Domain errors pass
// through; everything else (store failures included) becomes a generic
// internal error with no retry.
func AsError(err error) *Error {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return NewError(CodeInternal, "internal error")
}
