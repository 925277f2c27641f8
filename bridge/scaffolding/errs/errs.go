// Package errs provides types and support related to web error functionality.
package errs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode represents an error code in the system.
type ErrCode struct {
	value int
}

// Value returns the integer value of the error code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the error code.
func (ec ErrCode) String() string {
	return codeNames[ec]
}

// MarshalText implements the marshal interface for JSON conversions.
func (ec ErrCode) MarshalText() ([]byte, error) {
	return []byte(ec.String()), nil
}

// Set of error codes.
var (
	OK              = ErrCode{value: 0}
	Internal        = ErrCode{value: 1}
	NotFound        = ErrCode{value: 2}
	InvalidArgument = ErrCode{value: 3}
	AlreadyExists   = ErrCode{value: 4}
	Unauthenticated = ErrCode{value: 5}
	InternalOnlyLog = ErrCode{value: 6}
)

var codeNames = map[ErrCode]string{
	OK:              "ok",
	Internal:        "internal",
	NotFound:        "not_found",
	InvalidArgument: "invalid_argument",
	AlreadyExists:   "already_exists",
	Unauthenticated: "unauthenticated",
	InternalOnlyLog: "internal",
}

var httpStatus = map[ErrCode]int{
	OK:              http.StatusOK,
	Internal:        http.StatusInternalServerError,
	NotFound:        http.StatusNotFound,
	InvalidArgument: http.StatusBadRequest,
	AlreadyExists:   http.StatusConflict,
	Unauthenticated: http.StatusUnauthorized,
	InternalOnlyLog: http.StatusInternalServerError,
}

// Error represents an error in the system.
type Error struct {
	Code     ErrCode `json:"code"`
	Message  string  `json:"message"`
	FuncName string  `json:"-"`
	FileName string  `json:"-"`
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on a error format string.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements the web Encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

// HTTPStatus implements the web HTTPStatus interface so the code is used
// as the response status.
func (e *Error) HTTPStatus() int {
	status, ok := httpStatus[e.Code]
	if !ok {
		return http.StatusInternalServerError
	}
	return status
}
