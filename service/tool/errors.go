package toolsvc

import "errors"

// error codes mapped to HTTP statuses by controllers

type ErrCode string

const (
	ErrValidation ErrCode = "VALIDATION"
	ErrNotFound   ErrCode = "NOT_FOUND"
	ErrSchema     ErrCode = "SCHEMA_MISMATCH"
	ErrStore      ErrCode = "STORE_UNAVAILABLE"
)

type codedError struct {
	code  ErrCode
	msg   string
	cause error
}

func (e codedError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}
func (e codedError) Code() ErrCode { return e.code }
func (e codedError) Unwrap() error { return e.cause }

func makeErr(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }
func wrapErr(c ErrCode, msg string, cause error) error {
	return codedError{code: c, msg: msg, cause: cause}
}

// Code extracts the error code, or "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
