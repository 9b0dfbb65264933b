package gateway

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest リクエストが受け付けられないエラー
var ErrInvalidRequest = errors.New("invalid request")

// 応答コード
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeMissingField   = "MISSING_FIELD"
	CodeInvalidAmount  = "INVALID_AMOUNT"
	CodeNotFound       = "NOT_FOUND"
)

// RequestError クライアントに400で返すエラー
type RequestError struct {
	Code    string
	Message string
	Err     error
}

// Error エラーメッセージを返す
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap ErrInvalidRequest と原因のエラーを返す
func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidRequest}
	}
	return []error{ErrInvalidRequest, e.Err}
}

func invalid(code, format string, args ...any) *RequestError {
	return &RequestError{Code: code, Message: fmt.Sprintf(format, args...)}
}
