package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"online-payments/pkg/marshal"
)

// AuthScheme すべての操作が要求する認証スキーム名
const AuthScheme = "auth"

// ErrTransport 非2xxレスポンスまたはネットワーク障害
var ErrTransport = errors.New("transport error")

// Transport リクエストを送信するコラボレーター
// 接続プール、タイムアウト、リトライ、認証情報の付与は実装側の責務。
type Transport interface {
	Request(ctx context.Context, req *Request) (*Response, error)
}

// Request 一回のAPI呼び出し
type Request struct {
	Operation string
	Method    string
	Path      string
	Headers   map[string]string
	Query     map[string]string
	Body      *marshal.Object
	AuthNames []string
	Timeout   time.Duration

	responseInto **Response
}

// Response トランスポートが受信したレスポンス
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// TransportError 非2xxレスポンスまたはネットワーク障害
// ネットワーク障害の場合 StatusCode は0。
type TransportError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error エラーメッセージを返す
func (e *TransportError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("transport error: %v", e.Err)
	case e.Err != nil:
		return fmt.Sprintf("transport error: status %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("transport error: status %d: %s", e.StatusCode, truncate(e.Body, 256))
	}
}

// Unwrap ErrTransport と原因のエラーを返す
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// IsSuccess 2xxのステータスかどうかを返す
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
