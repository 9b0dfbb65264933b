package client

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Logger クライアントが使う構造化ロガー
type Logger interface {
	Info(ctx context.Context, message string, fields map[string]interface{})
	Error(ctx context.Context, message string, err error, fields map[string]interface{})
}

// Metrics クライアントが記録するメトリクス
type Metrics interface {
	RecordRequest(ctx context.Context, method, path string)
	RecordResponseTime(ctx context.Context, method, path string, duration float64)
	RecordError(ctx context.Context, errorType string)
	RecordMarshalFailure(ctx context.Context, kind string)
}

// Option クライアントの設定
type Option func(*Client)

// WithLogger ロガーを設定
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics メトリクスを設定
func WithMetrics(metrics Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// WithTracer トレーサーを設定
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// RequestOption 呼び出しごとの設定
type RequestOption func(*Request)

// WithHeader 追加のヘッダーを設定
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		r.Headers[key] = value
	}
}

// WithQuery 追加のクエリパラメータを設定
func WithQuery(key, value string) RequestOption {
	return func(r *Request) {
		r.Query[key] = value
	}
}

// WithResponseInto 受信したレスポンスを dst に格納する
//
// 非2xxのレスポンスでも格納する。ネットワーク障害の場合は変更しない。
func WithResponseInto(dst **Response) RequestOption {
	return func(r *Request) {
		r.responseInto = dst
	}
}

// WithTimeout この呼び出しのタイムアウトを設定
func WithTimeout(d time.Duration) RequestOption {
	return func(r *Request) {
		r.Timeout = d
	}
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})         {}
func (nopLogger) Error(context.Context, string, error, map[string]interface{}) {}

type nopMetrics struct{}

func (nopMetrics) RecordRequest(context.Context, string, string)               {}
func (nopMetrics) RecordResponseTime(context.Context, string, string, float64) {}
func (nopMetrics) RecordError(context.Context, string)                         {}
func (nopMetrics) RecordMarshalFailure(context.Context, string)                {}
