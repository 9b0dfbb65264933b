// Package client は決済APIのリソースごとのクライアントを提供する。
//
// 各操作はパス・ヘッダー・クエリ・ボディを組み立て、注入された Transport を一度だけ呼び出す。
// ボディのエンコードとレスポンスのデコードは marshal パッケージが行う。
// 呼び出しは context で制御され、複数のゴルーチンから同時に使える。
package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"online-payments/pkg/marshal"
)

// Client 決済APIクライアント
type Client struct {
	Refunds       *RefundService
	Verifications *VerificationService

	transport Transport
	logger    Logger
	metrics   Metrics
	tracer    trace.Tracer
}

// New 新しいClientを作成
func New(transport Transport, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		logger:    nopLogger{},
		metrics:   nopMetrics{},
		tracer:    otel.Tracer("online-payments/client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Refunds = &RefundService{client: c}
	c.Verifications = &VerificationService{client: c}
	return c
}

// operation 一つのAPI操作の定義
type operation struct {
	name    string
	method  string
	route   string
	path    string
	headers map[string]string
	query   map[string]string
	body    any
}

func (c *Client) do(ctx context.Context, op operation, out any, opts ...RequestOption) error {
	ctx, span := c.tracer.Start(ctx, op.name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("http.method", op.method),
		attribute.String("http.route", op.route),
	)

	req := &Request{
		Operation: op.name,
		Method:    op.method,
		Path:      op.path,
		Headers:   make(map[string]string, len(op.headers)),
		Query:     make(map[string]string, len(op.query)),
		AuthNames: []string{AuthScheme},
	}
	for _, opt := range opts {
		opt(req)
	}
	// 操作が組み立てたヘッダーとクエリはオプションより優先する
	overwriteHeaders(req.Headers, op.headers)
	for key, value := range op.query {
		req.Query[key] = value
	}

	if op.body != nil {
		body, err := marshal.Encode(op.body)
		if err != nil {
			c.fail(ctx, span, op, "validation", err)
			return err
		}
		req.Body = body
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	c.metrics.RecordRequest(ctx, op.method, op.route)
	start := time.Now()
	resp, err := c.transport.Request(ctx, req)
	c.metrics.RecordResponseTime(ctx, op.method, op.route, time.Since(start).Seconds())
	if err != nil {
		c.fail(ctx, span, op, "transport", err)
		return err
	}
	if req.responseInto != nil {
		*req.responseInto = resp
	}
	if !IsSuccess(resp.StatusCode) {
		err := &TransportError{StatusCode: resp.StatusCode, Body: resp.Body}
		c.fail(ctx, span, op, "transport", err)
		return err
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if err := marshal.Unmarshal(resp.Body, out); err != nil {
		c.fail(ctx, span, op, "schema", err)
		return err
	}

	c.logger.Info(ctx, "API request completed", map[string]interface{}{
		"operation":   op.name,
		"method":      op.method,
		"path":        op.path,
		"status_code": resp.StatusCode,
	})
	return nil
}

// validationError パラメータの組み立て失敗を記録して返す
func (c *Client) validationError(ctx context.Context, op operation, err error) error {
	ctx, span := c.tracer.Start(ctx, op.name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	c.fail(ctx, span, op, "validation", err)
	return err
}

func (c *Client) fail(ctx context.Context, span trace.Span, op operation, kind string, err error) {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())

	fields := map[string]interface{}{
		"operation": op.name,
		"method":    op.method,
		"path":      op.path,
		"kind":      kind,
	}
	var terr *TransportError
	if errors.As(err, &terr) && terr.StatusCode != 0 {
		fields["status_code"] = terr.StatusCode
	}

	c.metrics.RecordError(ctx, kind)
	if kind == "validation" || kind == "schema" {
		c.metrics.RecordMarshalFailure(ctx, kind)
	}
	c.logger.Error(ctx, "API request failed", err, fields)
}

// overwriteHeaders 大文字小文字を区別せずに同名のヘッダーを置き換える
func overwriteHeaders(dst, src map[string]string) {
	for key, value := range src {
		for existing := range dst {
			if strings.EqualFold(existing, key) {
				delete(dst, existing)
			}
		}
		dst[key] = value
	}
}
