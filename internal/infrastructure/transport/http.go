// Package transport は client.Transport の実装を提供する。
//
// HTTPTransport は resty でREST APIを呼び出し、GRPCTransport は同じリクエストを
// structpb のエンベロープに包んでサンドボックスのgRPCゲートウェイへ送る。
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"online-payments/internal/infrastructure/observability/otel"
	"online-payments/pkg/client"
)

// HTTPConfig HTTP転送の設定
type HTTPConfig struct {
	BaseURL          string
	Timeout          time.Duration
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	UserAgent        string
}

// HTTPTransport resty によるHTTP転送
type HTTPTransport struct {
	client      *resty.Client
	credentials Credentials
	logger      *otel.Logger
}

// NewHTTPTransport 新しいHTTPTransportを作成
func NewHTTPTransport(cfg HTTPConfig, credentials Credentials, logger *otel.Logger) *HTTPTransport {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.Timeout,
	}

	t := &HTTPTransport{
		credentials: credentials,
		logger:      logger.With("transport.http"),
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "online-payments-go"
	}

	t.client = resty.NewWithClient(httpClient).
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWaitTime).
		SetRetryMaxWaitTime(cfg.RetryMaxWaitTime).
		AddRetryCondition(retryable).
		AddRetryHook(func(resp *resty.Response, err error) {
			if resp == nil || resp.Request == nil {
				return
			}
			fields := map[string]interface{}{
				"attempt": resp.Request.Attempt,
				"path":    resp.Request.URL,
			}
			if err == nil {
				fields["status_code"] = resp.StatusCode()
			}
			t.logger.Warn(resp.Request.Context(), "Retrying API request", fields)
		})
	return t
}

// retryable 接続エラー、429、5xxのみ再試行する
func retryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	status := resp.StatusCode()
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// Request リクエストを送信する
func (t *HTTPTransport) Request(ctx context.Context, req *client.Request) (*client.Response, error) {
	authorization, err := t.credentials.Authorization(ctx, req.AuthNames)
	if err != nil {
		return nil, &client.TransportError{Err: err}
	}

	r := t.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers).
		SetQueryParams(req.Query)
	if authorization != "" {
		r.SetHeader("Authorization", authorization)
	}
	if req.Body != nil {
		body, err := req.Body.MarshalJSON()
		if err != nil {
			return nil, &client.TransportError{Err: err}
		}
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		t.logger.Error(ctx, "API request could not be sent", err, map[string]interface{}{
			"operation": req.Operation,
			"method":    req.Method,
			"path":      req.Path,
		})
		return nil, &client.TransportError{Err: err}
	}

	out := &client.Response{
		StatusCode: resp.StatusCode(),
		Headers:    resp.Header(),
		Body:       resp.Body(),
	}
	t.logger.Debug(ctx, "API response received", map[string]interface{}{
		"operation":   req.Operation,
		"status_code": out.StatusCode,
		"duration_ms": resp.Time().Milliseconds(),
	})
	if !client.IsSuccess(out.StatusCode) {
		return nil, &client.TransportError{StatusCode: out.StatusCode, Body: out.Body}
	}
	return out, nil
}
