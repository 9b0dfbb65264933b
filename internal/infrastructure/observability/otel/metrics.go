package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// APIリクエスト数
	RequestCount metric.Int64Counter

	// APIレスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー数
	ErrorCount metric.Int64Counter

	// エンコード・デコードの失敗数
	MarshalFailureCount metric.Int64Counter

	// サンドボックスで処理した返金数
	RefundCount metric.Int64Counter

	// サンドボックスで処理した返金額(最小通貨単位)
	RefundAmount metric.Int64Histogram

	// サンドボックスで処理した検証数
	VerificationCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	requestCount, err := meter.Int64Counter(
		"api_requests_total",
		metric.WithDescription("Total number of API requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"api_request_duration_seconds",
		metric.WithDescription("API request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"api_errors_total",
		metric.WithDescription("Total number of API errors"),
	)
	if err != nil {
		return nil, err
	}

	marshalFailureCount, err := meter.Int64Counter(
		"marshal_failures_total",
		metric.WithDescription("Total number of payload validation and schema failures"),
	)
	if err != nil {
		return nil, err
	}

	refundCount, err := meter.Int64Counter(
		"refunds_total",
		metric.WithDescription("Total number of refunds processed by the sandbox"),
	)
	if err != nil {
		return nil, err
	}

	refundAmount, err := meter.Int64Histogram(
		"refund_amount_minor_units",
		metric.WithDescription("Refund amounts in minor currency units"),
	)
	if err != nil {
		return nil, err
	}

	verificationCount, err := meter.Int64Counter(
		"verifications_total",
		metric.WithDescription("Total number of card verifications processed by the sandbox"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCount:        requestCount,
		ResponseTime:        responseTime,
		ErrorCount:          errorCount,
		MarshalFailureCount: marshalFailureCount,
		RefundCount:         refundCount,
		RefundAmount:        refundAmount,
		VerificationCount:   verificationCount,
	}, nil
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, duration float64) {
	m.ResponseTime.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}

// RecordMarshalFailure 検証エラーまたはスキーマエラーを記録
func (m *Metrics) RecordMarshalFailure(ctx context.Context, kind string) {
	m.MarshalFailureCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("kind", kind),
		),
	)
}

// RecordRefund 返金の処理結果を記録
func (m *Metrics) RecordRefund(ctx context.Context, currency, state string, minorUnits int64) {
	attrs := metric.WithAttributes(
		attribute.String("currency", currency),
		attribute.String("transaction_state", state),
	)
	m.RefundCount.Add(ctx, 1, attrs)
	m.RefundAmount.Record(ctx, minorUnits, attrs)
}

// RecordVerification 検証の処理結果を記録
func (m *Metrics) RecordVerification(ctx context.Context, responseStatus string) {
	m.VerificationCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("response_status", responseStatus),
		),
	)
}
