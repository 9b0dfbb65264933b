package otel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"online-payments/internal/infrastructure/config"
)

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.OpenTelemetryConfig
		wantError string
	}{
		{
			name: "正常系: 無効な場合はNoopの終了処理を返す",
			cfg:  &config.OpenTelemetryConfig{Enabled: false},
		},
		{
			name: "正常系: noneエクスポーター",
			cfg: &config.OpenTelemetryConfig{
				Enabled:         true,
				MetricsExporter: "none",
			},
		},
		{
			name: "正常系: OTLPエクスポーター",
			cfg: &config.OpenTelemetryConfig{
				Enabled:         true,
				MetricsExporter: "otlp",
				OTLPEndpoint:    "http://localhost:4318",
				OTLPInsecure:    true,
				ServiceName:     "test-service",
				ServiceVersion:  "1.0.0",
				MetricsInterval: 30 * time.Second,
			},
		},
		{
			name: "異常系: 未対応のエクスポーター",
			cfg: &config.OpenTelemetryConfig{
				Enabled:         true,
				MetricsExporter: "prometheus",
			},
			wantError: "unsupported metrics exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := InitMeter(tt.cfg)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Nil(t, shutdown)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, shutdown)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_ = shutdown(ctx)
		})
	}
}

func TestMeter(t *testing.T) {
	meter := Meter("test-meter")
	require.NotNil(t, meter)

	counter, err := meter.Int64Counter("test_total")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)
}
