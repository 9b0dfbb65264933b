package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"online-payments/internal/infrastructure/config"
	otelinfra "online-payments/internal/infrastructure/observability/otel"
	"online-payments/internal/infrastructure/transport"
	"online-payments/pkg/client"
	"online-payments/pkg/currency"
	"online-payments/pkg/marshal"
	"online-payments/pkg/params"
)

const (
	meterName                = "payments-cli"
	telemetryShutdownTimeout = 5 * time.Second
)

var (
	errMissingMerchantID = errors.New("merchant id is required: set --merchant-id or PAYMENTS_MERCHANT_ID")
	errNoResponse        = errors.New("no response received")
)

// app 一回のコマンド実行で使うクライアント
type app struct {
	client     *client.Client
	merchantID string
	close      func() error
}

func newApp(opts *globalOptions, loadConfig func() (*config.Config, error)) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cc := cfg.Client
	if opts.transport != "" {
		cc.Transport = opts.transport
	}
	merchantID := opts.merchantID
	if merchantID == "" {
		merchantID = cc.MerchantID
	}
	if merchantID == "" {
		return nil, errMissingMerchantID
	}

	shutdownTelemetry, err := initTelemetry(&cfg.OpenTelemetry)
	if err != nil {
		return nil, err
	}
	metrics, err := otelinfra.NewMetrics(meterName)
	if err != nil {
		_ = shutdownTelemetry()
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	logger := otelinfra.NewLogger(otelinfra.Tracer(meterName))
	credentials := newCredentials(&cc)
	clientOpts := []client.Option{client.WithLogger(logger), client.WithMetrics(metrics)}

	a := &app{merchantID: merchantID, close: shutdownTelemetry}
	switch cc.Transport {
	case config.TransportHTTP:
		t := transport.NewHTTPTransport(transport.HTTPConfig{
			BaseURL:          cc.BaseURL,
			Timeout:          cc.Timeout,
			RetryCount:       cc.RetryCount,
			RetryWaitTime:    cc.RetryWaitTime,
			RetryMaxWaitTime: cc.RetryMaxWaitTime,
			UserAgent:        "payments-cli/" + Version,
		}, credentials, logger)
		a.client = client.New(t, clientOpts...)
	case config.TransportGRPC:
		conn, err := transport.DialGRPC(cc.GRPCTarget)
		if err != nil {
			_ = shutdownTelemetry()
			return nil, fmt.Errorf("failed to dial %s: %w", cc.GRPCTarget, err)
		}
		a.client = client.New(transport.NewGRPCTransport(conn, credentials, logger), clientOpts...)
		a.close = func() error {
			err := conn.Close()
			return errors.Join(err, shutdownTelemetry())
		}
	default:
		_ = shutdownTelemetry()
		return nil, fmt.Errorf("%w: unsupported transport %q", config.ErrInvalidConfig, cc.Transport)
	}
	return a, nil
}

// initTelemetry OpenTelemetryが有効ならトレーサーとメーターを初期化し、まとめて終了する関数を返す
func initTelemetry(cfg *config.OpenTelemetryConfig) (func() error, error) {
	tracerShutdown, err := otelinfra.InitTracer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}
	meterShutdown, err := otelinfra.InitMeter(cfg)
	if err != nil {
		_ = tracerShutdown(context.Background())
		return nil, fmt.Errorf("failed to initialize meter: %w", err)
	}
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		return errors.Join(meterShutdown(ctx), tracerShutdown(ctx))
	}, nil
}

// newCredentials 固定トークンか署名鍵から認証情報を作る
func newCredentials(cc *config.ClientConfig) transport.Credentials {
	switch {
	case cc.AccessToken != "":
		return transport.Credentials{client.AuthScheme: transport.StaticToken(cc.AccessToken)}
	case cc.TokenSecret != "":
		return transport.Credentials{client.AuthScheme: transport.NewJWTSigner(
			cc.TokenSecret, cc.TokenIssuer, cc.TokenAudience, cc.TokenSubject, cc.TokenTTL,
		)}
	default:
		return transport.Credentials{}
	}
}

// printJSON 受信したレスポンスボディを整形して出力する
//
// デコード済みのモデルを再エンコードすると未知の列挙値や未知のフィールドを失うため、生のボディを使う。
func printJSON(w io.Writer, resp *client.Response) error {
	if resp == nil {
		return errNoResponse
	}
	var out bytes.Buffer
	if err := json.Indent(&out, resp.Body, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

// requestIDOrNew 指定がなければ新しいリクエストIDを発行する
func requestIDOrNew(requestID string) string {
	if requestID != "" {
		return requestID
	}
	return uuid.NewString()
}

// minorUnits "12.34" のような金額を通貨の最小単位に換算する
func minorUnits(amount string, code currency.Code) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("invalid amount %q: must be positive", amount)
	}
	return currency.ToMinorUnits(d, code)
}

// cardOptions カード関連のフラグ
type cardOptions struct {
	accountNumber string
	expiryMonth   int
	expiryYear    int
}

func (o cardOptions) expiry() marshal.Field[params.Expiry] {
	if o.expiryMonth == 0 && o.expiryYear == 0 {
		return marshal.NotGiven[params.Expiry]()
	}
	return marshal.Value(params.Expiry{
		Month: marshal.Value(o.expiryMonth),
		Year:  marshal.Value(o.expiryYear),
	})
}

func cliMerchant() marshal.Field[params.Merchant] {
	return marshal.Value(params.Merchant{
		MerchantSoftware: marshal.Value(params.MerchantSoftware{
			CompanyName: marshal.Value("online-payments"),
			ProductName: marshal.Value("payments-cli"),
			Version:     marshal.Value(Version),
		}),
	})
}

// optional 空文字は未指定として扱う
func optional(s string) marshal.Field[string] {
	if s == "" {
		return marshal.NotGiven[string]()
	}
	return marshal.Value(s)
}
