package grpc

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"online-payments/internal/application/gateway"
	"online-payments/internal/infrastructure/config"
	otelinfra "online-payments/internal/infrastructure/observability/otel"
	"online-payments/internal/infrastructure/persistence/memory"
	"online-payments/internal/infrastructure/transport"
	"online-payments/internal/presentation/rest"
	"online-payments/pkg/client"
	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
	"online-payments/pkg/marshal"
	"online-payments/pkg/params"
)

const (
	testSecret     = "grpc-test-secret"
	testMerchantID = "991234567890"
)

// startServer bufconn上にRESTルーターを背後に持つgRPCサーバーを起動する
func startServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	cfg := &config.Config{
		JWT:         config.JWTConfig{Secret: testSecret},
		Environment: "test",
	}
	logger := otelinfra.NewLoggerWithWriter(noop.NewTracerProvider().Tracer("test"), io.Discard)
	metrics, err := otelinfra.NewMetrics("test")
	require.NoError(t, err)

	service := gateway.NewService(memory.NewTransactionRepository(), memory.NewTransactionManager(), logger, metrics)
	router := rest.NewRouter(cfg, logger, metrics, service)

	lis := bufconn.Listen(1024 * 1024)
	server := NewServerWithListener(cfg, logger, router.Handler(), lis)
	go func() { _ = server.Start() }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Stop(ctx)
	})

	conn, err := transport.DialGRPC("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newClient(t *testing.T, conn *grpc.ClientConn, credentials transport.Credentials) *client.Client {
	t.Helper()
	logger := otelinfra.NewLoggerWithWriter(noop.NewTracerProvider().Tracer("test"), io.Discard)
	return client.New(transport.NewGRPCTransport(conn, credentials, logger))
}

func testRefund() params.Refund {
	return params.Refund{
		Amount:   marshal.Value(int64(1500)),
		Currency: marshal.Value(currency.USD),
		Merchant: marshal.Value(params.Merchant{
			MerchantSoftware: marshal.Value(params.MerchantSoftware{
				CompanyName: marshal.Value("Acme"),
				ProductName: marshal.Value("Checkout"),
			}),
		}),
		PaymentMethodType: marshal.Value(params.RefundPaymentMethodType{
			Card: marshal.Value(params.RefundCard{
				AccountNumber: marshal.Value("4111111111111111"),
			}),
		}),
	}
}

func TestServer_RefundRoundTrip(t *testing.T) {
	conn := startServer(t)
	signer := transport.NewJWTSigner(testSecret, "", "", "grpc-test", time.Minute)
	c := newClient(t, conn, transport.Credentials{client.AuthScheme: signer})
	ctx := context.Background()

	created, err := c.Refunds.Create(ctx, client.RefundCreateParams{
		MerchantID: testMerchantID,
		RequestID:  "req-grpc-1",
		Refund:     testRefund(),
	})
	require.NoError(t, err)
	assert.Equal(t, gateway.RefundCodeApproved, created.ResponseCode)
	assert.Equal(t, enums.TransactionStateCompleted, created.TransactionState)
	assert.Equal(t, marshal.Some(int64(1500)), created.Amount)

	byID, err := c.Refunds.GetByID(ctx, created.TransactionID, client.RefundGetByIDParams{MerchantID: testMerchantID})
	require.NoError(t, err)
	assert.Equal(t, created.TransactionID, byID.TransactionID)

	byRequest, err := c.Refunds.Get(ctx, client.RefundGetParams{
		MerchantID:        testMerchantID,
		RequestID:         "req-grpc-2",
		RequestIdentifier: "req-grpc-1",
	})
	require.NoError(t, err)
	assert.Equal(t, created.TransactionID, byRequest.TransactionID)

	_, err = c.Refunds.GetByID(ctx, "missing-txn", client.RefundGetByIDParams{MerchantID: testMerchantID})
	var transportErr *client.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
}

func TestServer_VerificationRoundTrip(t *testing.T) {
	conn := startServer(t)
	signer := transport.NewJWTSigner(testSecret, "", "", "grpc-test", time.Minute)
	c := newClient(t, conn, transport.Credentials{client.AuthScheme: signer})

	created, err := c.Verifications.Create(context.Background(), client.VerificationCreateParams{
		MerchantID: testMerchantID,
		RequestID:  "req-grpc-v1",
		Verification: params.Verification{
			Merchant: marshal.Value(params.Merchant{
				MerchantSoftware: marshal.Value(params.MerchantSoftware{
					CompanyName: marshal.Value("Acme"),
					ProductName: marshal.Value("Checkout"),
				}),
			}),
			PaymentMethodType: marshal.Value(params.VerificationPaymentMethodType{
				Card: marshal.Value(params.VerificationCard{
					AccountNumber: marshal.Value("4111111111111112"),
				}),
			}),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, gateway.VerificationCodeInvalidAccount, created.ResponseCode)
	assert.Equal(t, enums.ResponseStatusDenied, created.ResponseStatus)
}

func TestServer_Unauthenticated(t *testing.T) {
	conn := startServer(t)
	c := newClient(t, conn, transport.Credentials{client.AuthScheme: transport.StaticToken("not-a-jwt")})

	_, err := c.Refunds.GetByID(context.Background(), "txn-1", client.RefundGetByIDParams{MerchantID: testMerchantID})

	var transportErr *client.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusUnauthorized, transportErr.StatusCode)
	assert.Equal(t, codes.Unauthenticated, status.Code(transportErr.Err))
}

func TestServer_InvalidEnvelope(t *testing.T) {
	conn := startServer(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "grpc-test"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
	in, err := structpb.NewStruct(map[string]interface{}{"method": "GET", "path": "no-slash"})
	require.NoError(t, err)

	err = conn.Invoke(ctx, transport.GatewayCallMethod, in, &structpb.Struct{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
