package transport

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"online-payments/internal/infrastructure/observability/otel"
	"online-payments/pkg/client"
)

// GRPCTransport サンドボックスのgRPCゲートウェイ経由の転送
type GRPCTransport struct {
	conn        grpc.ClientConnInterface
	credentials Credentials
	logger      *otel.Logger
}

// DialGRPC ゲートウェイへの接続を作成
func DialGRPC(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	return grpc.NewClient(target, append(base, opts...)...)
}

// NewGRPCTransport 新しいGRPCTransportを作成
func NewGRPCTransport(conn grpc.ClientConnInterface, credentials Credentials, logger *otel.Logger) *GRPCTransport {
	return &GRPCTransport{
		conn:        conn,
		credentials: credentials,
		logger:      logger.With("transport.grpc"),
	}
}

// Request リクエストを送信する
func (t *GRPCTransport) Request(ctx context.Context, req *client.Request) (*client.Response, error) {
	authorization, err := t.credentials.Authorization(ctx, req.AuthNames)
	if err != nil {
		return nil, &client.TransportError{Err: err}
	}
	if authorization != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", authorization)
	}

	in, err := NewRequestEnvelope(req)
	if err != nil {
		return nil, &client.TransportError{Err: err}
	}

	out := &structpb.Struct{}
	if err := t.conn.Invoke(ctx, GatewayCallMethod, in, out); err != nil {
		t.logger.Error(ctx, "gRPC call failed", err, map[string]interface{}{
			"operation": req.Operation,
			"code":      status.Code(err).String(),
		})
		return nil, &client.TransportError{StatusCode: httpStatusFromCode(status.Code(err)), Err: err}
	}

	resp, err := DecodeResponseEnvelope(out)
	if err != nil {
		return nil, &client.TransportError{Err: err}
	}
	if !client.IsSuccess(resp.StatusCode) {
		return nil, &client.TransportError{StatusCode: resp.StatusCode, Body: resp.Body}
	}
	return resp, nil
}

// httpStatusFromCode 対応するHTTPステータスがないコードは0を返す
func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Internal, codes.Unknown:
		return http.StatusInternalServerError
	default:
		return 0
	}
}
