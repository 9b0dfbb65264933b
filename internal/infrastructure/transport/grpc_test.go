package transport

import (
	"context"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"online-payments/pkg/client"
	"online-payments/pkg/marshal"
)

type gatewayFunc func(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

// startGateway bufconn上にテスト用ゲートウェイを起動する
func startGateway(t *testing.T, handler gatewayFunc) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: GatewayService,
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{{
			MethodName: "Call",
			Handler: func(_ interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
				in := &structpb.Struct{}
				if err := dec(in); err != nil {
					return nil, err
				}
				return handler(ctx, in)
			},
		}},
	}, struct{}{})
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := DialGRPC("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestGRPCTransport_Request(t *testing.T) {
	var gotEnv *Envelope
	var gotAuth []string
	conn := startGateway(t, func(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		gotAuth = md.Get("authorization")
		env, err := DecodeRequestEnvelope(in)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		gotEnv = env
		headers := http.Header{}
		headers.Set("Content-Type", "application/json")
		return NewResponseEnvelope(http.StatusOK, headers, []byte(`{"transactionId":"t1"}`))
	})

	body := marshal.NewObject()
	body.Set("currency", "EUR")

	tr := NewGRPCTransport(conn, Credentials{client.AuthScheme: StaticToken("grpc-token")}, testLogger())
	resp, err := tr.Request(context.Background(), &client.Request{
		Operation: "refunds.create",
		Method:    http.MethodPost,
		Path:      "/refunds",
		Headers:   map[string]string{"merchant-id": "m1"},
		Query:     map[string]string{},
		Body:      body,
		AuthNames: []string{client.AuthScheme},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"transactionId":"t1"}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Headers.Get("Content-Type"))

	assert.Equal(t, []string{"Bearer grpc-token"}, gotAuth)
	require.NotNil(t, gotEnv)
	assert.Equal(t, http.MethodPost, gotEnv.Method)
	assert.Equal(t, "/refunds", gotEnv.Path)
	assert.Equal(t, "m1", gotEnv.Headers["merchant-id"])
	assert.Equal(t, `{"currency":"EUR"}`, string(gotEnv.Body))
}

func TestGRPCTransport_Errors(t *testing.T) {
	tests := []struct {
		name       string
		handler    gatewayFunc
		wantStatus int
	}{
		{
			name: "異常系: 非2xxのエンベロープはTransportErrorになる",
			handler: func(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return NewResponseEnvelope(http.StatusNotFound, nil, []byte(`{"responseMessage":"not found"}`))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "異常系: Unauthenticatedは401になる",
			handler: func(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return nil, status.Error(codes.Unauthenticated, "invalid token")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "異常系: Unavailableはステータスなしになる",
			handler: func(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return nil, status.Error(codes.Unavailable, "down")
			},
			wantStatus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := startGateway(t, tt.handler)
			tr := NewGRPCTransport(conn, Credentials{client.AuthScheme: StaticToken("tok")}, testLogger())

			_, err := tr.Request(context.Background(), &client.Request{
				Method:    http.MethodGet,
				Path:      "/refunds/x",
				AuthNames: []string{client.AuthScheme},
			})

			var terr *client.TransportError
			require.ErrorAs(t, err, &terr)
			assert.ErrorIs(t, err, client.ErrTransport)
			assert.Equal(t, tt.wantStatus, terr.StatusCode)
		})
	}
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code codes.Code
		want int
	}{
		{codes.InvalidArgument, http.StatusBadRequest},
		{codes.Unauthenticated, http.StatusUnauthorized},
		{codes.PermissionDenied, http.StatusForbidden},
		{codes.NotFound, http.StatusNotFound},
		{codes.ResourceExhausted, http.StatusTooManyRequests},
		{codes.Internal, http.StatusInternalServerError},
		{codes.DeadlineExceeded, 0},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, httpStatusFromCode(tt.code))
		})
	}
}
