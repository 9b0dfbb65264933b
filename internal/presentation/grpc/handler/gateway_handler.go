package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	otelinfra "online-payments/internal/infrastructure/observability/otel"
	"online-payments/internal/infrastructure/transport"
)

// GatewayHandler エンベロープをREST APIに中継するハンドラー
//
// 決済APIの処理はRESTと共通で、gRPCはエンベロープの変換だけを担う。
type GatewayHandler struct {
	rest   http.Handler
	logger *otelinfra.Logger
}

// NewGatewayHandler 新しいGatewayHandlerを作成
func NewGatewayHandler(rest http.Handler, logger *otelinfra.Logger) *GatewayHandler {
	return &GatewayHandler{
		rest:   rest,
		logger: logger,
	}
}

// Call エンベロープのリクエストを処理してレスポンスのエンベロープを返す
func (h *GatewayHandler) Call(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	env, err := transport.DecodeRequestEnvelope(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	target := env.Path
	if len(env.Query) > 0 {
		query := url.Values{}
		for k, v := range env.Query {
			query.Set(k, v)
		}
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, env.Method, target, bytes.NewReader(env.Body))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	for k, v := range env.Headers {
		req.Header.Set(k, v)
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("authorization"); len(values) > 0 {
			req.Header.Set("Authorization", values[0])
		}
	}
	if len(env.Body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := newResponseBuffer()
	h.rest.ServeHTTP(rec, req)

	h.logger.Debug(ctx, "gRPC gateway call completed", map[string]interface{}{
		"method":      env.Method,
		"path":        env.Path,
		"status_code": rec.status,
	})

	out, err := transport.NewResponseEnvelope(rec.status, rec.header, rec.body.Bytes())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// responseBuffer http.ResponseWriterの内容をメモリに保持する
type responseBuffer struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: make(http.Header), status: http.StatusOK}
}

func (r *responseBuffer) Header() http.Header {
	return r.header
}

func (r *responseBuffer) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
}

func (r *responseBuffer) Write(p []byte) (int, error) {
	r.WriteHeader(http.StatusOK)
	return r.body.Write(p)
}
