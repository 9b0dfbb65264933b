package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"online-payments/pkg/client"
)

// gRPCゲートウェイのサービス名とメソッド
const (
	GatewayService    = "onlinepayments.sandbox.v1.Gateway"
	GatewayCallMethod = "/" + GatewayService + "/Call"
)

var (
	// ErrInvalidEnvelope エンベロープの形式が不正
	ErrInvalidEnvelope = errors.New("invalid envelope")
)

// Envelope gRPCで運ぶ一回分のHTTP風リクエスト
type Envelope struct {
	Method  string
	Path    string
	Headers map[string]string
	Query   map[string]string
	Body    []byte
}

// NewRequestEnvelope リクエストをstructpbのエンベロープに変換する
//
// ボディはJSONテキストのまま運ぶ。数値の精度とキー順を保つため。
func NewRequestEnvelope(req *client.Request) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		"method":  req.Method,
		"path":    req.Path,
		"headers": stringMap(req.Headers),
		"query":   stringMap(req.Query),
	}
	if req.Body != nil {
		body, err := req.Body.MarshalJSON()
		if err != nil {
			return nil, err
		}
		fields["body"] = string(body)
	}
	return structpb.NewStruct(fields)
}

// DecodeRequestEnvelope エンベロープからリクエストを取り出す
func DecodeRequestEnvelope(s *structpb.Struct) (*Envelope, error) {
	method := s.GetFields()["method"].GetStringValue()
	path := s.GetFields()["path"].GetStringValue()
	if method == "" || !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: method and absolute path are required", ErrInvalidEnvelope)
	}
	env := &Envelope{
		Method:  method,
		Path:    path,
		Headers: fromStruct(s.GetFields()["headers"].GetStructValue()),
		Query:   fromStruct(s.GetFields()["query"].GetStructValue()),
	}
	if v, ok := s.GetFields()["body"]; ok {
		env.Body = []byte(v.GetStringValue())
	}
	return env, nil
}

// NewResponseEnvelope レスポンスをエンベロープに変換する
func NewResponseEnvelope(status int, headers http.Header, body []byte) (*structpb.Struct, error) {
	flat := make(map[string]string, len(headers))
	for k, v := range headers {
		flat[k] = strings.Join(v, ", ")
	}
	return structpb.NewStruct(map[string]interface{}{
		"status":  status,
		"headers": stringMap(flat),
		"body":    string(body),
	})
}

// DecodeResponseEnvelope エンベロープからレスポンスを取り出す
func DecodeResponseEnvelope(s *structpb.Struct) (*client.Response, error) {
	status, ok := s.GetFields()["status"]
	if !ok {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidEnvelope)
	}
	resp := &client.Response{
		StatusCode: int(status.GetNumberValue()),
		Headers:    make(http.Header),
		Body:       []byte(s.GetFields()["body"].GetStringValue()),
	}
	for k, v := range fromStruct(s.GetFields()["headers"].GetStructValue()) {
		resp.Headers.Set(k, v)
	}
	return resp, nil
}

func stringMap(m map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func fromStruct(s *structpb.Struct) map[string]string {
	out := make(map[string]string, len(s.GetFields()))
	for k, v := range s.GetFields() {
		out[k] = v.GetStringValue()
	}
	return out
}
