package client

import (
	"context"
	"net/http"

	"online-payments/pkg/marshal"
	"online-payments/pkg/models"
	"online-payments/pkg/params"
)

// RefundService 返金リソース
type RefundService struct {
	client *Client
}

// RefundGetParams リクエストIDによる返金取得のパラメータ
type RefundGetParams struct {
	MerchantID        string // ヘッダー merchant-id
	RequestID         string // ヘッダー request-id
	RequestIdentifier string // クエリ requestIdentifier
}

// RefundGetByIDParams 取引IDによる返金取得のパラメータ
type RefundGetByIDParams struct {
	MerchantID string // ヘッダー merchant-id
}

// RefundCreateParams 返金作成のパラメータ
type RefundCreateParams struct {
	MerchantID string // ヘッダー merchant-id
	RequestID  string // ヘッダー request-id
	Refund     params.Refund
}

// Get 過去に試行した返金をリクエストIDで取得する
//
//	GET /refunds?requestIdentifier={requestIdentifier}
func (s *RefundService) Get(ctx context.Context, p RefundGetParams, opts ...RequestOption) (*models.RefundResponse, error) {
	op := operation{name: "refunds.get", method: http.MethodGet, route: "/refunds", path: "/refunds"}

	headers, err := requiredHeaders(map[string]string{"merchant-id": p.MerchantID, "request-id": p.RequestID})
	if err != nil {
		return nil, s.client.validationError(ctx, op, err)
	}
	identifier, err := marshal.RequireParam("requestIdentifier", p.RequestIdentifier)
	if err != nil {
		return nil, s.client.validationError(ctx, op, err)
	}
	op.headers = headers
	op.query = map[string]string{"requestIdentifier": identifier}

	var out models.RefundResponse
	if err := s.client.do(ctx, op, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID 返金を取引IDで取得する
//
//	GET /refunds/{id}
func (s *RefundService) GetByID(ctx context.Context, id string, p RefundGetByIDParams, opts ...RequestOption) (*models.RefundResponse, error) {
	op := operation{name: "refunds.get_by_id", method: http.MethodGet, route: "/refunds/{id}"}

	idParam, err := marshal.RequireParam("id", id)
	if err != nil {
		return nil, s.client.validationError(ctx, op, err)
	}
	headers, err := requiredHeaders(map[string]string{"merchant-id": p.MerchantID})
	if err != nil {
		return nil, s.client.validationError(ctx, op, err)
	}
	op.path = "/refunds/" + marshal.PathEscape(idParam)
	op.headers = headers

	var out models.RefundResponse
	if err := s.client.do(ctx, op, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create 返金を作成し、消費者に資金を戻す
//
//	POST /refunds
func (s *RefundService) Create(ctx context.Context, p RefundCreateParams, opts ...RequestOption) (*models.RefundResponse, error) {
	op := operation{name: "refunds.create", method: http.MethodPost, route: "/refunds", path: "/refunds"}

	headers, err := requiredHeaders(map[string]string{"merchant-id": p.MerchantID, "request-id": p.RequestID})
	if err != nil {
		return nil, s.client.validationError(ctx, op, err)
	}
	op.headers = headers
	op.body = p.Refund

	var out models.RefundResponse
	if err := s.client.do(ctx, op, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// requiredHeaders 必須ヘッダーを文字列化する
func requiredHeaders(values map[string]string) (map[string]string, error) {
	headers := make(map[string]string, len(values))
	for name, v := range values {
		s, err := marshal.RequireParam(name, v)
		if err != nil {
			return nil, err
		}
		headers[name] = s
	}
	return headers, nil
}
