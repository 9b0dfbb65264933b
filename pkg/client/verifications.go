package client

import (
	"context"
	"net/http"

	"online-payments/pkg/marshal"
	"online-payments/pkg/models"
	"online-payments/pkg/params"
)

// VerificationService カード検証リソース
type VerificationService struct {
	client *Client
}

// VerificationGetParams リクエストIDによる検証取得のパラメータ
type VerificationGetParams struct {
	MerchantID        string
	RequestID         string
	RequestIdentifier string
}

// VerificationGetByIDParams 取引IDによる検証取得のパラメータ
type VerificationGetByIDParams struct {
	MerchantID string
}

// VerificationCreateParams 検証作成のパラメータ
type VerificationCreateParams struct {
	MerchantID   string
	RequestID    string
	Verification params.Verification
}

// Create カードを検証する
//
//	POST /verifications
func (s *VerificationService) Create(ctx context.Context, p VerificationCreateParams, opts ...RequestOption) (*models.VerificationResponse, error) {
	op := operation{name: "verifications.create", method: http.MethodPost, route: "/verifications", path: "/verifications"}

	headers, err := requiredHeaders(map[string]string{"merchant-id": p.MerchantID, "request-id": p.RequestID})
	if err != nil {
		return nil, s.client.validationError(ctx, op, err)
	}
	op.headers = headers
	op.body = p.Verification

	var out models.VerificationResponse
	if err := s.client.do(ctx, op, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID 検証を取引IDで取得する
//
//	GET /verifications/{id}
func (s *VerificationService) GetByID(ctx context.Context, id string, p VerificationGetByIDParams, opts ...RequestOption) (*models.VerificationResponse, error) {
	op := operation{name: "verifications.get_by_id", method: http.MethodGet, route: "/verifications/{id}"}

	idParam, err := marshal.RequireParam("id", id)
	if err != nil {
		return nil, s.client.validationError(ctx, op, err)
	}
	headers, err := requiredHeaders(map[string]string{"merchant-id": p.MerchantID})
	if err != nil {
		return nil, s.client.validationError(ctx, op, err)
	}
	op.path = "/verifications/" + marshal.PathEscape(idParam)
	op.headers = headers

	var out models.VerificationResponse
	if err := s.client.do(ctx, op, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get 検証をリクエストIDで取得する
//
//	GET /verifications?requestIdentifier={requestIdentifier}
func (s *VerificationService) Get(ctx context.Context, p VerificationGetParams, opts ...RequestOption) (*models.VerificationResponse, error) {
	op := operation{name: "verifications.get", method: http.MethodGet, route: "/verifications", path: "/verifications"}

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

	var out models.VerificationResponse
	if err := s.client.do(ctx, op, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}
