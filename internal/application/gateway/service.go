// Package gateway はサンドボックスの返金・カード検証を処理する。
//
// リクエストボディは marshal パッケージで params の型にデコードされるため、
// クライアントが実際に送ったフィールドだけを見て判定できる。
// 同じマーチャント・種別・リクエストIDでの再送には保存済みのレスポンスを返す。
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"online-payments/internal/domain/transaction"
	otelinfra "online-payments/internal/infrastructure/observability/otel"
	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
	"online-payments/pkg/marshal"
)

// DefaultRefundCeiling 元取引ごとの返金上限 (最小通貨単位)
const DefaultRefundCeiling int64 = 1_000_000

// Service サンドボックスのアプリケーションサービス
type Service struct {
	transactionRepo transaction.TransactionRepository
	txManager       transaction.TransactionManager
	logger          *otelinfra.Logger
	metrics         *otelinfra.Metrics
	tracer          trace.Tracer
	refundCeiling   int64
	newID           func() string
	now             func() time.Time
}

// Option Serviceの設定
type Option func(*Service)

// WithRefundCeiling 元取引ごとの返金上限を設定
func WithRefundCeiling(ceiling int64) Option {
	return func(s *Service) {
		s.refundCeiling = ceiling
	}
}

// WithClock 現在時刻の取得方法を設定
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator 取引IDの生成方法を設定
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// NewService 新しいServiceを作成
func NewService(
	transactionRepo transaction.TransactionRepository,
	txManager transaction.TransactionManager,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	opts ...Option,
) *Service {
	s := &Service{
		transactionRepo: transactionRepo,
		txManager:       txManager,
		logger:          logger,
		metrics:         metrics,
		tracer:          otel.Tracer("gateway-service"),
		refundCeiling:   DefaultRefundCeiling,
		newID:           uuid.NewString,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// outcome 一件の取引の判定結果
type outcome struct {
	state       enums.TransactionState
	status      enums.ResponseStatus
	code        string
	amount      int64
	currency    currency.Code
	referenceID string
	response    any // models.RefundResponse または models.VerificationResponse
}

type processFunc func(ctx context.Context, transactionID string) (*outcome, error)

// create 冪等性を保証しながら取引を判定して保存する
func (s *Service) create(ctx context.Context, span trace.Span, tt transaction.TransactionType, req *CreateRequest, process processFunc) (*Result, error) {
	if err := validateIdentity(req.MerchantID, req.RequestID); err != nil {
		return nil, s.reject(ctx, span, err)
	}

	existing, err := s.transactionRepo.FindByRequestID(ctx, req.MerchantID, tt, req.RequestID)
	if err != nil && !errors.Is(err, transaction.ErrTransactionNotFound) {
		return nil, s.fail(ctx, span, fmt.Errorf("failed to find transaction: %w", err))
	}
	if existing != nil {
		return s.replay(ctx, span, existing), nil
	}

	var result *Result
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		transactionID := s.newID()
		out, err := process(ctx, transactionID)
		if err != nil {
			return err
		}

		body, err := marshal.Marshal(out.response)
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}

		t, err := transaction.NewTransaction(transaction.Params{
			TransactionID:   transactionID,
			RequestID:       req.RequestID,
			MerchantID:      req.MerchantID,
			TransactionType: tt,
			State:           out.state,
			ResponseStatus:  out.status,
			ResponseCode:    out.code,
			Amount:          out.amount,
			Currency:        out.currency,
			ReferenceID:     out.referenceID,
			Response:        body,
		})
		if err != nil {
			return fmt.Errorf("failed to build transaction: %w", err)
		}
		if err := s.transactionRepo.Save(ctx, t); err != nil {
			return err
		}

		result = &Result{TransactionID: transactionID, Body: body}
		return nil
	})

	// 同じリクエストIDが並行して処理された場合は先に保存された方を返す
	if errors.Is(err, transaction.ErrDuplicateRequestID) {
		existing, ferr := s.transactionRepo.FindByRequestID(ctx, req.MerchantID, tt, req.RequestID)
		if ferr != nil {
			return nil, s.fail(ctx, span, fmt.Errorf("failed to find transaction: %w", ferr))
		}
		return s.replay(ctx, span, existing), nil
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return nil, s.reject(ctx, span, reqErr)
	}
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}

	span.SetAttributes(attribute.String("transaction_id", result.TransactionID))
	span.SetStatus(otelcodes.Ok, "transaction created")
	return result, nil
}

// find 取引IDでマーチャントの取引を取得する
func (s *Service) find(ctx context.Context, span trace.Span, tt transaction.TransactionType, req *GetByIDRequest) (*Result, error) {
	t, err := s.transactionRepo.FindByTransactionID(ctx, req.TransactionID)
	if errors.Is(err, transaction.ErrTransactionNotFound) {
		return nil, s.notFound(ctx, span, tt, req.TransactionID)
	}
	if err != nil {
		return nil, s.fail(ctx, span, fmt.Errorf("failed to find transaction: %w", err))
	}
	// 他のマーチャントの取引は存在しないものとして扱う
	if !t.BelongsTo(req.MerchantID) || t.TransactionType() != tt {
		return nil, s.notFound(ctx, span, tt, req.TransactionID)
	}

	span.SetStatus(otelcodes.Ok, "transaction found")
	return &Result{TransactionID: t.TransactionID(), Body: t.Response(), Replayed: true}, nil
}

// findByRequest リクエストIDでマーチャントの取引を取得する
func (s *Service) findByRequest(ctx context.Context, span trace.Span, tt transaction.TransactionType, req *GetRequest) (*Result, error) {
	if err := validateIdentity(req.MerchantID, req.RequestIdentifier); err != nil {
		return nil, s.reject(ctx, span, err)
	}

	t, err := s.transactionRepo.FindByRequestID(ctx, req.MerchantID, tt, req.RequestIdentifier)
	if errors.Is(err, transaction.ErrTransactionNotFound) {
		return nil, s.notFound(ctx, span, tt, req.RequestIdentifier)
	}
	if err != nil {
		return nil, s.fail(ctx, span, fmt.Errorf("failed to find transaction: %w", err))
	}

	span.SetStatus(otelcodes.Ok, "transaction found")
	return &Result{TransactionID: t.TransactionID(), Body: t.Response(), Replayed: true}, nil
}

func (s *Service) replay(ctx context.Context, span trace.Span, t *transaction.Transaction) *Result {
	s.logger.Info(ctx, "Replaying stored response", map[string]interface{}{
		"transaction_id":   t.TransactionID(),
		"merchant_id":      t.MerchantID(),
		"request_id":       t.RequestID(),
		"transaction_type": t.TransactionType().String(),
	})
	span.SetAttributes(
		attribute.String("transaction_id", t.TransactionID()),
		attribute.Bool("replayed", true),
	)
	span.SetStatus(otelcodes.Ok, "stored response replayed")
	return &Result{TransactionID: t.TransactionID(), Body: t.Response(), Replayed: true}
}

func (s *Service) notFound(ctx context.Context, span trace.Span, tt transaction.TransactionType, id string) error {
	s.logger.Info(ctx, "Transaction not found", map[string]interface{}{
		"resource": tt.Resource(),
		"id":       id,
	})
	span.SetStatus(otelcodes.Error, "transaction not found")
	return transaction.ErrTransactionNotFound
}

func (s *Service) reject(ctx context.Context, span trace.Span, err *RequestError) error {
	kind := "invalid_request"
	switch {
	case errors.Is(err, marshal.ErrSchema):
		kind = "schema"
	case errors.Is(err, marshal.ErrValidation):
		kind = "validation"
	}
	if kind != "invalid_request" {
		s.metrics.RecordMarshalFailure(ctx, kind)
	}
	s.metrics.RecordError(ctx, kind)
	s.logger.Warn(ctx, "Request rejected", map[string]interface{}{
		"code":    err.Code,
		"message": err.Message,
	})
	span.SetStatus(otelcodes.Error, err.Error())
	return err
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error) error {
	s.metrics.RecordError(ctx, "internal")
	s.logger.Error(ctx, "Transaction processing failed", err, nil)
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
	return err
}

func validateIdentity(merchantID, requestID string) *RequestError {
	if !transaction.ValidMerchantID(merchantID) {
		return invalid(CodeMissingField, "merchant-id header is missing or malformed")
	}
	if !transaction.ValidRequestID(requestID) {
		return invalid(CodeMissingField, "request identifier is missing or malformed")
	}
	return nil
}

// decodeBody ボディをparamsの型にデコードし、列挙値と必須フィールドを検証する
func decodeBody(body []byte, v any) *RequestError {
	if err := marshal.Unmarshal(body, v); err != nil {
		return &RequestError{Code: CodeInvalidRequest, Message: err.Error(), Err: err}
	}
	if _, err := marshal.Encode(v); err != nil {
		return &RequestError{Code: CodeInvalidRequest, Message: err.Error(), Err: err}
	}
	return nil
}

// transactionDate レスポンスに載せる取引日時
func (s *Service) transactionDate() string {
	return s.now().UTC().Format(time.RFC3339)
}

// approvalCode 取引IDから承認コードを作る
func approvalCode(transactionID string) string {
	code := make([]byte, 0, 6)
	for i := 0; i < len(transactionID) && len(code) < 6; i++ {
		c := transactionID[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			code = append(code, c)
		}
	}
	return string(code)
}
