package gateway

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"online-payments/internal/domain/transaction"
	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
	"online-payments/pkg/marshal"
	"online-payments/pkg/models"
	"online-payments/pkg/params"
)

// 検証の応答コード
const (
	VerificationCodeAccepted       = "ACCEPTED"
	VerificationCodeInvalidAccount = "INVALID_ACCOUNT"
	VerificationCodeExpiredCard    = "EXPIRED_CARD"
)

// CreateVerification カードを検証
//
// チェックディジットが合わないカード番号と有効期限切れのカードは拒否される。
func (s *Service) CreateVerification(ctx context.Context, req *CreateRequest) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "Service.CreateVerification")
	defer span.End()

	span.SetAttributes(
		attribute.String("merchant_id", req.MerchantID),
		attribute.String("request_id", req.RequestID),
	)

	s.logger.Info(ctx, "Processing verification", map[string]interface{}{
		"merchant_id": req.MerchantID,
		"request_id":  req.RequestID,
	})

	return s.create(ctx, span, transaction.TransactionTypeVerification, req, func(ctx context.Context, transactionID string) (*outcome, error) {
		var verification params.Verification
		if err := decodeBody(req.Body, &verification); err != nil {
			return nil, err
		}
		out, err := s.decideVerification(req, transactionID, &verification)
		if err != nil {
			return nil, err
		}
		s.metrics.RecordVerification(ctx, string(out.status))
		return out, nil
	})
}

// GetVerification リクエストIDで検証を取得
func (s *Service) GetVerification(ctx context.Context, req *GetRequest) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "Service.GetVerification")
	defer span.End()

	span.SetAttributes(
		attribute.String("merchant_id", req.MerchantID),
		attribute.String("request_identifier", req.RequestIdentifier),
	)

	return s.findByRequest(ctx, span, transaction.TransactionTypeVerification, req)
}

// GetVerificationByID 取引IDで検証を取得
func (s *Service) GetVerificationByID(ctx context.Context, req *GetByIDRequest) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "Service.GetVerificationByID")
	defer span.End()

	span.SetAttributes(
		attribute.String("merchant_id", req.MerchantID),
		attribute.String("transaction_id", req.TransactionID),
	)

	return s.find(ctx, span, transaction.TransactionTypeVerification, req)
}

func (s *Service) decideVerification(req *CreateRequest, transactionID string, v *params.Verification) (*outcome, error) {
	pm, _ := v.PaymentMethodType.Get()
	card, ok := pm.Card.Get()
	if !ok {
		return nil, invalid(CodeMissingField, "paymentMethodType.card is required")
	}
	number, ok := card.AccountNumber.Get()
	if !ok || number == "" {
		return nil, invalid(CodeMissingField, "paymentMethodType.card.accountNumber is required")
	}

	out := &outcome{currency: v.Currency.ValueOr(currency.USD)}

	vc := models.VerificationCard{MaskedAccountNumber: marshal.Some(maskAccountNumber(number))}
	if cardType, ok := card.CardType.Get(); ok {
		vc.CardType = marshal.Some(cardType)
	} else if brand := cardBrand(number); brand != "" {
		vc.CardType = marshal.Some(brand)
	}
	if numberType, ok := card.AccountNumberType.Get(); ok {
		vc.AccountNumberType = marshal.Some(numberType)
	}
	if wallet, ok := card.WalletProvider.Get(); ok {
		vc.WalletProvider = marshal.Some(wallet)
	}

	resp := models.VerificationResponse{
		Currency:          out.currency,
		TransactionID:     transactionID,
		RequestID:         marshal.Some(req.RequestID),
		TransactionDate:   marshal.Some(s.transactionDate()),
		PaymentMethodType: models.VerificationPaymentMethodType{},
	}
	if orderNumber, ok := v.MerchantOrderNumber.Get(); ok {
		resp.MerchantOrderNumber = marshal.Some(orderNumber)
	}
	if merchant, ok := v.Merchant.Get(); ok {
		resp.Merchant = marshal.Some(echoMerchant(merchant))
	}
	if initiator, ok := v.InitiatorType.Get(); ok {
		resp.InitiatorType = marshal.Some(initiator)
	}
	if onFile, ok := v.AccountOnFile.Get(); ok {
		resp.AccountOnFile = marshal.Some(onFile)
	}

	expiry, hasExpiry := card.Expiry.Get()
	month, _ := expiry.Month.Get()
	year, _ := expiry.Year.Get()
	if hasExpiry {
		vc.Expiry = marshal.Some(models.Expiry{Month: month, Year: year})
	}

	switch {
	case !luhnValid(number):
		out.state, out.status, out.code = enums.TransactionStateDeclined, enums.ResponseStatusDenied, VerificationCodeInvalidAccount
		resp.ResponseMessage = "Account number failed validation"
		resp.HostMessage = marshal.Some("Invalid account")
	case hasExpiry && (month < 1 || month > 12 || expired(month, year, s.now())):
		out.state, out.status, out.code = enums.TransactionStateDeclined, enums.ResponseStatusDenied, VerificationCodeExpiredCard
		resp.ResponseMessage = "Card is expired"
		resp.HostMessage = marshal.Some("Expired card")
	default:
		out.state, out.status, out.code = enums.TransactionStateClosed, enums.ResponseStatusSuccess, VerificationCodeAccepted
		resp.ResponseMessage = "Transaction approved by Issuer"
		resp.HostMessage = marshal.Some("Approved")
		resp.ApprovalCode = marshal.Some(approvalCode(transactionID))
		vc.NetworkResponse = marshal.Some(models.NetworkResponse{
			NetworkTransactionID:   marshal.Some(transactionID),
			CardVerificationResult: marshal.Some("M"),
		})
	}

	resp.PaymentMethodType.Card = marshal.Some(vc)
	resp.ResponseStatus = out.status
	resp.ResponseCode = out.code
	out.response = resp
	return out, nil
}
