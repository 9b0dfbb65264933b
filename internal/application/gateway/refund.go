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

// 返金の応答コード
const (
	RefundCodeApproved        = "APPROVED"
	RefundCodeDeclined        = "DECLINED"
	RefundCodeExceedsOriginal = "REFUND_EXCEEDS_ORIGINAL"
)

// CreateRefund 返金を作成
//
// 金額の最小単位の下2桁が05の返金は発行体に拒否される。
// 元取引を指定した返金は、完了済みの返金額との合計が上限を超えると拒否される。
func (s *Service) CreateRefund(ctx context.Context, req *CreateRequest) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "Service.CreateRefund")
	defer span.End()

	span.SetAttributes(
		attribute.String("merchant_id", req.MerchantID),
		attribute.String("request_id", req.RequestID),
	)

	s.logger.Info(ctx, "Processing refund", map[string]interface{}{
		"merchant_id": req.MerchantID,
		"request_id":  req.RequestID,
	})

	return s.create(ctx, span, transaction.TransactionTypeRefund, req, func(ctx context.Context, transactionID string) (*outcome, error) {
		var refund params.Refund
		if err := decodeBody(req.Body, &refund); err != nil {
			return nil, err
		}
		out, err := s.decideRefund(ctx, req, transactionID, &refund)
		if err != nil {
			return nil, err
		}
		s.metrics.RecordRefund(ctx, out.currency.String(), string(out.state), out.amount)
		return out, nil
	})
}

// GetRefund リクエストIDで返金を取得
func (s *Service) GetRefund(ctx context.Context, req *GetRequest) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "Service.GetRefund")
	defer span.End()

	span.SetAttributes(
		attribute.String("merchant_id", req.MerchantID),
		attribute.String("request_identifier", req.RequestIdentifier),
	)

	return s.findByRequest(ctx, span, transaction.TransactionTypeRefund, req)
}

// GetRefundByID 取引IDで返金を取得
func (s *Service) GetRefundByID(ctx context.Context, req *GetByIDRequest) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "Service.GetRefundByID")
	defer span.End()

	span.SetAttributes(
		attribute.String("merchant_id", req.MerchantID),
		attribute.String("transaction_id", req.TransactionID),
	)

	return s.find(ctx, span, transaction.TransactionTypeRefund, req)
}

func (s *Service) decideRefund(ctx context.Context, req *CreateRequest, transactionID string, refund *params.Refund) (*outcome, error) {
	amount, ok := refund.Amount.Get()
	if !ok {
		return nil, invalid(CodeMissingField, "amount is required")
	}
	if amount <= 0 || amount > transaction.MaxAmount {
		return nil, invalid(CodeInvalidAmount, "amount must be between 1 and %d", int64(transaction.MaxAmount))
	}

	pm, _ := refund.PaymentMethodType.Get()
	ref, hasRef := pm.TransactionReference.Get()
	card, hasCard := pm.Card.Get()

	resp := models.RefundResponse{
		TransactionID:   transactionID,
		RequestID:       req.RequestID,
		Amount:          marshal.Some(amount),
		TransactionDate: marshal.Some(s.transactionDate()),
	}
	if orderNumber, ok := refund.MerchantOrderNumber.Get(); ok {
		resp.MerchantOrderNumber = marshal.Some(orderNumber)
	}
	if merchant, ok := refund.Merchant.Get(); ok {
		resp.Merchant = marshal.Some(echoMerchant(merchant))
	}

	out := &outcome{amount: amount}

	switch {
	case hasRef && hasCard:
		return nil, invalid(CodeInvalidRequest, "paymentMethodType must contain only one of card or transactionReference")
	case hasRef:
		referenceID, _ := ref.TransactionReferenceID.Get()
		out.referenceID = referenceID
		out.currency = refund.Currency.ValueOr(currency.USD)
		resp.TransactionReferenceID = marshal.Some(referenceID)
		resp.PaymentMethodType = marshal.Some(models.RefundPaymentMethodType{
			TransactionReference: marshal.Some(models.TransactionReference{TransactionReferenceID: referenceID}),
		})
	case hasCard:
		number, ok := card.AccountNumber.Get()
		if !ok || number == "" {
			return nil, invalid(CodeMissingField, "paymentMethodType.card.accountNumber is required")
		}
		code, ok := refund.Currency.Get()
		if !ok {
			return nil, invalid(CodeMissingField, "currency is required for a standalone refund")
		}
		out.currency = code
		resp.PaymentMethodType = marshal.Some(models.RefundPaymentMethodType{
			Card: marshal.Some(refundCard(number, card)),
		})
	default:
		return nil, invalid(CodeMissingField, "paymentMethodType.card or paymentMethodType.transactionReference is required")
	}
	resp.Currency = marshal.Some(out.currency)

	if amount%100 == 5 {
		out.state, out.status, out.code = enums.TransactionStateDeclined, enums.ResponseStatusDenied, RefundCodeDeclined
		resp.ResponseMessage = "Transaction declined by issuer"
		resp.HostMessage = marshal.Some("Declined")
		return s.finishRefund(out, resp), nil
	}

	if out.referenceID != "" {
		refunded, err := s.transactionRepo.SumRefundedByReference(ctx, req.MerchantID, out.referenceID)
		if err != nil {
			return nil, err
		}
		remaining := s.refundCeiling - refunded
		if amount > remaining {
			out.state, out.status, out.code = enums.TransactionStateDeclined, enums.ResponseStatusDenied, RefundCodeExceedsOriginal
			resp.ResponseMessage = "Refund amount exceeds the remaining refundable amount"
			resp.RemainingRefundableAmount = marshal.Some(max(remaining, 0))
			return s.finishRefund(out, resp), nil
		}
		resp.RemainingRefundableAmount = marshal.Some(remaining - amount)
	}

	out.state, out.status, out.code = enums.TransactionStateCompleted, enums.ResponseStatusSuccess, RefundCodeApproved
	resp.ResponseMessage = "Transaction approved by Issuer"
	resp.HostMessage = marshal.Some("Approved")
	resp.ApprovalCode = marshal.Some(approvalCode(transactionID))
	return s.finishRefund(out, resp), nil
}

func (s *Service) finishRefund(out *outcome, resp models.RefundResponse) *outcome {
	resp.TransactionState = out.state
	resp.ResponseStatus = out.status
	resp.ResponseCode = out.code
	out.response = resp
	return out
}

func refundCard(number string, card params.RefundCard) models.RefundCard {
	rc := models.RefundCard{MaskedAccountNumber: marshal.Some(maskAccountNumber(number))}
	if cardType, ok := card.CardType.Get(); ok {
		rc.CardType = marshal.Some(cardType)
	} else if brand := cardBrand(number); brand != "" {
		rc.CardType = marshal.Some(brand)
	}
	if expiry, ok := card.Expiry.Get(); ok {
		month, _ := expiry.Month.Get()
		year, _ := expiry.Year.Get()
		rc.Expiry = marshal.Some(models.Expiry{Month: month, Year: year})
	}
	return rc
}

func echoMerchant(m params.Merchant) models.Merchant {
	var out models.Merchant
	if id, ok := m.MerchantID.Get(); ok {
		out.MerchantID = marshal.Some(id)
	}
	if mcc, ok := m.MerchantCategoryCode.Get(); ok {
		out.MerchantCategoryCode = marshal.Some(mcc)
	}
	if sw, ok := m.MerchantSoftware.Get(); ok {
		company, _ := sw.CompanyName.Get()
		product, _ := sw.ProductName.Get()
		ms := models.MerchantSoftware{CompanyName: company, ProductName: product}
		if version, ok := sw.Version.Get(); ok {
			ms.Version = marshal.Some(version)
		}
		out.MerchantSoftware = marshal.Some(ms)
	}
	return out
}
