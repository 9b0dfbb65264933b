package models

import (
	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
	"online-payments/pkg/marshal"
)

// RefundResponse 返金APIのレスポンス
type RefundResponse struct {
	TransactionID               string                                   `json:"transactionId,required"`
	RequestID                   string                                   `json:"requestId,required"`
	TransactionState            enums.TransactionState                   `json:"transactionState,required"`
	ResponseStatus              enums.ResponseStatus                     `json:"responseStatus,required"`
	ResponseCode                string                                   `json:"responseCode,required"`
	ResponseMessage             string                                   `json:"responseMessage,required"`
	Amount                      marshal.Opt[int64]                       `json:"amount"`
	Currency                    marshal.Opt[currency.Code]               `json:"currency"`
	HostMessage                 marshal.Opt[string]                      `json:"hostMessage"`
	ApprovalCode                marshal.Opt[string]                      `json:"approvalCode"`
	TransactionDate             marshal.Opt[string]                      `json:"transactionDate"`
	TransactionReferenceID      marshal.Opt[string]                      `json:"transactionReferenceId"`
	RemainingRefundableAmount   marshal.Opt[int64]                       `json:"remainingRefundableAmount"`
	MerchantOrderNumber         marshal.Opt[string]                      `json:"merchantOrderNumber"`
	AccountHolder               marshal.Opt[AccountHolder]               `json:"accountHolder"`
	Merchant                    marshal.Opt[Merchant]                    `json:"merchant"`
	PaymentMethodType           marshal.Opt[RefundPaymentMethodType]     `json:"paymentMethodType"`
	Information                 marshal.Opt[Information]                 `json:"information"`
	SubMerchantSupplementalData marshal.Opt[SubMerchantSupplementalData] `json:"subMerchantSupplementalData"`
}

// RefundPaymentMethodType 返金に使われた支払い手段
type RefundPaymentMethodType struct {
	Card                 marshal.Opt[RefundCard]           `json:"card"`
	TransactionReference marshal.Opt[TransactionReference] `json:"transactionReference"`
}

// RefundCard 返金されたカード
type RefundCard struct {
	CardType            marshal.Opt[enums.CardType]     `json:"cardType"`
	CardTypeName        marshal.Opt[enums.CardTypeName] `json:"cardTypeName"`
	MaskedAccountNumber marshal.Opt[string]             `json:"maskedAccountNumber"`
	Expiry              marshal.Opt[Expiry]             `json:"expiry"`
	NetworkResponse     marshal.Opt[NetworkResponse]    `json:"networkResponse"`
}

// TransactionReference 返金対象の元取引
type TransactionReference struct {
	TransactionReferenceID string `json:"transactionReferenceId,required"`
}
