// Package params は API に送信するリクエストペイロードを定義する。
//
// すべてのフィールドは marshal.Field で、ゼロ値 (NotGiven) のフィールドはワイヤーに含まれない。
package params

import (
	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
	"online-payments/pkg/marshal"
)

// Refund 返金リクエスト
// 既存の支払いへの返金は paymentMethodType.transactionReference を、単独返金は注文と支払い手段を送る。
type Refund struct {
	AccountHolder               marshal.Field[AccountHolder]               `json:"accountHolder"`
	AccountOnFile               marshal.Field[enums.AccountOnFile]         `json:"accountOnFile"`
	Amount                      marshal.Field[int64]                       `json:"amount"`
	CaptureID                   marshal.Field[string]                      `json:"captureId"`
	Currency                    marshal.Field[currency.Code]               `json:"currency"`
	InitiatorType               marshal.Field[enums.InitiatorType]         `json:"initiatorType"`
	Mandate                     marshal.Field[Mandate]                     `json:"mandate"`
	MerchantDefined             marshal.Field[MerchantDefined]             `json:"merchantDefined"`
	MerchantOrderNumber         marshal.Field[string]                      `json:"merchantOrderNumber"`
	PaymentMetadataList         marshal.Field[[]PaymentMetadata]           `json:"paymentMetadataList"`
	PaymentMethodType           marshal.Field[RefundPaymentMethodType]     `json:"paymentMethodType"`
	PaymentRequestID            marshal.Field[string]                      `json:"paymentRequestId"`
	PointOfInteraction          marshal.Field[PointOfInteraction]          `json:"pointOfInteraction"`
	RestaurantAddenda           marshal.Field[RestaurantAddenda]           `json:"restaurantAddenda"`
	RetailAddenda               marshal.Field[RetailAddenda]               `json:"retailAddenda"`
	StatementDescriptor         marshal.Field[string]                      `json:"statementDescriptor"`
	SubMerchantSupplementalData marshal.Field[SubMerchantSupplementalData] `json:"subMerchantSupplementalData"`
	Merchant                    marshal.Field[Merchant]                    `json:"merchant,required"`
}

// RefundPaymentMethodType 返金に使う支払い手段 (いずれか一つ)
type RefundPaymentMethodType struct {
	Card                 marshal.Field[RefundCard]           `json:"card"`
	TransactionReference marshal.Field[TransactionReference] `json:"transactionReference"`
	Giropay              marshal.Field[Giropay]              `json:"giropay"`
}

// RefundCard 単独返金のカード情報
type RefundCard struct {
	AccountNumber            marshal.Field[string]                         `json:"accountNumber"`
	AccountNumberType        marshal.Field[enums.AccountNumberType]        `json:"accountNumberType"`
	CardType                 marshal.Field[enums.CardType]                 `json:"cardType"`
	Expiry                   marshal.Field[Expiry]                         `json:"expiry"`
	IsBillPayment            marshal.Field[bool]                           `json:"isBillPayment"`
	MaskedAccountNumber      marshal.Field[string]                         `json:"maskedAccountNumber"`
	MerchantSalesChannelName marshal.Field[enums.MerchantSalesChannelName] `json:"merchantSalesChannelName"`
	WalletProvider           marshal.Field[enums.WalletProvider]           `json:"walletProvider"`
}

// TransactionReference 返金対象の元取引
type TransactionReference struct {
	TransactionReferenceID marshal.Field[string] `json:"transactionReferenceId,required"`
}

// Expiry 有効期限
type Expiry struct {
	Month marshal.Field[int] `json:"month,required"`
	Year  marshal.Field[int] `json:"year,required"`
}

// PaymentMetadata 支払いに付与するキーと値の組
type PaymentMetadata struct {
	MetadataKey   marshal.Field[string] `json:"metadataKey"`
	MetadataValue marshal.Field[string] `json:"metadataValue"`
}

// MerchantDefined レポートにそのまま渡される加盟店定義データ
type MerchantDefined struct {
	MerchantDefinedData marshal.Field[string] `json:"merchantDefinedData"`
}

// PointOfInteraction 対面決済の端末情報
type PointOfInteraction struct {
	DeviceReference              marshal.Field[string] `json:"deviceReference"`
	InPersonIndicator            marshal.Field[bool]   `json:"inPersonIndicator"`
	TerminalID                   marshal.Field[string] `json:"terminalId"`
	EntryMethod                  marshal.Field[string] `json:"entryMethod"`
	CardholderVerificationMethod marshal.Field[string] `json:"cardholderVerificationMethod"`
}

// RestaurantAddenda 飲食店向けの追加情報
type RestaurantAddenda struct {
	HospitalityCategory marshal.Field[string] `json:"hospitalityCategory"`
	TipAmount           marshal.Field[int64]  `json:"tipAmount"`
	TaxAmount           marshal.Field[int64]  `json:"taxAmount"`
	ServerNumber        marshal.Field[string] `json:"serverNumber"`
}

// RetailAddenda 小売向けの追加情報
type RetailAddenda struct {
	PurchaseOrderNumber marshal.Field[string] `json:"purchaseOrderNumber"`
	OrderDate           marshal.Field[string] `json:"orderDate"`
	TaxAmount           marshal.Field[int64]  `json:"taxAmount"`
	IsTaxable           marshal.Field[bool]   `json:"isTaxable"`
}

// SubMerchantSupplementalData サブ加盟店の補足データ
type SubMerchantSupplementalData struct {
	CustomData       marshal.Field[map[string]string] `json:"customData"`
	OrderInformation marshal.Field[string]            `json:"orderInformation"`
}

// Mandate 消費者・銀行・加盟店間の口座振替同意
type Mandate struct {
	MandateID     marshal.Field[string]            `json:"mandateId"`
	MandateType   marshal.Field[enums.MandateType] `json:"mandateType"`
	SignatureDate marshal.Field[string]            `json:"signatureDate"`
}
