package models

import (
	"online-payments/pkg/enums"
	"online-payments/pkg/marshal"
)

// AccountHolder カード名義人
type AccountHolder struct {
	ReferenceID    marshal.Opt[string]  `json:"referenceId"`
	FullName       marshal.Opt[string]  `json:"fullName"`
	FirstName      marshal.Opt[string]  `json:"firstName"`
	LastName       marshal.Opt[string]  `json:"lastName"`
	Email          marshal.Opt[string]  `json:"email"`
	Phone          marshal.Opt[Phone]   `json:"phone"`
	BillingAddress marshal.Opt[Address] `json:"billingAddress"`
}

// Address 住所
type Address struct {
	Line1       marshal.Opt[string] `json:"line1"`
	Line2       marshal.Opt[string] `json:"line2"`
	City        marshal.Opt[string] `json:"city"`
	State       marshal.Opt[string] `json:"state"`
	PostalCode  marshal.Opt[string] `json:"postalCode"`
	CountryCode marshal.Opt[string] `json:"countryCode"`
}

// Phone 電話番号
type Phone struct {
	CountryCode marshal.Opt[int]    `json:"countryCode"`
	PhoneNumber marshal.Opt[string] `json:"phoneNumber"`
}

// Merchant 加盟店情報
type Merchant struct {
	MerchantID           marshal.Opt[string]           `json:"merchantId"`
	MerchantSoftware     marshal.Opt[MerchantSoftware] `json:"merchantSoftware"`
	MerchantCategoryCode marshal.Opt[string]           `json:"merchantCategoryCode"`
}

// MerchantSoftware 加盟店が利用している決済ソフトウェア
type MerchantSoftware struct {
	CompanyName string              `json:"companyName,required"`
	ProductName string              `json:"productName,required"`
	Version     marshal.Opt[string] `json:"version"`
	SoftwareID  marshal.Opt[string] `json:"softwareId"`
}

// Mandate 口座振替の同意
type Mandate struct {
	MandateID     marshal.Opt[string]            `json:"mandateId"`
	MandateType   marshal.Opt[enums.MandateType] `json:"mandateType"`
	SignatureDate marshal.Opt[string]            `json:"signatureDate"`
}

// Information 情報メッセージの一覧
type Information struct {
	Message marshal.Opt[[]string] `json:"message"`
}

// Installment 分割払いの情報
type Installment struct {
	InstallmentCount  marshal.Opt[int] `json:"installmentCount"`
	TotalInstallments marshal.Opt[int] `json:"totalInstallments"`
}

// Risk リスク評価の結果
type Risk struct {
	RequestFraudScore    marshal.Opt[bool]   `json:"requestFraudScore"`
	TransactionRiskScore marshal.Opt[int]    `json:"transactionRiskScore"`
	TokenRiskScore       marshal.Opt[int]    `json:"tokenRiskScore"`
	TokenRiskReasonCodes marshal.Opt[string] `json:"tokenRiskReasonCodes"`
}

// SubMerchantSupplementalData サブ加盟店の補足データ
type SubMerchantSupplementalData struct {
	CustomData       marshal.Opt[map[string]string] `json:"customData"`
	OrderInformation marshal.Opt[string]            `json:"orderInformation"`
}

// Expiry 有効期限
type Expiry struct {
	Month int `json:"month,required"`
	Year  int `json:"year,required"`
}

// CardTypeIndicators カードの付加情報
type CardTypeIndicators struct {
	IssuanceCountryCode marshal.Opt[string]   `json:"issuanceCountryCode"`
	IsDurbinRegulated   marshal.Opt[bool]     `json:"isDurbinRegulated"`
	CardProductTypes    marshal.Opt[[]string] `json:"cardProductTypes"`
}

// NetworkResponse 決済ネットワークからの応答
type NetworkResponse struct {
	NetworkTransactionID      marshal.Opt[string] `json:"networkTransactionId"`
	AddressVerificationResult marshal.Opt[string] `json:"addressVerificationResult"`
	CardVerificationResult    marshal.Opt[string] `json:"cardVerificationResult"`
}

// PaymentToken 支払いトークン
type PaymentToken struct {
	TokenProvider  marshal.Opt[enums.TokenProvider]  `json:"tokenProvider"`
	TokenNumber    marshal.Opt[string]               `json:"tokenNumber"`
	ResponseStatus marshal.Opt[enums.ResponseStatus] `json:"responseStatus"`
}
