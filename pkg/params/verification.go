package params

import (
	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
	"online-payments/pkg/marshal"
)

// Verification カード検証リクエスト
type Verification struct {
	AccountHolder                  marshal.Field[AccountHolder]                      `json:"accountHolder"`
	AccountOnFile                  marshal.Field[enums.AccountOnFile]                `json:"accountOnFile"`
	Currency                       marshal.Field[currency.Code]                      `json:"currency"`
	InitiatorType                  marshal.Field[enums.InitiatorType]                `json:"initiatorType"`
	Mandate                        marshal.Field[Mandate]                            `json:"mandate"`
	MerchantOrderNumber            marshal.Field[string]                             `json:"merchantOrderNumber"`
	RecurringSequence              marshal.Field[enums.RecurringSequence]            `json:"recurringSequence"`
	ShipTo                         marshal.Field[FraudShipTo]                        `json:"shipTo"`
	StatementDescriptor            marshal.Field[string]                             `json:"statementDescriptor"`
	SubMerchantSupplementalData    marshal.Field[SubMerchantSupplementalData]        `json:"subMerchantSupplementalData"`
	TransactionRoutingOverrideList marshal.Field[[]enums.TransactionRoutingProvider] `json:"transactionRoutingOverrideList"`
	Merchant                       marshal.Field[Merchant]                           `json:"merchant,required"`
	PaymentMethodType              marshal.Field[VerificationPaymentMethodType]      `json:"paymentMethodType,required"`
}

// VerificationPaymentMethodType 検証に使う支払い手段
type VerificationPaymentMethodType struct {
	Card marshal.Field[VerificationCard] `json:"card"`
}

// VerificationCard カード検証のカード情報
type VerificationCard struct {
	AccountNumber                     marshal.Field[string]                         `json:"accountNumber"`
	AccountNumberType                 marshal.Field[enums.AccountNumberType]        `json:"accountNumberType"`
	Authentication                    marshal.Field[Authentication]                 `json:"authentication"`
	CardType                          marshal.Field[enums.CardType]                 `json:"cardType"`
	CardTypeIndicators                marshal.Field[CardTypeIndicators]             `json:"cardTypeIndicators"`
	CardTypeName                      marshal.Field[enums.CardTypeName]             `json:"cardTypeName"`
	CVV                               marshal.Field[string]                         `json:"cvv"`
	EncryptionIntegrityCheck          marshal.Field[string]                         `json:"encryptionIntegrityCheck"`
	Expiry                            marshal.Field[Expiry]                         `json:"expiry"`
	IsBillPayment                     marshal.Field[bool]                           `json:"isBillPayment"`
	MaskedAccountNumber               marshal.Field[string]                         `json:"maskedAccountNumber"`
	MerchantSalesChannelName          marshal.Field[enums.MerchantSalesChannelName] `json:"merchantSalesChannelName"`
	NetworkResponse                   marshal.Field[NetworkResponse]                `json:"networkResponse"`
	OriginalNetworkTransactionID      marshal.Field[string]                         `json:"originalNetworkTransactionId"`
	PaymentTokens                     marshal.Field[[]PaymentToken]                 `json:"paymentTokens"`
	TokenServiceResponseCode          marshal.Field[string]                         `json:"tokenServiceResponseCode"`
	VerificationAuthenticationRequest marshal.Field[PaymentAuthenticationRequest]   `json:"verificationAuthenticationRequest"`
	WalletProvider                    marshal.Field[enums.WalletProvider]           `json:"walletProvider"`
}

// Authentication 3-D Secure などの追加認証
type Authentication struct {
	AuthenticationID            marshal.Field[string]  `json:"authenticationId"`
	ElectronicCommerceIndicator marshal.Field[string]  `json:"electronicCommerceIndicator"`
	AuthenticationValue         marshal.Field[string]  `json:"authenticationValue"`
	ThreeDS                     marshal.Field[ThreeDS] `json:"threeDS"`
	TokenAuthenticationValue    marshal.Field[string]  `json:"tokenAuthenticationValue"`
}

// ThreeDS 3-D Secure の認証結果
type ThreeDS struct {
	ThreeDSProgramProtocol              marshal.Field[string]                         `json:"threeDSProgramProtocol"`
	ThreeDSTransactionStatus            marshal.Field[enums.ThreeDSTransactionStatus] `json:"threeDSTransactionStatus"`
	ThreeDSDirectoryServerTransactionID marshal.Field[string]                         `json:"threeDSDirectoryServerTransactionId"`
}

// CardTypeIndicators カードの付加情報 (プリペイド、商用カードなど)
type CardTypeIndicators struct {
	IssuanceCountryCode marshal.Field[string]   `json:"issuanceCountryCode"`
	IsDurbinRegulated   marshal.Field[bool]     `json:"isDurbinRegulated"`
	CardProductTypes    marshal.Field[[]string] `json:"cardProductTypes"`
	CardProductName     marshal.Field[string]   `json:"cardProductName"`
}

// NetworkResponse 決済ネットワークからの応答
type NetworkResponse struct {
	NetworkTransactionID      marshal.Field[string] `json:"networkTransactionId"`
	AddressVerificationResult marshal.Field[string] `json:"addressVerificationResult"`
	CardVerificationResult    marshal.Field[string] `json:"cardVerificationResult"`
	PaymentAccountReference   marshal.Field[string] `json:"paymentAccountReference"`
}

// PaymentToken 支払いトークン
type PaymentToken struct {
	TokenProvider  marshal.Field[enums.TokenProvider]  `json:"tokenProvider"`
	TokenNumber    marshal.Field[string]               `json:"tokenNumber"`
	Expiry         marshal.Field[Expiry]               `json:"expiry"`
	ResponseStatus marshal.Field[enums.ResponseStatus] `json:"responseStatus"`
}

// PaymentAuthenticationRequest 支払い時に要求する認証
type PaymentAuthenticationRequest struct {
	AuthenticationChannelType marshal.Field[string] `json:"authenticationChannelType"`
	AuthenticationReturnURL   marshal.Field[string] `json:"authenticationReturnUrl"`
	AuthenticationType        marshal.Field[string] `json:"authenticationType"`
}
