// Package models は API から受信するレスポンスペイロードを定義する。
//
// 必須フィールドは素の型で、オプショナルなフィールドは marshal.Opt で「欠落」と「null」を区別する。
// 列挙型のフィールドは未知の値を受け取っても失敗せず、生の文字列を保持する。
package models

import (
	"online-payments/pkg/currency"
	"online-payments/pkg/enums"
	"online-payments/pkg/marshal"
)

// VerificationResponse カード検証APIのレスポンス
type VerificationResponse struct {
	AccountHolder                    marshal.Opt[AccountHolder]                      `json:"accountHolder"`
	AccountOnFile                    marshal.Opt[enums.AccountOnFile]                `json:"accountOnFile"`
	ApprovalCode                     marshal.Opt[string]                             `json:"approvalCode"`
	Currency                         currency.Code                                   `json:"currency,required"`
	HostMessage                      marshal.Opt[string]                             `json:"hostMessage"`
	HostReferenceID                  marshal.Opt[string]                             `json:"hostReferenceId"`
	Information                      marshal.Opt[Information]                        `json:"information"`
	InitiatorType                    marshal.Opt[enums.InitiatorType]                `json:"initiatorType"`
	Installment                      marshal.Opt[Installment]                        `json:"installment"`
	Mandate                          marshal.Opt[Mandate]                            `json:"mandate"`
	Merchant                         marshal.Opt[Merchant]                           `json:"merchant"`
	MerchantOrderNumber              marshal.Opt[string]                             `json:"merchantOrderNumber"`
	PaymentMethodType                VerificationPaymentMethodType                   `json:"paymentMethodType,required"`
	RecurringSequence                marshal.Opt[enums.RecurringSequence]            `json:"recurringSequence"`
	RequestID                        marshal.Opt[string]                             `json:"requestId"`
	ResponseCode                     string                                          `json:"responseCode,required"`
	ResponseMessage                  string                                          `json:"responseMessage,required"`
	ResponseStatus                   enums.ResponseStatus                            `json:"responseStatus,required"`
	Risk                             marshal.Opt[Risk]                               `json:"risk"`
	SubMerchantSupplementalData      marshal.Opt[SubMerchantSupplementalData]        `json:"subMerchantSupplementalData"`
	TransactionDate                  marshal.Opt[string]                             `json:"transactionDate"`
	TransactionID                    string                                          `json:"transactionId,required"`
	TransactionRoutingOverrideList   marshal.Opt[[]enums.TransactionRoutingProvider] `json:"transactionRoutingOverrideList"`
	VerificationAuthenticationResult marshal.Opt[PaymentAuthenticationResult]        `json:"verificationAuthenticationResult"`
}

// VerificationPaymentMethodType 検証に使われた支払い手段
type VerificationPaymentMethodType struct {
	Card marshal.Opt[VerificationCard] `json:"card"`
}

// VerificationCard 検証されたカードの情報
type VerificationCard struct {
	AccountNumberType        marshal.Opt[enums.AccountNumberType]        `json:"accountNumberType"`
	CardType                 marshal.Opt[enums.CardType]                 `json:"cardType"`
	CardTypeIndicators       marshal.Opt[CardTypeIndicators]             `json:"cardTypeIndicators"`
	CardTypeName             marshal.Opt[enums.CardTypeName]             `json:"cardTypeName"`
	Expiry                   marshal.Opt[Expiry]                         `json:"expiry"`
	IsBillPayment            marshal.Opt[bool]                           `json:"isBillPayment"`
	MaskedAccountNumber      marshal.Opt[string]                         `json:"maskedAccountNumber"`
	MerchantSalesChannelName marshal.Opt[enums.MerchantSalesChannelName] `json:"merchantSalesChannelName"`
	NetworkResponse          marshal.Opt[NetworkResponse]                `json:"networkResponse"`
	PaymentTokens            marshal.Opt[[]PaymentToken]                 `json:"paymentTokens"`
	WalletCardData           marshal.Opt[WalletCardData]                 `json:"walletCardData"`
	WalletProvider           marshal.Opt[enums.WalletProvider]           `json:"walletProvider"`
}

// WalletCardData マーチャントトークンに紐づくウォレットのカード情報
type WalletCardData struct {
	CardNumberSuffix marshal.Opt[string]                     `json:"cardNumberSuffix"`
	CardMetaData     marshal.Opt[WalletCardDataCardMetaData] `json:"cardMetaData"`
}

// WalletCardDataCardMetaData カードの有効期限や末尾番号などのメタデータ
// キーは提供元ごとに異なるため、すべて Extra に保持する。
type WalletCardDataCardMetaData struct {
	Extra map[string]string `json:"-,extras"`
}

// PaymentAuthenticationResult 支払い時のカード名義人認証の結果
type PaymentAuthenticationResult struct {
	AuthenticationID          marshal.Opt[string]                   `json:"authenticationId"`
	ThreeDSCompletion         marshal.Opt[PaymentThreeDsCompletion] `json:"threeDSCompletion"`
	AuthenticationStatus      marshal.Opt[enums.ResponseStatus]     `json:"authenticationStatus"`
	ChallengeRequestIndicator marshal.Opt[string]                   `json:"challengeRequestIndicator"`
}

// PaymentThreeDsCompletion 3DS認証の完了情報
type PaymentThreeDsCompletion struct {
	AcsTransactionID                    marshal.Opt[string]                              `json:"acsTransactionId"`
	AuthenticationStatusReasonText      marshal.Opt[string]                              `json:"authenticationStatusReasonText"`
	ChallengeAuthenticationMethod       marshal.Opt[enums.ChallengeAuthenticationMethod] `json:"challengeAuthenticationMethod"`
	ChallengeAuthenticationType         marshal.Opt[enums.ChallengeAuthenticationType]   `json:"challengeAuthenticationType"`
	ElectronicCommerceIndicator         marshal.Opt[string]                              `json:"electronicCommerceIndicator"`
	ThreeDSAuthenticationValue          marshal.Opt[string]                              `json:"threeDSAuthenticationValue"`
	ThreeDSDirectoryServerTransactionID marshal.Opt[string]                              `json:"threeDSDirectoryServerTransactionId"`
	ThreeDSTransactionStatus            marshal.Opt[enums.ThreeDSTransactionStatus]      `json:"threeDSTransactionStatus"`
	ThreeDSVersion                      marshal.Opt[string]                              `json:"threeDSVersion"`
	UpdateTimestamp                     marshal.Opt[string]                              `json:"updateTimestamp"`
}
