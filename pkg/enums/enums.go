// Package enums は API で使われる閉じた文字列集合を定義する。
//
// 各型は IsKnown と Members を持ち、送信時には未知の値が拒否され、受信時には未知の値も生の文字列として保持される。
package enums

// AccountOnFile 支払い手段を加盟店が保存しているかどうか
type AccountOnFile string

const (
	AccountOnFileNotStored  AccountOnFile = "NOT_STORED"
	AccountOnFileStored     AccountOnFile = "STORED"
	AccountOnFileToBeStored AccountOnFile = "TO_BE_STORED"
)

// IsKnown 既知の値かどうかを返す
func (e AccountOnFile) IsKnown() bool {
	switch e {
	case AccountOnFileNotStored, AccountOnFileStored, AccountOnFileToBeStored:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e AccountOnFile) Members() []string {
	return []string{"NOT_STORED", "STORED", "TO_BE_STORED"}
}

// InitiatorType クレデンシャル・オン・ファイル取引の起点 (MIT/CIT)
type InitiatorType string

const (
	InitiatorTypeCardholder InitiatorType = "CARDHOLDER"
	InitiatorTypeMerchant   InitiatorType = "MERCHANT"
)

// IsKnown 既知の値かどうかを返す
func (e InitiatorType) IsKnown() bool {
	switch e {
	case InitiatorTypeCardholder, InitiatorTypeMerchant:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e InitiatorType) Members() []string {
	return []string{"CARDHOLDER", "MERCHANT"}
}

// RecurringSequence 定期支払いの何回目か
type RecurringSequence string

const (
	RecurringSequenceFirst      RecurringSequence = "FIRST"
	RecurringSequenceSubsequent RecurringSequence = "SUBSEQUENT"
)

// IsKnown 既知の値かどうかを返す
func (e RecurringSequence) IsKnown() bool {
	switch e {
	case RecurringSequenceFirst, RecurringSequenceSubsequent:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e RecurringSequence) Members() []string {
	return []string{"FIRST", "SUBSEQUENT"}
}

// ResponseStatus APIリクエストの結果
type ResponseStatus string

const (
	ResponseStatusDenied  ResponseStatus = "DENIED"
	ResponseStatusError   ResponseStatus = "ERROR"
	ResponseStatusSuccess ResponseStatus = "SUCCESS"
)

// IsKnown 既知の値かどうかを返す
func (e ResponseStatus) IsKnown() bool {
	switch e {
	case ResponseStatusDenied, ResponseStatusError, ResponseStatusSuccess:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e ResponseStatus) Members() []string {
	return []string{"DENIED", "ERROR", "SUCCESS"}
}

// TransactionRoutingProvider 取引のルーティング先プロバイダー
type TransactionRoutingProvider string

const (
	TransactionRoutingProviderCielo    TransactionRoutingProvider = "CIELO"
	TransactionRoutingProviderGetnet   TransactionRoutingProvider = "GETNET"
	TransactionRoutingProviderRedecard TransactionRoutingProvider = "REDECARD"
	TransactionRoutingProviderStone    TransactionRoutingProvider = "STONE"
)

// IsKnown 既知の値かどうかを返す
func (e TransactionRoutingProvider) IsKnown() bool {
	switch e {
	case TransactionRoutingProviderCielo, TransactionRoutingProviderGetnet, TransactionRoutingProviderRedecard, TransactionRoutingProviderStone:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e TransactionRoutingProvider) Members() []string {
	return []string{"CIELO", "GETNET", "REDECARD", "STONE"}
}

// AccountNumberType アカウント番号の種類
type AccountNumberType string

const (
	AccountNumberTypeDeviceToken            AccountNumberType = "DEVICE_TOKEN"
	AccountNumberTypeNetworkToken           AccountNumberType = "NETWORK_TOKEN"
	AccountNumberTypePAN                    AccountNumberType = "PAN"
	AccountNumberTypeSafetechPageEncryption AccountNumberType = "SAFETECH_PAGE_ENCRYPTION"
	AccountNumberTypeSafetechToken          AccountNumberType = "SAFETECH_TOKEN"
)

// IsKnown 既知の値かどうかを返す
func (e AccountNumberType) IsKnown() bool {
	switch e {
	case AccountNumberTypeDeviceToken, AccountNumberTypeNetworkToken, AccountNumberTypePAN, AccountNumberTypeSafetechPageEncryption, AccountNumberTypeSafetechToken:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e AccountNumberType) Members() []string {
	return []string{"DEVICE_TOKEN", "NETWORK_TOKEN", "PAN", "SAFETECH_PAGE_ENCRYPTION", "SAFETECH_TOKEN"}
}

// CardType カードブランドの略称
type CardType string

const (
	CardTypeAP CardType = "AP"
	CardTypeAX CardType = "AX"
	CardTypeCC CardType = "CC"
	CardTypeCR CardType = "CR"
	CardTypeCZ CardType = "CZ"
	CardTypeDC CardType = "DC"
	CardTypeDI CardType = "DI"
	CardTypeEP CardType = "EP"
	CardTypeIM CardType = "IM"
	CardTypeJC CardType = "JC"
	CardTypeMC CardType = "MC"
	CardTypeMR CardType = "MR"
	CardTypeNP CardType = "NP"
	CardTypePP CardType = "PP"
	CardTypeSP CardType = "SP"
	CardTypeVI CardType = "VI"
	CardTypeVR CardType = "VR"
)

// IsKnown 既知の値かどうかを返す
func (e CardType) IsKnown() bool {
	switch e {
	case CardTypeAP, CardTypeAX, CardTypeCC, CardTypeCR, CardTypeCZ, CardTypeDC, CardTypeDI, CardTypeEP, CardTypeIM, CardTypeJC, CardTypeMC, CardTypeMR, CardTypeNP, CardTypePP, CardTypeSP, CardTypeVI, CardTypeVR:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e CardType) Members() []string {
	return []string{"AP", "AX", "CC", "CR", "CZ", "DC", "DI", "EP", "IM", "JC", "MC", "MR", "NP", "PP", "SP", "VI", "VR"}
}

// CardTypeName 決済ネットワーク名
type CardTypeName string

const (
	CardTypeNameAccelPinless              CardTypeName = "ACCEL_PINLESS"
	CardTypeNameAmericanExpress           CardTypeName = "AMERICAN_EXPRESS"
	CardTypeNameChasenetCredit            CardTypeName = "CHASENET_CREDIT"
	CardTypeNameChasenetSignatureDebit    CardTypeName = "CHASENET_SIGNATURE_DEBIT"
	CardTypeNameChinaUnionPay             CardTypeName = "CHINA_UNION_PAY"
	CardTypeNameDinersClub                CardTypeName = "DINERS_CLUB"
	CardTypeNameDiscover                  CardTypeName = "DISCOVER"
	CardTypeNameEftposPinless             CardTypeName = "EFTPOS_PINLESS"
	CardTypeNameInternationalMaestro      CardTypeName = "INTERNATIONAL_MAESTRO"
	CardTypeNameJCB                       CardTypeName = "JCB"
	CardTypeNameMastercard                CardTypeName = "MASTERCARD"
	CardTypeNameMastercardRestrictedDebit CardTypeName = "MASTERCARD_RESTRICTED_DEBIT"
	CardTypeNameNycePinless               CardTypeName = "NYCE_PINLESS"
	CardTypeNamePulsePinless              CardTypeName = "PULSE_PINLESS"
	CardTypeNameStarPinless               CardTypeName = "STAR_PINLESS"
	CardTypeNameVisa                      CardTypeName = "VISA"
	CardTypeNameVisaRestrictedDebit       CardTypeName = "VISA_RESTRICTED_DEBIT"
)

// IsKnown 既知の値かどうかを返す
func (e CardTypeName) IsKnown() bool {
	switch e {
	case CardTypeNameAccelPinless, CardTypeNameAmericanExpress, CardTypeNameChasenetCredit, CardTypeNameChasenetSignatureDebit, CardTypeNameChinaUnionPay, CardTypeNameDinersClub, CardTypeNameDiscover, CardTypeNameEftposPinless, CardTypeNameInternationalMaestro, CardTypeNameJCB, CardTypeNameMastercard, CardTypeNameMastercardRestrictedDebit, CardTypeNameNycePinless, CardTypeNamePulsePinless, CardTypeNameStarPinless, CardTypeNameVisa, CardTypeNameVisaRestrictedDebit:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e CardTypeName) Members() []string {
	return []string{"ACCEL_PINLESS", "AMERICAN_EXPRESS", "CHASENET_CREDIT", "CHASENET_SIGNATURE_DEBIT", "CHINA_UNION_PAY", "DINERS_CLUB", "DISCOVER", "EFTPOS_PINLESS", "INTERNATIONAL_MAESTRO", "JCB", "MASTERCARD", "MASTERCARD_RESTRICTED_DEBIT", "NYCE_PINLESS", "PULSE_PINLESS", "STAR_PINLESS", "VISA", "VISA_RESTRICTED_DEBIT"}
}

// MerchantSalesChannelName 加盟店の販売チャネル
type MerchantSalesChannelName string

const (
	MerchantSalesChannelNameInteractiveVoiceResponse MerchantSalesChannelName = "INTERACTIVE_VOICE_RESPONSE"
	MerchantSalesChannelNameInternet                 MerchantSalesChannelName = "INTERNET"
	MerchantSalesChannelNameMailOrderTelephoneOrder  MerchantSalesChannelName = "MAIL_ORDER_TELEPHONE_ORDER"
)

// IsKnown 既知の値かどうかを返す
func (e MerchantSalesChannelName) IsKnown() bool {
	switch e {
	case MerchantSalesChannelNameInteractiveVoiceResponse, MerchantSalesChannelNameInternet, MerchantSalesChannelNameMailOrderTelephoneOrder:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e MerchantSalesChannelName) Members() []string {
	return []string{"INTERACTIVE_VOICE_RESPONSE", "INTERNET", "MAIL_ORDER_TELEPHONE_ORDER"}
}

// WalletProvider 電子ウォレットの提供者
type WalletProvider string

const (
	WalletProviderApplePay  WalletProvider = "APPLE_PAY"
	WalletProviderGooglePay WalletProvider = "GOOGLE_PAY"
)

// IsKnown 既知の値かどうかを返す
func (e WalletProvider) IsKnown() bool {
	switch e {
	case WalletProviderApplePay, WalletProviderGooglePay:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e WalletProvider) Members() []string {
	return []string{"APPLE_PAY", "GOOGLE_PAY"}
}

// ChallengeAuthenticationMethod 3DSチャレンジでの認証方法
type ChallengeAuthenticationMethod string

const (
	ChallengeAuthenticationMethodAppOTP           ChallengeAuthenticationMethod = "APP_OTP"
	ChallengeAuthenticationMethodKBA              ChallengeAuthenticationMethod = "KBA"
	ChallengeAuthenticationMethodKeyFob           ChallengeAuthenticationMethod = "KEY_FOB"
	ChallengeAuthenticationMethodOOBBiometrics    ChallengeAuthenticationMethod = "OOB_BIOMETRICS"
	ChallengeAuthenticationMethodOOBLogin         ChallengeAuthenticationMethod = "OOB_LOGIN"
	ChallengeAuthenticationMethodOOBOther         ChallengeAuthenticationMethod = "OOB_OTHER"
	ChallengeAuthenticationMethodOther            ChallengeAuthenticationMethod = "OTHER"
	ChallengeAuthenticationMethodOTPOther         ChallengeAuthenticationMethod = "OTP_OTHER"
	ChallengeAuthenticationMethodPushConfirmation ChallengeAuthenticationMethod = "PUSH_CONFIRMATION"
	ChallengeAuthenticationMethodSMSOTP           ChallengeAuthenticationMethod = "SMS_OTP"
	ChallengeAuthenticationMethodStaticPasscode   ChallengeAuthenticationMethod = "STATIC_PASSCODE"
)

// IsKnown 既知の値かどうかを返す
func (e ChallengeAuthenticationMethod) IsKnown() bool {
	switch e {
	case ChallengeAuthenticationMethodAppOTP, ChallengeAuthenticationMethodKBA, ChallengeAuthenticationMethodKeyFob, ChallengeAuthenticationMethodOOBBiometrics, ChallengeAuthenticationMethodOOBLogin, ChallengeAuthenticationMethodOOBOther, ChallengeAuthenticationMethodOther, ChallengeAuthenticationMethodOTPOther, ChallengeAuthenticationMethodPushConfirmation, ChallengeAuthenticationMethodSMSOTP, ChallengeAuthenticationMethodStaticPasscode:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e ChallengeAuthenticationMethod) Members() []string {
	return []string{"APP_OTP", "KBA", "KEY_FOB", "OOB_BIOMETRICS", "OOB_LOGIN", "OOB_OTHER", "OTHER", "OTP_OTHER", "PUSH_CONFIRMATION", "SMS_OTP", "STATIC_PASSCODE"}
}

// ChallengeAuthenticationType 3DSチャレンジの種類
type ChallengeAuthenticationType string

const (
	ChallengeAuthenticationTypeDecoupled ChallengeAuthenticationType = "DECOUPLED"
	ChallengeAuthenticationTypeDynamic   ChallengeAuthenticationType = "DYNAMIC"
	ChallengeAuthenticationTypeOOB       ChallengeAuthenticationType = "OOB"
	ChallengeAuthenticationTypeStatic    ChallengeAuthenticationType = "STATIC"
)

// IsKnown 既知の値かどうかを返す
func (e ChallengeAuthenticationType) IsKnown() bool {
	switch e {
	case ChallengeAuthenticationTypeDecoupled, ChallengeAuthenticationTypeDynamic, ChallengeAuthenticationTypeOOB, ChallengeAuthenticationTypeStatic:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e ChallengeAuthenticationType) Members() []string {
	return []string{"DECOUPLED", "DYNAMIC", "OOB", "STATIC"}
}

// ThreeDSTransactionStatus 3DS認証の結果
type ThreeDSTransactionStatus string

const (
	ThreeDSTransactionStatusAttempted          ThreeDSTransactionStatus = "A"
	ThreeDSTransactionStatusChallengeRequired  ThreeDSTransactionStatus = "C"
	ThreeDSTransactionStatusDecoupledChallenge ThreeDSTransactionStatus = "D"
	ThreeDSTransactionStatusInformational      ThreeDSTransactionStatus = "I"
	ThreeDSTransactionStatusNotAuthenticated   ThreeDSTransactionStatus = "N"
	ThreeDSTransactionStatusRejected           ThreeDSTransactionStatus = "R"
	ThreeDSTransactionStatusUnavailable        ThreeDSTransactionStatus = "U"
	ThreeDSTransactionStatusAuthenticated      ThreeDSTransactionStatus = "Y"
)

// IsKnown 既知の値かどうかを返す
func (e ThreeDSTransactionStatus) IsKnown() bool {
	switch e {
	case ThreeDSTransactionStatusAttempted, ThreeDSTransactionStatusChallengeRequired, ThreeDSTransactionStatusDecoupledChallenge, ThreeDSTransactionStatusInformational, ThreeDSTransactionStatusNotAuthenticated, ThreeDSTransactionStatusRejected, ThreeDSTransactionStatusUnavailable, ThreeDSTransactionStatusAuthenticated:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e ThreeDSTransactionStatus) Members() []string {
	return []string{"A", "C", "D", "I", "N", "R", "U", "Y"}
}

// TransactionState 取引の状態
type TransactionState string

const (
	TransactionStateAuthorized TransactionState = "AUTHORIZED"
	TransactionStateClosed     TransactionState = "CLOSED"
	TransactionStateCompleted  TransactionState = "COMPLETED"
	TransactionStateDeclined   TransactionState = "DECLINED"
	TransactionStateError      TransactionState = "ERROR"
	TransactionStatePending    TransactionState = "PENDING"
	TransactionStateVoided     TransactionState = "VOIDED"
)

// IsKnown 既知の値かどうかを返す
func (e TransactionState) IsKnown() bool {
	switch e {
	case TransactionStateAuthorized, TransactionStateClosed, TransactionStateCompleted, TransactionStateDeclined, TransactionStateError, TransactionStatePending, TransactionStateVoided:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e TransactionState) Members() []string {
	return []string{"AUTHORIZED", "CLOSED", "COMPLETED", "DECLINED", "ERROR", "PENDING", "VOIDED"}
}

// TokenProvider 支払いトークンの発行者
type TokenProvider string

const (
	TokenProviderNetwork  TokenProvider = "NETWORK"
	TokenProviderSafetech TokenProvider = "SAFETECH"
)

// IsKnown 既知の値かどうかを返す
func (e TokenProvider) IsKnown() bool {
	switch e {
	case TokenProviderNetwork, TokenProviderSafetech:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e TokenProvider) Members() []string {
	return []string{"NETWORK", "SAFETECH"}
}

// MandateType 口座振替の同意形式
type MandateType string

const (
	MandateTypeOnline  MandateType = "ONLINE"
	MandateTypeWritten MandateType = "WRITTEN"
)

// IsKnown 既知の値かどうかを返す
func (e MandateType) IsKnown() bool {
	switch e {
	case MandateTypeOnline, MandateTypeWritten:
		return true
	}
	return false
}

// Members 許可値の一覧を返す
func (e MandateType) Members() []string {
	return []string{"ONLINE", "WRITTEN"}
}
