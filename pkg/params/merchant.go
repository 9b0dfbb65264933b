package params

import "online-payments/pkg/marshal"

// Merchant 加盟店情報
type Merchant struct {
	MerchantID           marshal.Field[string]           `json:"merchantId"`
	MerchantSoftware     marshal.Field[MerchantSoftware] `json:"merchantSoftware,required"`
	MerchantCategoryCode marshal.Field[string]           `json:"merchantCategoryCode"`
	SoftMerchant         marshal.Field[SoftMerchant]     `json:"softMerchant"`
}

// MerchantSoftware 加盟店が利用している決済ソフトウェア
type MerchantSoftware struct {
	CompanyName marshal.Field[string] `json:"companyName,required"`
	ProductName marshal.Field[string] `json:"productName,required"`
	Version     marshal.Field[string] `json:"version"`
	SoftwareID  marshal.Field[string] `json:"softwareId"`
}

// SoftMerchant 決済代行業者配下の加盟店情報
type SoftMerchant struct {
	Name                                  marshal.Field[string]  `json:"name"`
	Phone                                 marshal.Field[string]  `json:"phone"`
	Email                                 marshal.Field[string]  `json:"email"`
	URL                                   marshal.Field[string]  `json:"url"`
	Address                               marshal.Field[Address] `json:"address"`
	MerchantPurchaseDescription           marshal.Field[string]  `json:"merchantPurchaseDescription"`
	ForeignMerchantIndicator              marshal.Field[bool]    `json:"foreignMerchantIndicator"`
	VisaMerchantVerificationValueID       marshal.Field[string]  `json:"visaMerchantVerificationValueId"`
	MasterCardMerchantVerificationValueID marshal.Field[string]  `json:"masterCardMerchantVerificationValueId"`
}
