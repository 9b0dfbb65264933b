package params

import "online-payments/pkg/marshal"

// AccountHolder カード名義人
type AccountHolder struct {
	ReferenceID            marshal.Field[string]  `json:"referenceId"`
	ConsumerIDCreationDate marshal.Field[string]  `json:"consumerIdCreationDate"`
	FullName               marshal.Field[string]  `json:"fullName"`
	FirstName              marshal.Field[string]  `json:"firstName"`
	MiddleName             marshal.Field[string]  `json:"middleName"`
	LastName               marshal.Field[string]  `json:"lastName"`
	Email                  marshal.Field[string]  `json:"email"`
	IPAddress              marshal.Field[string]  `json:"IPAddress"`
	Phone                  marshal.Field[Phone]   `json:"phone"`
	BillingAddress         marshal.Field[Address] `json:"billingAddress"`
	BirthDate              marshal.Field[string]  `json:"birthDate"`
	TaxID                  marshal.Field[string]  `json:"taxId"`
}

// Address 住所
type Address struct {
	Line1        marshal.Field[string]   `json:"line1"`
	Line2        marshal.Field[string]   `json:"line2"`
	AddressLines marshal.Field[[]string] `json:"addressLines"`
	City         marshal.Field[string]   `json:"city"`
	State        marshal.Field[string]   `json:"state"`
	PostalCode   marshal.Field[string]   `json:"postalCode"`
	CountryCode  marshal.Field[string]   `json:"countryCode"`
}

// Phone 電話番号
type Phone struct {
	CountryCode marshal.Field[int]    `json:"countryCode"`
	PhoneNumber marshal.Field[string] `json:"phoneNumber"`
}

// FraudShipTo 不正検知に使う配送先情報
type FraudShipTo struct {
	FirstName           marshal.Field[string]  `json:"firstName"`
	FullName            marshal.Field[string]  `json:"fullName"`
	LastName            marshal.Field[string]  `json:"lastName"`
	MiddleName          marshal.Field[string]  `json:"middleName"`
	Phone               marshal.Field[Phone]   `json:"phone"`
	ShippingAddress     marshal.Field[Address] `json:"shippingAddress"`
	ShippingDescription marshal.Field[string]  `json:"shippingDescription"`
}

// Giropay ドイツのオンラインバンキング決済
type Giropay struct {
	CompletionTime    marshal.Field[string]            `json:"completionTime"`
	CreationTime      marshal.Field[string]            `json:"creationTime"`
	PreferredLanguage marshal.Field[string]            `json:"preferredLanguage"`
	RedirectedPayment marshal.Field[RedirectedPayment] `json:"redirectedPayment"`
}

// RedirectedPayment リダイレクト型決済の遷移先
type RedirectedPayment struct {
	MerchantReturnURL marshal.Field[string] `json:"merchantReturnUrl"`
	RedirectURL       marshal.Field[string] `json:"redirectUrl"`
	TracingID         marshal.Field[string] `json:"tracingId"`
}
