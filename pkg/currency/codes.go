// Package currency は ISO 4217 通貨コードと最小単位への換算を提供する。
package currency

// Code ISO 4217 通貨コード
type Code string

const (
	AED Code = "AED"
	AFN Code = "AFN"
	ALL Code = "ALL"
	AMD Code = "AMD"
	ANG Code = "ANG"
	AOA Code = "AOA"
	ARS Code = "ARS"
	AUD Code = "AUD"
	AWG Code = "AWG"
	AZN Code = "AZN"
	BAM Code = "BAM"
	BBD Code = "BBD"
	BDT Code = "BDT"
	BGN Code = "BGN"
	BIF Code = "BIF"
	BMD Code = "BMD"
	BND Code = "BND"
	BOB Code = "BOB"
	BRL Code = "BRL"
	BSD Code = "BSD"
	BTN Code = "BTN"
	BWP Code = "BWP"
	BYN Code = "BYN"
	BZD Code = "BZD"
	CAD Code = "CAD"
	CDF Code = "CDF"
	CHF Code = "CHF"
	CLP Code = "CLP"
	CNY Code = "CNY"
	COP Code = "COP"
	CRC Code = "CRC"
	CVE Code = "CVE"
	CZK Code = "CZK"
	DJF Code = "DJF"
	DKK Code = "DKK"
	DOP Code = "DOP"
	DZD Code = "DZD"
	EGP Code = "EGP"
	ETB Code = "ETB"
	EUR Code = "EUR"
	FJD Code = "FJD"
	FKP Code = "FKP"
	GBP Code = "GBP"
	GEL Code = "GEL"
	GHS Code = "GHS"
	GIP Code = "GIP"
	GMD Code = "GMD"
	GTQ Code = "GTQ"
	GYD Code = "GYD"
	HKD Code = "HKD"
	HNL Code = "HNL"
	HRK Code = "HRK"
	HTG Code = "HTG"
	HUF Code = "HUF"
	IDR Code = "IDR"
	ILS Code = "ILS"
	INR Code = "INR"
	ISK Code = "ISK"
	JMD Code = "JMD"
	JPY Code = "JPY"
	KES Code = "KES"
	KHR Code = "KHR"
	KMF Code = "KMF"
	KRW Code = "KRW"
	KYD Code = "KYD"
	KZT Code = "KZT"
	LAK Code = "LAK"
	LBP Code = "LBP"
	LKR Code = "LKR"
	LRD Code = "LRD"
	LSL Code = "LSL"
	MAD Code = "MAD"
	MDL Code = "MDL"
	MGA Code = "MGA"
	MKD Code = "MKD"
	MMK Code = "MMK"
	MNT Code = "MNT"
	MOP Code = "MOP"
	MRU Code = "MRU"
	MUR Code = "MUR"
	MVR Code = "MVR"
	MWK Code = "MWK"
	MXN Code = "MXN"
	MYR Code = "MYR"
	MZN Code = "MZN"
	NAD Code = "NAD"
	NGN Code = "NGN"
	NIO Code = "NIO"
	NOK Code = "NOK"
	NPR Code = "NPR"
	NZD Code = "NZD"
	PAB Code = "PAB"
	PEN Code = "PEN"
	PGK Code = "PGK"
	PHP Code = "PHP"
	PKR Code = "PKR"
	PLN Code = "PLN"
	PYG Code = "PYG"
	QAR Code = "QAR"
	RON Code = "RON"
	RSD Code = "RSD"
	RWF Code = "RWF"
	SAR Code = "SAR"
	SBD Code = "SBD"
	SCR Code = "SCR"
	SEK Code = "SEK"
	SGD Code = "SGD"
	SHP Code = "SHP"
	SLL Code = "SLL"
	SOS Code = "SOS"
	SRD Code = "SRD"
	STN Code = "STN"
	SZL Code = "SZL"
	THB Code = "THB"
	TJS Code = "TJS"
	TOP Code = "TOP"
	TRY Code = "TRY"
	TTD Code = "TTD"
	TWD Code = "TWD"
	TZS Code = "TZS"
	UAH Code = "UAH"
	UGX Code = "UGX"
	USD Code = "USD"
	UYU Code = "UYU"
	UZS Code = "UZS"
	VND Code = "VND"
	VUV Code = "VUV"
	WST Code = "WST"
	XAF Code = "XAF"
	XCD Code = "XCD"
	XOF Code = "XOF"
	XPF Code = "XPF"
	YER Code = "YER"
	ZAR Code = "ZAR"
	ZMW Code = "ZMW"
)

var members = []Code{
	AED, AFN, ALL, AMD, ANG, AOA, ARS, AUD, AWG, AZN,
	BAM, BBD, BDT, BGN, BIF, BMD, BND, BOB, BRL, BSD,
	BTN, BWP, BYN, BZD, CAD, CDF, CHF, CLP, CNY, COP,
	CRC, CVE, CZK, DJF, DKK, DOP, DZD, EGP, ETB, EUR,
	FJD, FKP, GBP, GEL, GHS, GIP, GMD, GTQ, GYD, HKD,
	HNL, HRK, HTG, HUF, IDR, ILS, INR, ISK, JMD, JPY,
	KES, KHR, KMF, KRW, KYD, KZT, LAK, LBP, LKR, LRD,
	LSL, MAD, MDL, MGA, MKD, MMK, MNT, MOP, MRU, MUR,
	MVR, MWK, MXN, MYR, MZN, NAD, NGN, NIO, NOK, NPR,
	NZD, PAB, PEN, PGK, PHP, PKR, PLN, PYG, QAR, RON,
	RSD, RWF, SAR, SBD, SCR, SEK, SGD, SHP, SLL, SOS,
	SRD, STN, SZL, THB, TJS, TOP, TRY, TTD, TWD, TZS,
	UAH, UGX, USD, UYU, UZS, VND, VUV, WST, XAF, XCD,
	XOF, XPF, YER, ZAR, ZMW,
}
