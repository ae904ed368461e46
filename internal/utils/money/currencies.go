package money

// iso4217 is the set of recognized currency codes. Static, like the currency
// registry of any money library; amounts are stored in minor units so the
// table only needs to answer "is this a real code".
var iso4217 = map[string]struct{}{
	"AED": {}, "ARS": {}, "AUD": {}, "BGN": {}, "BHD": {}, "BOB": {},
	"BRL": {}, "CAD": {}, "CHF": {}, "CLP": {}, "CNY": {}, "COP": {},
	"CRC": {}, "CZK": {}, "DKK": {}, "DOP": {}, "DZD": {}, "EGP": {},
	"EUR": {}, "GBP": {}, "GTQ": {}, "HKD": {}, "HNL": {}, "HRK": {},
	"HUF": {}, "IDR": {}, "ILS": {}, "INR": {}, "ISK": {}, "JMD": {},
	"JOD": {}, "JPY": {}, "KES": {}, "KRW": {}, "KWD": {}, "LKR": {},
	"MAD": {}, "MXN": {}, "MYR": {}, "NGN": {}, "NIO": {}, "NOK": {},
	"NZD": {}, "OMR": {}, "PAB": {}, "PEN": {}, "PHP": {}, "PKR": {},
	"PLN": {}, "PYG": {}, "QAR": {}, "RON": {}, "RSD": {}, "RUB": {},
	"SAR": {}, "SEK": {}, "SGD": {}, "THB": {}, "TND": {}, "TRY": {},
	"TWD": {}, "TZS": {}, "UAH": {}, "UGX": {}, "USD": {}, "UYU": {},
	"VND": {}, "ZAR": {},
}

// ValidCurrency reports whether code is a recognized ISO 4217 currency code.
func ValidCurrency(code string) bool {
	_, ok := iso4217[code]
	return ok
}
