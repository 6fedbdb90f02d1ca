// Package currency holds the supported currency table and amount formatting.
package currency

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Info describes a supported currency.
type Info struct {
	Code     string `json:"code"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int32  `json:"decimals"`
}

// ConversionResult is the outcome of converting an amount between currencies.
type ConversionResult struct {
	Success         bool            `json:"success"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Rate            decimal.Decimal `json:"rate"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	Timestamp       time.Time       `json:"timestamp"`
}

var supported = map[string]Info{
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar", Decimals: 2},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro", Decimals: 2},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound", Decimals: 2},
	"JPY": {Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Decimals: 0},
	"KWD": {Code: "KWD", Symbol: "KD", Name: "Kuwaiti Dinar", Decimals: 3},
	"BHD": {Code: "BHD", Symbol: "BD", Name: "Bahraini Dinar", Decimals: 3},
	"OMR": {Code: "OMR", Symbol: "RO", Name: "Omani Rial", Decimals: 3},
	"AED": {Code: "AED", Symbol: "AED", Name: "UAE Dirham", Decimals: 2},
	"SAR": {Code: "SAR", Symbol: "SR", Name: "Saudi Riyal", Decimals: 2},
	"QAR": {Code: "QAR", Symbol: "QR", Name: "Qatari Riyal", Decimals: 2},
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee", Decimals: 2},
	"CNY": {Code: "CNY", Symbol: "CN¥", Name: "Chinese Yuan", Decimals: 2},
	"KRW": {Code: "KRW", Symbol: "₩", Name: "South Korean Won", Decimals: 0},
	"SGD": {Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", Decimals: 2},
	"HKD": {Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar", Decimals: 2},
	"AUD": {Code: "AUD", Symbol: "A$", Name: "Australian Dollar", Decimals: 2},
	"CAD": {Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", Decimals: 2},
	"CHF": {Code: "CHF", Symbol: "CHF", Name: "Swiss Franc", Decimals: 2},
	"THB": {Code: "THB", Symbol: "฿", Name: "Thai Baht", Decimals: 2},
	"PHP": {Code: "PHP", Symbol: "₱", Name: "Philippine Peso", Decimals: 2},
	"MYR": {Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit", Decimals: 2},
	"IDR": {Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah", Decimals: 0},
	"ZAR": {Code: "ZAR", Symbol: "R", Name: "South African Rand", Decimals: 2},
	"EGP": {Code: "EGP", Symbol: "E£", Name: "Egyptian Pound", Decimals: 2},
	"NGN": {Code: "NGN", Symbol: "₦", Name: "Nigerian Naira", Decimals: 2},
	"KES": {Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling", Decimals: 2},
	"MXN": {Code: "MXN", Symbol: "MX$", Name: "Mexican Peso", Decimals: 2},
	"BRL": {Code: "BRL", Symbol: "R$", Name: "Brazilian Real", Decimals: 2},
	"TRY": {Code: "TRY", Symbol: "₺", Name: "Turkish Lira", Decimals: 2},
	"VND": {Code: "VND", Symbol: "₫", Name: "Vietnamese Dong", Decimals: 0},
}

// Normalize trims and upper-cases a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GetCurrencyInfo looks up a currency by ISO 4217 code, case-insensitively.
func GetCurrencyInfo(code string) (Info, bool) {
	info, ok := supported[Normalize(code)]
	return info, ok
}

// IsSupported reports whether the code is in the supported table.
func IsSupported(code string) bool {
	_, ok := GetCurrencyInfo(code)
	return ok
}

// SupportedCurrencies returns every supported currency sorted by code.
func SupportedCurrencies() []Info {
	out := make([]Info, 0, len(supported))
	for _, info := range supported {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b Info) int {
		return strings.Compare(a.Code, b.Code)
	})

	return out
}

// Codes returns every supported code sorted alphabetically.
func Codes() []string {
	infos := SupportedCurrencies()
	codes := make([]string, len(infos))
	for i, info := range infos {
		codes[i] = info.Code
	}

	return codes
}

// Decimals returns the minor-unit precision for code, defaulting to 2.
func Decimals(code string) int32 {
	if info, ok := GetCurrencyInfo(code); ok {
		return info.Decimals
	}

	return 2
}

// Round rounds amount to the precision of code.
func Round(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Round(Decimals(code))
}

// Convert applies rate to amount and rounds to the target currency's precision.
func Convert(amount, rate decimal.Decimal, to string) decimal.Decimal {
	return Round(amount.Mul(rate), to)
}
