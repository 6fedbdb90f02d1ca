package currency

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FormatAmount renders amount with the currency symbol, thousands separators
// and the currency's decimal precision: "$1,234.50", "¥1,235", "KD 12.500".
// Unknown codes are rendered as "CODE 1,234.50".
func FormatAmount(amount decimal.Decimal, code string) string {
	code = Normalize(code)
	info, ok := supported[code]
	if !ok {
		info = Info{Code: code, Symbol: code, Decimals: 2}
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	number := groupThousands(amount.StringFixed(info.Decimals))
	if strings.Trim(number, "0.,") == "" {
		sign = ""
	}

	return sign + info.Symbol + symbolSeparator(info.Symbol) + number
}

// FormatCurrency is FormatAmount followed by the ISO code, e.g. "$1,234.50 USD".
func FormatCurrency(amount decimal.Decimal, code string) string {
	code = Normalize(code)
	formatted := FormatAmount(amount, code)
	if _, ok := supported[code]; !ok {
		return formatted
	}

	return formatted + " " + code
}

// Alphabetic symbols ("KD", "CHF") read better with a space before the number.
func symbolSeparator(symbol string) string {
	last, _ := utf8.DecodeLastRuneInString(symbol)
	if unicode.IsLetter(last) && last < unicode.MaxLatin1 {
		return " "
	}

	return ""
}

func groupThousands(fixed string) string {
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	if len(intPart) <= 3 {
		return fixed
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	return b.String()
}
