package localize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Formatter renders numbers, currency amounts, dates, phone numbers and
// addresses according to the rules of a registered market. All methods
// degrade to a plain, unstyled rendering when the language/market pair
// is not registered.
type Formatter struct {
	registry *Registry
}

// NewFormatter binds a formatter to a registry. A nil registry is
// replaced with the built-in catalog.
func NewFormatter(registry *Registry) *Formatter {
	if registry == nil {
		registry = NewDefaultRegistry()
	}
	return &Formatter{registry: registry}
}

func (f *Formatter) marketRules(languageCode, marketCode string) (*Market, bool) {
	if f == nil || f.registry == nil {
		return nil, false
	}
	if _, err := f.registry.Language(languageCode); err != nil {
		return nil, false
	}
	market, err := f.registry.Market(marketCode)
	if err != nil {
		return nil, false
	}
	return &market, true
}

// FormatCurrency renders amount with the market's separators, symbol and
// symbol position. Amounts are rounded half-up to the market's currency
// decimals. The sign precedes the whole rendering, symbol included
// ("-$1,234.50", never "$-1,234.50"). Unknown pairs fall back to a bare
// two-decimal rendering.
func (f *Formatter) FormatCurrency(amount float64, languageCode, marketCode string) string {
	market, ok := f.marketRules(languageCode, marketCode)
	if !ok {
		return strconv.FormatFloat(roundHalfUp(amount, 2), 'f', 2, 64)
	}

	rules := market.NumberFormat
	decimals := rules.CurrencyDecimals
	if decimals <= 0 {
		decimals = 2
	}

	rounded := roundHalfUp(amount, decimals)
	negative := rounded < 0
	formatted := formatWithSeparators(math.Abs(rounded), decimals, rules.DecimalSep, rules.ThousandSep)

	symbol := rules.CurrencySymbol
	if symbol == "" {
		symbol = market.CurrencyCode
	}

	sep := ""
	if rules.SpaceAroundSym {
		sep = " "
	}
	result := symbol + sep + formatted
	if rules.CurrencyPosition == "after" {
		result = formatted + sep + symbol
	}
	if negative {
		result = "-" + result
	}
	return result
}

// NumberOption adjusts number and percentage rendering.
type NumberOption func(*numberOptions)

type numberOptions struct {
	compact bool
}

// Compact abbreviates large magnitudes ("1.2M", "4.5K") instead of
// rendering full grouped digits.
func Compact() NumberOption {
	return func(o *numberOptions) {
		o.compact = true
	}
}

func applyNumberOptions(opts []NumberOption) numberOptions {
	var resolved numberOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}
	return resolved
}

// FormatNumber renders value with the market's decimal and thousand
// separators. Negative decimals default to two. With Compact, large
// values abbreviate the way FormatCompactNumber does.
func (f *Formatter) FormatNumber(value float64, languageCode, marketCode string, decimals int, opts ...NumberOption) string {
	if applyNumberOptions(opts).compact {
		return f.FormatCompactNumber(value)
	}
	if decimals < 0 {
		decimals = 2
	}
	market, ok := f.marketRules(languageCode, marketCode)
	if !ok {
		return strconv.FormatFloat(roundHalfUp(value, decimals), 'f', decimals, 64)
	}
	rules := market.NumberFormat
	return formatWithSeparators(roundHalfUp(value, decimals), decimals, rules.DecimalSep, rules.ThousandSep)
}

// FormatCompactNumber abbreviates large values: 1,200,000 becomes "1.2M"
// and 4,500 becomes "4.5K". Values under a thousand render as plain
// integers. The abbreviation uses ASCII digits and a "." decimal point
// regardless of market.
func (f *Formatter) FormatCompactNumber(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 1e6:
		return compactScale(value/1e6) + "M"
	case abs >= 1e3:
		return compactScale(value/1e3) + "K"
	default:
		return strconv.FormatFloat(math.Round(value), 'f', 0, 64)
	}
}

// FormatPercentage multiplies value by 100 and appends a percent sign,
// using the market's decimal separator. With Compact the scaled value
// abbreviates ("1.2M%") instead of rendering full grouped digits.
func (f *Formatter) FormatPercentage(value float64, languageCode, marketCode string, decimals int, opts ...NumberOption) string {
	if applyNumberOptions(opts).compact {
		return f.FormatCompactNumber(value*100) + "%"
	}
	if decimals < 0 {
		decimals = 0
	}
	scaled := roundHalfUp(value*100, decimals)
	market, ok := f.marketRules(languageCode, marketCode)
	if !ok {
		return strconv.FormatFloat(scaled, 'f', decimals, 64) + "%"
	}
	rules := market.NumberFormat
	return formatWithSeparators(scaled, decimals, rules.DecimalSep, rules.ThousandSep) + "%"
}

func compactScale(scaled float64) string {
	s := strconv.FormatFloat(roundHalfUp(scaled, 1), 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// roundHalfUp rounds away from the midpoint toward positive infinity for
// .5 cases, matching how prices are conventionally rounded.
func roundHalfUp(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Floor(value*factor+0.5) / factor
}

func formatWithSeparators(value float64, decimals int, decimalSep, thousandSep string) string {
	formatted := fmt.Sprintf("%.*f", decimals, value)

	negative := strings.HasPrefix(formatted, "-")
	if negative {
		formatted = formatted[1:]
	}

	integerPart := formatted
	decimalPart := ""
	if idx := strings.Index(formatted, "."); idx >= 0 {
		integerPart = formatted[:idx]
		decimalPart = formatted[idx+1:]
	}

	if thousandSep != "" && len(integerPart) > 3 {
		var builder strings.Builder
		for i, digit := range integerPart {
			if i > 0 && (len(integerPart)-i)%3 == 0 {
				builder.WriteString(thousandSep)
			}
			builder.WriteRune(digit)
		}
		integerPart = builder.String()
	}

	result := integerPart
	if decimalPart != "" {
		if decimalSep == "" {
			decimalSep = "."
		}
		result = integerPart + decimalSep + decimalPart
	}
	if negative {
		result = "-" + result
	}
	return result
}
