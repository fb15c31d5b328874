package localize

import (
	"strings"
	"unicode"
)

// FormatPhone groups the digits of raw according to the market's dial
// plan and prefixes the international country code. Input may carry
// spaces, dashes, dots, parentheses, a leading "+" and country or
// national prefixes. Numbers whose digit count does not match the plan
// are returned as "+<cc><digits>" without grouping.
func (f *Formatter) FormatPhone(raw, languageCode, marketCode string) string {
	trimmed := strings.TrimSpace(raw)
	market, ok := f.marketRules(languageCode, marketCode)
	if !ok {
		return trimmed
	}

	plan := market.PhonePlan
	if plan.CountryCode == "" || len(plan.Groups) == 0 {
		return trimmed
	}

	digits := extractDigits(trimmed)
	if digits == "" {
		return trimmed
	}

	total := 0
	for _, g := range plan.Groups {
		total += g
	}

	national := nationalDigits(digits, plan, total)
	if len(national) != total {
		return "+" + plan.CountryCode + national
	}

	var builder strings.Builder
	builder.WriteString("+")
	builder.WriteString(plan.CountryCode)

	pos := 0
	for _, group := range plan.Groups {
		builder.WriteString(" ")
		builder.WriteString(national[pos : pos+group])
		pos += group
	}
	return builder.String()
}

// nationalDigits strips an international country code or a domestic
// trunk prefix, whichever the input carries.
func nationalDigits(digits string, plan PhoneDialPlan, total int) string {
	if strings.HasPrefix(digits, plan.CountryCode) && len(digits) == len(plan.CountryCode)+total {
		return digits[len(plan.CountryCode):]
	}
	if plan.NationalPrefix != "" && strings.HasPrefix(digits, plan.NationalPrefix) && len(digits) == len(plan.NationalPrefix)+total {
		return digits[len(plan.NationalPrefix):]
	}
	return digits
}

func extractDigits(input string) string {
	var builder strings.Builder
	for _, r := range input {
		if unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
