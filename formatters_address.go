package localize

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Address carries the fields a postal address may supply. Empty fields
// are simply omitted from the rendered output.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// AddressValidation reports the outcome of ValidateAddress. It is a
// result value, not an error: callers inspect it instead of unwrapping.
type AddressValidation struct {
	IsValid       bool
	MissingFields []string
	Errors        map[string]string
}

func (a Address) fields() map[string]string {
	return map[string]string{
		"street":     a.Street,
		"city":       a.City,
		"state":      a.State,
		"postalCode": a.PostalCode,
		"country":    a.Country,
		"phone":      a.Phone,
	}
}

var addressPlaceholderPattern = regexp.MustCompile(`\{[a-zA-Z0-9_]+\}`)

// FormatAddress renders addr against the market's template. Unresolved
// placeholders are removed and, when multiline is set, lines left blank
// by missing fields are dropped.
func (f *Formatter) FormatAddress(addr Address, languageCode, marketCode string, multiline bool) string {
	market, ok := f.marketRules(languageCode, marketCode)
	if !ok || market.AddressFormat.Template == "" {
		return joinNonEmpty([]string{addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country}, ", ")
	}

	result := market.AddressFormat.Template
	for name, value := range addr.fields() {
		result = strings.ReplaceAll(result, "{"+name+"}", value)
	}
	result = addressPlaceholderPattern.ReplaceAllString(result, "")

	lines := strings.Split(result, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), ","))
		if line == "" && multiline {
			continue
		}
		cleaned = append(cleaned, line)
	}
	if multiline {
		return strings.Join(cleaned, "\n")
	}
	return joinNonEmpty(cleaned, ", ")
}

// ValidateAddress checks addr against the market's required fields and
// pattern rules. An unknown pair validates trivially.
func (f *Formatter) ValidateAddress(addr Address, languageCode, marketCode string) AddressValidation {
	result := AddressValidation{IsValid: true, Errors: map[string]string{}}
	market, ok := f.marketRules(languageCode, marketCode)
	if !ok {
		return result
	}

	rules := market.AddressFormat
	fields := addr.fields()

	for _, name := range rules.RequiredFields {
		if err := validation.Validate(fields[name], validation.Required); err != nil {
			result.MissingFields = append(result.MissingFields, name)
		}
	}

	if addr.PostalCode != "" && rules.PostalPattern != "" {
		re, err := regexp.Compile(rules.PostalPattern)
		if err == nil {
			if err := validation.Validate(addr.PostalCode, validation.Match(re)); err != nil {
				result.Errors["postalCode"] = "postal code does not match the market format"
			}
		}
	}

	if addr.Phone != "" && rules.PhonePattern != "" {
		re, err := regexp.Compile(rules.PhonePattern)
		if err == nil {
			if err := validation.Validate(addr.Phone, validation.Match(re)); err != nil {
				result.Errors["phone"] = "phone number does not match the market format"
			}
		}
	}

	result.IsValid = len(result.MissingFields) == 0 && len(result.Errors) == 0
	return result
}

func joinNonEmpty(parts []string, sep string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			filtered = append(filtered, part)
		}
	}
	return strings.Join(filtered, sep)
}
