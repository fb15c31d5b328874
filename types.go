package localize

import "time"

// Direction identifies the writing direction of a language.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Language is an immutable catalog entry. Exactly one language in a catalog
// carries IsDefault; it is the ultimate fallback target for resolution.
type Language struct {
	Code       string
	Name       string
	NativeName string
	Direction  Direction
	IsDefault  bool
	// MarketCode is the language's home market, used when loading the
	// default-language fallback bundle.
	MarketCode string
}

// NumberFormatRules captures how a market renders numeric and currency values.
type NumberFormatRules struct {
	DecimalSep       string
	ThousandSep      string
	CurrencySymbol   string
	CurrencyPosition string // "before" or "after"
	CurrencyDecimals int
	SpaceAroundSym   bool
}

// DateFormatRules captures how a market orders and renders date/time fields.
type DateFormatRules struct {
	DayFirst  bool
	Use24Hour bool
}

// PhoneDialPlan describes how to normalize and group phone numbers for a
// market. CountryCode holds digits without the leading plus sign.
// Groups defines the digit grouping of the national significant number.
type PhoneDialPlan struct {
	CountryCode    string
	NationalPrefix string
	Groups         []int
}

// AddressFormatRules drives address rendering and validation for a market.
type AddressFormatRules struct {
	// Template uses {street}, {city}, {state}, {postalCode}, {country}
	// placeholders; field order in the template is the market's field order.
	Template       string
	RequiredFields []string
	PostalPattern  string
	PhonePattern   string
}

// Market declares which languages it accepts and how values are formatted
// within it. A (language, market) pair is valid only when the market's
// supported-language list contains the language.
type Market struct {
	Code               string
	Name               string
	SupportedLanguages []string
	CurrencyCode       string
	NumberFormat       NumberFormatRules
	DateFormat         DateFormatRules
	PhonePlan          PhoneDialPlan
	AddressFormat      AddressFormatRules
	Timezone           string
	BusinessCalendar   string
}

// Locale is a validated (language, market) pair plus derived properties.
// Locales are computed on demand by the registry and never persisted.
type Locale struct {
	Language Language
	Market   Market
	// Code is the combined identifier, "<lang>-<MARKET>".
	Code             string
	IsRTL            bool
	Timezone         string
	BusinessCalendar string
}

// TranslationValue is one active translation row. Keys are dot-namespaced
// ("nav.home"); at most one active value exists per (key, language, market).
type TranslationValue struct {
	Key            string
	Value          string
	Context        string
	Gender         string
	PluralCategory PluralCategory
	Variables      map[string]string
}

// TranslationBundle holds the full key/value map for one (language, market)
// pair. Bundles are owned exclusively by the cache; resolvers borrow read
// access only.
type TranslationBundle struct {
	Language     string
	Market       string
	Version      string
	Translations map[string]TranslationValue
	LastUpdated  time.Time
	// Builtin marks bundles synthesized when the persistent store is
	// unreachable.
	Builtin bool
}

// Lookup returns the translation for key and ok=false when missing.
func (b *TranslationBundle) Lookup(key string) (TranslationValue, bool) {
	if b == nil || b.Translations == nil {
		return TranslationValue{}, false
	}
	value, ok := b.Translations[key]
	return value, ok
}

// PluralCategory is one of the CLDR cardinal category names.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// CatalogData seeds a Registry with languages and markets.
type CatalogData struct {
	Languages []Language
	Markets   []Market
}
