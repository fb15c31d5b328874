package localize

import (
	"strings"

	"golang.org/x/text/language"
)

// CombinedID builds the canonical "<lang>-<MARKET>" identifier for a pair.
func CombinedID(languageCode, marketCode string) string {
	lang := normalizeLanguageCode(languageCode)
	market := normalizeMarketCode(marketCode)
	if lang == "" {
		return market
	}
	if market == "" {
		return lang
	}
	return lang + "-" + market
}

func normalizeLanguageCode(code string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}

func normalizeMarketCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Tag returns the BCP 47 tag for the locale, for interop with x/text
// consumers.
func (l Locale) Tag() language.Tag {
	return languageTag(l.Language.Code, l.Market.Code)
}

// languageTag parses the combined identifier into an x/text tag, falling back
// to the bare language when the pair does not parse.
func languageTag(languageCode, marketCode string) language.Tag {
	if tag, err := language.Parse(CombinedID(languageCode, marketCode)); err == nil {
		return tag
	}
	return language.Make(normalizeLanguageCode(languageCode))
}

func splitCombinedID(id string) (languageCode, marketCode string) {
	id = strings.TrimSpace(strings.ReplaceAll(id, "_", "-"))
	if id == "" {
		return "", ""
	}
	if idx := strings.LastIndex(id, "-"); idx > 0 {
		return normalizeLanguageCode(id[:idx]), normalizeMarketCode(id[idx+1:])
	}
	return normalizeLanguageCode(id), ""
}
