package localize

import "strings"

type pluralRuleKind int

const (
	pluralRuleDefault pluralRuleKind = iota
	pluralRuleRomance
	pluralRuleArabic
)

// pluralRuleKinds maps language codes to their cardinal rule family. Codes
// absent from the map use the default one/other split.
var pluralRuleKinds = map[string]pluralRuleKind{
	"fr": pluralRuleRomance,
	"es": pluralRuleRomance,
	"pt": pluralRuleRomance,
	"it": pluralRuleRomance,
	"ar": pluralRuleArabic,
}

// pluralMarkers holds the per-language plural suffix used by the surface
// transform. Languages absent from the map use "s".
var pluralMarkers = map[string]string{
	"ar": "ات",
}

// PluralCategoryFor selects the cardinal category for a count, evaluating the
// per-language rules in fixed order and returning the first match.
func PluralCategoryFor(languageCode string, count int) PluralCategory {
	switch pluralRuleKinds[normalizeLanguageCode(languageCode)] {
	case pluralRuleArabic:
		switch {
		case count == 0:
			return PluralZero
		case count == 1:
			return PluralOne
		case count == 2:
			return PluralTwo
		case count >= 3 && count <= 10:
			return PluralFew
		case count >= 11:
			return PluralMany
		default:
			return PluralOther
		}
	case pluralRuleRomance:
		switch {
		case count == 0:
			return PluralZero
		case count == 1:
			return PluralOne
		default:
			return PluralOther
		}
	default:
		if count == 1 {
			return PluralOne
		}
		return PluralOther
	}
}

// pluralMarker returns the plural suffix for the language.
func pluralMarker(languageCode string) string {
	if marker, ok := pluralMarkers[normalizeLanguageCode(languageCode)]; ok {
		return marker
	}
	return "s"
}

// applyPluralForm adjusts a resolved string for the selected category by
// stripping or appending the language's plural marker. This reproduces the
// original surface transform: it is locale-naive on irregular forms and is
// intentionally not a full plural-message system. Applying it twice with the
// same category is a no-op.
func applyPluralForm(value, languageCode string, category PluralCategory) string {
	marker := pluralMarker(languageCode)
	if marker == "" || value == "" {
		return value
	}

	if category == PluralOne {
		return strings.TrimSuffix(value, marker)
	}
	if !strings.HasSuffix(value, marker) {
		return value + marker
	}
	return value
}
