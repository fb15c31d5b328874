package localize

import (
	"sort"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// DateStyle selects one of the preset date layouts.
type DateStyle string

const (
	DateStyleShort  DateStyle = "short"
	DateStyleMedium DateStyle = "medium"
	DateStyleLong   DateStyle = "long"
	DateStyleFull   DateStyle = "full"
)

// mondayLocales maps combined locale IDs to the locales monday ships
// month and weekday names for. Unmapped locales render with Go's
// English names.
var mondayLocales = map[string]monday.Locale{
	"en-US": monday.LocaleEnUS,
	"fr-FR": monday.LocaleFrFR,
	"es-ES": monday.LocaleEsES,
}

func dateLayout(style DateStyle, rules DateFormatRules) string {
	if rules.DayFirst {
		switch style {
		case DateStyleShort:
			return "02/01/06"
		case DateStyleLong:
			return "2 January 2006"
		case DateStyleFull:
			return "Monday 2 January 2006"
		default:
			return "2 Jan 2006"
		}
	}
	switch style {
	case DateStyleShort:
		return "01/02/06"
	case DateStyleLong:
		return "January 2, 2006"
	case DateStyleFull:
		return "Monday, January 2, 2006"
	default:
		return "Jan 2, 2006"
	}
}

// FormatDate renders t using the market's field order and, where
// available, localized month and weekday names.
func (f *Formatter) FormatDate(t time.Time, languageCode, marketCode string, style DateStyle) string {
	market, ok := f.marketRules(languageCode, marketCode)
	if !ok {
		return t.Format(dateLayout(style, DateFormatRules{}))
	}
	layout := dateLayout(style, market.DateFormat)
	return renderLayout(t, layout, languageCode, marketCode)
}

// FormatTime renders the clock portion of t per the market's 12/24 hour
// convention.
func (f *Formatter) FormatTime(t time.Time, languageCode, marketCode string) string {
	market, ok := f.marketRules(languageCode, marketCode)
	if ok && market.DateFormat.Use24Hour {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// FormatDateTime combines FormatDate and FormatTime with a single space.
func (f *Formatter) FormatDateTime(t time.Time, languageCode, marketCode string, style DateStyle) string {
	return f.FormatDate(t, languageCode, marketCode, style) + " " + f.FormatTime(t, languageCode, marketCode)
}

// FormatDatePattern renders t against an ICU-style pattern such as
// "dd MMMM yyyy". Unknown tokens pass through verbatim.
func (f *Formatter) FormatDatePattern(t time.Time, languageCode, marketCode, pattern string) string {
	layout := patternToLayout(pattern)
	if _, ok := f.marketRules(languageCode, marketCode); !ok {
		return t.Format(layout)
	}
	return renderLayout(t, layout, languageCode, marketCode)
}

func renderLayout(t time.Time, layout, languageCode, marketCode string) string {
	if loc, ok := mondayLocales[CombinedID(languageCode, marketCode)]; ok {
		return monday.Format(t, layout, loc)
	}
	return t.Format(layout)
}

var patternTokens = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"dd":   "02",
	"d":    "2",
	"EEEE": "Monday",
	"EEE":  "Mon",
	"HH":   "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"ss":   "05",
	"a":    "PM",
}

var orderedPatternTokens = func() []string {
	tokens := make([]string, 0, len(patternTokens))
	for token := range patternTokens {
		tokens = append(tokens, token)
	}
	// Longest first so "MMMM" wins over "MM".
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return tokens
}()

func patternToLayout(pattern string) string {
	var builder strings.Builder
	for len(pattern) > 0 {
		matched := false
		for _, token := range orderedPatternTokens {
			if strings.HasPrefix(pattern, token) {
				builder.WriteString(patternTokens[token])
				pattern = pattern[len(token):]
				matched = true
				break
			}
		}
		if !matched {
			builder.WriteByte(pattern[0])
			pattern = pattern[1:]
		}
	}
	return builder.String()
}
