package localize

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeUnsupportedLanguage   = "UNSUPPORTED_LANGUAGE"
	codeUnsupportedMarket     = "UNSUPPORTED_MARKET"
	codeLanguageNotInMarket   = "LANGUAGE_NOT_OFFERED_IN_MARKET"
	codeDefaultLanguageNeeded = "DEFAULT_LANGUAGE_REQUIRED"
)

// Locale and market selection fails loudly so misconfiguration is caught
// immediately; text resolution never does (see Resolver).

func newUnsupportedLanguageError(code string) error {
	return goerrors.New("localize: unsupported language "+quote(code), goerrors.CategoryNotFound).
		WithTextCode(codeUnsupportedLanguage)
}

func newUnsupportedMarketError(code string) error {
	return goerrors.New("localize: unsupported market "+quote(code), goerrors.CategoryNotFound).
		WithTextCode(codeUnsupportedMarket)
}

func newLanguageNotOfferedError(language, market string) error {
	return goerrors.New("localize: language "+quote(language)+" is not offered in market "+quote(market), goerrors.CategoryValidation).
		WithTextCode(codeLanguageNotInMarket)
}

func newDefaultLanguageError(msg string) error {
	return goerrors.New("localize: "+msg, goerrors.CategoryValidation).
		WithTextCode(codeDefaultLanguageNeeded)
}

// IsUnsupportedLanguage reports whether err came from an unknown language code.
func IsUnsupportedLanguage(err error) bool {
	return hasTextCode(err, codeUnsupportedLanguage)
}

// IsUnsupportedMarket reports whether err came from an unknown market code.
func IsUnsupportedMarket(err error) bool {
	return hasTextCode(err, codeUnsupportedMarket)
}

// IsLanguageNotOffered reports whether err marks a (language, market) pair the
// market does not accept.
func IsLanguageNotOffered(err error) bool {
	return hasTextCode(err, codeLanguageNotInMarket)
}

func hasTextCode(err error, code string) bool {
	var ge *goerrors.Error
	if !errors.As(err, &ge) {
		return false
	}
	return ge.TextCode == code
}

func quote(value string) string {
	return "\"" + value + "\""
}
