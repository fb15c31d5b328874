package localize

import (
	"sort"
	"sync"
)

// Registry is the single source of truth for supported languages and markets
// and the rules for combining them into a validated locale.
//
// Mutations touch the in-memory catalog only: they never reach the persistent
// store and never invalidate translation caches. A caller removing a language
// owns any downstream cache cleanup.
type Registry struct {
	mu        sync.RWMutex
	languages map[string]Language
	markets   map[string]Market
}

// NewRegistry builds a registry from catalog data. The catalog must declare
// exactly one default language; this is a constructor-time invariant, not a
// caller-facing lookup error.
func NewRegistry(data CatalogData) (*Registry, error) {
	r := &Registry{
		languages: make(map[string]Language, len(data.Languages)),
		markets:   make(map[string]Market, len(data.Markets)),
	}

	defaults := 0
	for _, lang := range data.Languages {
		lang.Code = normalizeLanguageCode(lang.Code)
		if lang.Code == "" {
			continue
		}
		if lang.Direction == "" {
			lang.Direction = DirectionLTR
		}
		if lang.IsDefault {
			defaults++
		}
		r.languages[lang.Code] = lang
	}

	if defaults != 1 {
		return nil, newDefaultLanguageError("catalog must declare exactly one default language")
	}

	for _, market := range data.Markets {
		market.Code = normalizeMarketCode(market.Code)
		if market.Code == "" {
			continue
		}
		for i, code := range market.SupportedLanguages {
			market.SupportedLanguages[i] = normalizeLanguageCode(code)
		}
		r.markets[market.Code] = market
	}

	return r, nil
}

// Language returns the catalog entry for code.
func (r *Registry) Language(code string) (Language, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lang, ok := r.languages[normalizeLanguageCode(code)]
	if !ok {
		return Language{}, newUnsupportedLanguageError(code)
	}
	return lang, nil
}

// Market returns the catalog entry for code.
func (r *Registry) Market(code string) (Market, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	market, ok := r.markets[normalizeMarketCode(code)]
	if !ok {
		return Market{}, newUnsupportedMarketError(code)
	}
	return market, nil
}

// ResolveLocale validates the (language, market) pair and computes the
// derived locale. No partial results are returned on failure.
func (r *Registry) ResolveLocale(languageCode, marketCode string) (Locale, error) {
	lang, err := r.Language(languageCode)
	if err != nil {
		return Locale{}, err
	}

	market, err := r.Market(marketCode)
	if err != nil {
		return Locale{}, err
	}

	if !marketOffersLanguage(market, lang.Code) {
		return Locale{}, newLanguageNotOfferedError(lang.Code, market.Code)
	}

	return Locale{
		Language:         lang,
		Market:           market,
		Code:             CombinedID(lang.Code, market.Code),
		IsRTL:            lang.Direction == DirectionRTL,
		Timezone:         market.Timezone,
		BusinessCalendar: market.BusinessCalendar,
	}, nil
}

// LanguagesForMarket returns the languages a market offers, sorted by code.
// An unknown market yields an empty list rather than an error.
func (r *Registry) LanguagesForMarket(marketCode string) []Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	market, ok := r.markets[normalizeMarketCode(marketCode)]
	if !ok {
		return nil
	}

	languages := make([]Language, 0, len(market.SupportedLanguages))
	for _, code := range market.SupportedLanguages {
		if lang, ok := r.languages[code]; ok {
			languages = append(languages, lang)
		}
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Code < languages[j].Code
	})
	return languages
}

// DefaultLanguage returns the catalog entry marked as default.
func (r *Registry) DefaultLanguage() Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, lang := range r.languages {
		if lang.IsDefault {
			return lang
		}
	}
	// Unreachable while the constructor invariant holds.
	return Language{}
}

// Languages returns every catalog language sorted by code.
func (r *Registry) Languages() []Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Language, 0, len(r.languages))
	for _, lang := range r.languages {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Markets returns every catalog market sorted by code.
func (r *Registry) Markets() []Market {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Market, 0, len(r.markets))
	for _, market := range r.markets {
		out = append(out, market)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// AddLanguage inserts a new catalog language. Adding a second default is
// rejected to keep the single-default invariant.
func (r *Registry) AddLanguage(lang Language) error {
	lang.Code = normalizeLanguageCode(lang.Code)
	if lang.Code == "" {
		return newUnsupportedLanguageError(lang.Code)
	}
	if lang.Direction == "" {
		lang.Direction = DirectionLTR
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if lang.IsDefault {
		return newDefaultLanguageError("catalog already declares a default language")
	}
	r.languages[lang.Code] = lang
	return nil
}

// UpdateLanguage replaces an existing catalog language. Clearing the default
// flag on the default language is rejected.
func (r *Registry) UpdateLanguage(lang Language) error {
	lang.Code = normalizeLanguageCode(lang.Code)

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.languages[lang.Code]
	if !ok {
		return newUnsupportedLanguageError(lang.Code)
	}
	if existing.IsDefault != lang.IsDefault {
		return newDefaultLanguageError("default language flag cannot be changed in place")
	}
	if lang.Direction == "" {
		lang.Direction = existing.Direction
	}
	r.languages[lang.Code] = lang
	return nil
}

// RemoveLanguage deletes a catalog language. The default language cannot be
// removed.
func (r *Registry) RemoveLanguage(code string) error {
	code = normalizeLanguageCode(code)

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.languages[code]
	if !ok {
		return newUnsupportedLanguageError(code)
	}
	if existing.IsDefault {
		return newDefaultLanguageError("default language cannot be removed")
	}
	delete(r.languages, code)
	return nil
}

// AddMarket inserts a new catalog market.
func (r *Registry) AddMarket(market Market) error {
	market.Code = normalizeMarketCode(market.Code)
	if market.Code == "" {
		return newUnsupportedMarketError(market.Code)
	}
	for i, code := range market.SupportedLanguages {
		market.SupportedLanguages[i] = normalizeLanguageCode(code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.markets[market.Code] = market
	return nil
}

// UpdateMarket replaces an existing catalog market.
func (r *Registry) UpdateMarket(market Market) error {
	market.Code = normalizeMarketCode(market.Code)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.markets[market.Code]; !ok {
		return newUnsupportedMarketError(market.Code)
	}
	for i, code := range market.SupportedLanguages {
		market.SupportedLanguages[i] = normalizeLanguageCode(code)
	}
	r.markets[market.Code] = market
	return nil
}

// RemoveMarket deletes a catalog market.
func (r *Registry) RemoveMarket(code string) error {
	code = normalizeMarketCode(code)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.markets[code]; !ok {
		return newUnsupportedMarketError(code)
	}
	delete(r.markets, code)
	return nil
}

func marketOffersLanguage(market Market, languageCode string) bool {
	for _, code := range market.SupportedLanguages {
		if code == languageCode {
			return true
		}
	}
	return false
}
