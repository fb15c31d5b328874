package localize

import (
	"time"

	"github.com/google/uuid"
)

// builtinTranslations holds the hard-coded minimal bundles served when the
// persistent store is unreachable. Resolution must keep rendering something
// even with no backend at all.
var builtinTranslations = map[string]map[string]string{
	"en": {
		"nav.home":       "Home",
		"nav.back":       "Back",
		"common.loading": "Loading...",
		"common.error":   "Something went wrong",
		"common.retry":   "Try again",
		"common.save":    "Save",
		"common.cancel":  "Cancel",
	},
	"fr": {
		"nav.home":       "Accueil",
		"nav.back":       "Retour",
		"common.loading": "Chargement...",
		"common.error":   "Une erreur est survenue",
		"common.retry":   "Réessayer",
		"common.save":    "Enregistrer",
		"common.cancel":  "Annuler",
	},
	"es": {
		"nav.home":       "Inicio",
		"nav.back":       "Volver",
		"common.loading": "Cargando...",
		"common.error":   "Algo salió mal",
		"common.retry":   "Reintentar",
		"common.save":    "Guardar",
		"common.cancel":  "Cancelar",
	},
	"ar": {
		"nav.home":       "الرئيسية",
		"nav.back":       "رجوع",
		"common.loading": "جارٍ التحميل...",
		"common.error":   "حدث خطأ ما",
		"common.retry":   "أعد المحاولة",
		"common.save":    "حفظ",
		"common.cancel":  "إلغاء",
	},
}

// builtinStore seeds a MemoryStore with the built-in strings for every
// valid (language, market) pair in the catalog. It backs engines
// constructed without an explicit store.
func builtinStore(registry *Registry) *MemoryStore {
	store := NewMemoryStore()
	if registry == nil {
		return store
	}
	for _, market := range registry.Markets() {
		for _, code := range market.SupportedLanguages {
			for key, value := range builtinTranslations[normalizeLanguageCode(code)] {
				store.put(code, market.Code, TranslationValue{Key: key, Value: value})
			}
		}
	}
	return store
}

// builtinBundle synthesizes a minimal bundle for the language. Languages
// without built-in entries get an empty bundle so resolution degrades to the
// raw key.
func builtinBundle(languageCode, marketCode string) *TranslationBundle {
	language := normalizeLanguageCode(languageCode)

	bundle := &TranslationBundle{
		Language:     language,
		Market:       normalizeMarketCode(marketCode),
		Version:      uuid.NewString(),
		Translations: make(map[string]TranslationValue),
		LastUpdated:  time.Now().UTC(),
		Builtin:      true,
	}

	for key, value := range builtinTranslations[language] {
		bundle.Translations[key] = TranslationValue{Key: key, Value: value}
	}

	return bundle
}
