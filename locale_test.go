package localize

import "testing"

func TestCombinedID(t *testing.T) {
	tests := []struct {
		language string
		market   string
		want     string
	}{
		{"fr", "FR", "fr-FR"},
		{"EN", "us", "en-US"},
		{" ar ", " sa ", "ar-SA"},
		{"pt_br", "BR", "pt-br-BR"},
		{"fr", "", "fr"},
		{"", "US", "US"},
	}

	for _, tc := range tests {
		if got := CombinedID(tc.language, tc.market); got != tc.want {
			t.Fatalf("CombinedID(%q,%q) = %q, want %q", tc.language, tc.market, got, tc.want)
		}
	}
}

func TestSplitCombinedID(t *testing.T) {
	tests := []struct {
		id         string
		wantLang   string
		wantMarket string
	}{
		{"fr-FR", "fr", "FR"},
		{"en_us", "en", "US"},
		{"ar", "ar", ""},
		{"", "", ""},
	}

	for _, tc := range tests {
		lang, market := splitCombinedID(tc.id)
		if lang != tc.wantLang || market != tc.wantMarket {
			t.Fatalf("splitCombinedID(%q) = %q,%q want %q,%q", tc.id, lang, market, tc.wantLang, tc.wantMarket)
		}
	}
}

func TestLocaleTag(t *testing.T) {
	registry := NewDefaultRegistry()
	locale, err := registry.ResolveLocale("fr", "FR")
	if err != nil {
		t.Fatalf("ResolveLocale: %v", err)
	}
	if got := locale.Tag().String(); got != "fr-FR" {
		t.Fatalf("Tag = %q, want fr-FR", got)
	}
}

func TestErrorPredicates(t *testing.T) {
	registry := NewDefaultRegistry()

	if _, err := registry.Language("zz"); !IsUnsupportedLanguage(err) {
		t.Fatalf("expected unsupported language, got %v", err)
	}
	if _, err := registry.Market("ZZ"); !IsUnsupportedMarket(err) {
		t.Fatalf("expected unsupported market, got %v", err)
	}
	if _, err := registry.ResolveLocale("fr", "US"); !IsLanguageNotOffered(err) {
		t.Fatalf("expected language not offered, got %v", err)
	}

	// Predicates discriminate: a not-offered error is not an unknown code.
	_, err := registry.ResolveLocale("fr", "US")
	if IsUnsupportedLanguage(err) || IsUnsupportedMarket(err) {
		t.Fatalf("predicate overlap for %v", err)
	}
}
