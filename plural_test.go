package localize

import "testing"

func TestPluralCategoryFor(t *testing.T) {
	tests := []struct {
		language string
		count    int
		want     PluralCategory
	}{
		{"en", 0, PluralOther},
		{"en", 1, PluralOne},
		{"en", 2, PluralOther},
		{"en", 37, PluralOther},

		{"fr", 0, PluralZero},
		{"fr", 1, PluralOne},
		{"fr", 2, PluralOther},
		{"es", 0, PluralZero},
		{"es", 5, PluralOther},

		{"ar", 0, PluralZero},
		{"ar", 1, PluralOne},
		{"ar", 2, PluralTwo},
		{"ar", 3, PluralFew},
		{"ar", 10, PluralFew},
		{"ar", 11, PluralMany},
		{"ar", 99, PluralMany},

		// Unknown languages use the default one/other split.
		{"xx", 1, PluralOne},
		{"xx", 0, PluralOther},
	}

	for _, tc := range tests {
		if got := PluralCategoryFor(tc.language, tc.count); got != tc.want {
			t.Fatalf("PluralCategoryFor(%q,%d) = %q, want %q", tc.language, tc.count, got, tc.want)
		}
	}
}

func TestApplyPluralForm(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		language string
		category PluralCategory
		want     string
	}{
		{name: "strip for one", value: "items", language: "en", category: PluralOne, want: "item"},
		{name: "append for other", value: "item", language: "en", category: PluralOther, want: "items"},
		{name: "no double append", value: "items", language: "en", category: PluralOther, want: "items"},
		{name: "strip without marker is noop", value: "box", language: "en", category: PluralOne, want: "box"},
		{name: "arabic marker append", value: "طلب", language: "ar", category: PluralFew, want: "طلبات"},
		{name: "arabic marker strip", value: "طلبات", language: "ar", category: PluralOne, want: "طلب"},
		{name: "empty value", value: "", language: "en", category: PluralOther, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := applyPluralForm(tc.value, tc.language, tc.category)
			if got != tc.want {
				t.Fatalf("applyPluralForm(%q) = %q, want %q", tc.value, got, tc.want)
			}
			// The transform is idempotent for a fixed category.
			if again := applyPluralForm(got, tc.language, tc.category); again != got {
				t.Fatalf("second application changed %q to %q", got, again)
			}
		})
	}
}
