package localize

// DefaultCatalog returns the built-in language/market catalog. French is the
// default (ultimate fallback) language; Arabic is the catalog's RTL entry.
func DefaultCatalog() CatalogData {
	return CatalogData{
		Languages: []Language{
			{
				Code:       "fr",
				Name:       "French",
				NativeName: "Français",
				Direction:  DirectionLTR,
				IsDefault:  true,
				MarketCode: "FR",
			},
			{
				Code:       "en",
				Name:       "English",
				NativeName: "English",
				Direction:  DirectionLTR,
				MarketCode: "US",
			},
			{
				Code:       "es",
				Name:       "Spanish",
				NativeName: "Español",
				Direction:  DirectionLTR,
				MarketCode: "ES",
			},
			{
				Code:       "ar",
				Name:       "Arabic",
				NativeName: "العربية",
				Direction:  DirectionRTL,
				MarketCode: "SA",
			},
		},
		Markets: []Market{
			{
				Code:               "US",
				Name:               "United States",
				SupportedLanguages: []string{"en", "es"},
				CurrencyCode:       "USD",
				NumberFormat: NumberFormatRules{
					DecimalSep:       ".",
					ThousandSep:      ",",
					CurrencySymbol:   "$",
					CurrencyPosition: "before",
					CurrencyDecimals: 2,
				},
				DateFormat: DateFormatRules{DayFirst: false, Use24Hour: false},
				PhonePlan: PhoneDialPlan{
					CountryCode:    "1",
					NationalPrefix: "1",
					Groups:         []int{3, 3, 4},
				},
				AddressFormat: AddressFormatRules{
					Template:       "{street}\n{city}, {state} {postalCode}\n{country}",
					RequiredFields: []string{"street", "city", "state", "postalCode"},
					PostalPattern:  `^\d{5}(-\d{4})?$`,
					PhonePattern:   `^\+?1?\d{10}$`,
				},
				Timezone:         "America/New_York",
				BusinessCalendar: "gregorian",
			},
			{
				Code:               "FR",
				Name:               "France",
				SupportedLanguages: []string{"fr", "en"},
				CurrencyCode:       "EUR",
				NumberFormat: NumberFormatRules{
					DecimalSep:       ",",
					ThousandSep:      " ",
					CurrencySymbol:   "€",
					CurrencyPosition: "after",
					CurrencyDecimals: 2,
					SpaceAroundSym:   true,
				},
				DateFormat: DateFormatRules{DayFirst: true, Use24Hour: true},
				PhonePlan: PhoneDialPlan{
					CountryCode:    "33",
					NationalPrefix: "0",
					Groups:         []int{1, 2, 2, 2, 2},
				},
				AddressFormat: AddressFormatRules{
					Template:       "{street}\n{postalCode} {city}\n{country}",
					RequiredFields: []string{"street", "city", "postalCode"},
					PostalPattern:  `^\d{5}$`,
					PhonePattern:   `^\+?33?0?\d{9}$`,
				},
				Timezone:         "Europe/Paris",
				BusinessCalendar: "gregorian",
			},
			{
				Code:               "ES",
				Name:               "Spain",
				SupportedLanguages: []string{"es", "en"},
				CurrencyCode:       "EUR",
				NumberFormat: NumberFormatRules{
					DecimalSep:       ",",
					ThousandSep:      ".",
					CurrencySymbol:   "€",
					CurrencyPosition: "after",
					CurrencyDecimals: 2,
					SpaceAroundSym:   true,
				},
				DateFormat: DateFormatRules{DayFirst: true, Use24Hour: true},
				PhonePlan: PhoneDialPlan{
					CountryCode: "34",
					Groups:      []int{3, 3, 3},
				},
				AddressFormat: AddressFormatRules{
					Template:       "{street}\n{postalCode} {city}\n{country}",
					RequiredFields: []string{"street", "city", "postalCode"},
					PostalPattern:  `^\d{5}$`,
					PhonePattern:   `^\+?34?\d{9}$`,
				},
				Timezone:         "Europe/Madrid",
				BusinessCalendar: "gregorian",
			},
			{
				Code:               "SA",
				Name:               "Saudi Arabia",
				SupportedLanguages: []string{"ar", "en"},
				CurrencyCode:       "SAR",
				NumberFormat: NumberFormatRules{
					DecimalSep:       ".",
					ThousandSep:      ",",
					CurrencySymbol:   "ر.س",
					CurrencyPosition: "after",
					CurrencyDecimals: 2,
					SpaceAroundSym:   true,
				},
				DateFormat: DateFormatRules{DayFirst: true, Use24Hour: true},
				PhonePlan: PhoneDialPlan{
					CountryCode:    "966",
					NationalPrefix: "0",
					Groups:         []int{2, 3, 4},
				},
				AddressFormat: AddressFormatRules{
					Template:       "{street}\n{city} {postalCode}\n{country}",
					RequiredFields: []string{"street", "city"},
					PostalPattern:  `^\d{5}$`,
					PhonePattern:   `^\+?966?0?\d{9}$`,
				},
				Timezone:         "Asia/Riyadh",
				BusinessCalendar: "hijri",
			},
		},
	}
}

// NewDefaultRegistry builds a registry over the built-in catalog.
func NewDefaultRegistry() *Registry {
	registry, err := NewRegistry(DefaultCatalog())
	if err != nil {
		// The built-in catalog always declares a single default language.
		panic(err)
	}
	return registry
}
