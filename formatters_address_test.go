package localize

import (
	"strings"
	"testing"
)

func TestFormatAddress(t *testing.T) {
	formatter := testFormatter(t)

	french := Address{
		Street:     "12 Rue de Rivoli",
		City:       "Paris",
		PostalCode: "75001",
		Country:    "France",
	}
	got := formatter.FormatAddress(french, "fr", "FR", true)
	want := "12 Rue de Rivoli\n75001 Paris\nFrance"
	if got != want {
		t.Fatalf("FormatAddress fr = %q, want %q", got, want)
	}

	american := Address{
		Street:     "350 Fifth Avenue",
		City:       "New York",
		State:      "NY",
		PostalCode: "10118",
		Country:    "USA",
	}
	got = formatter.FormatAddress(american, "en", "US", true)
	want = "350 Fifth Avenue\nNew York, NY 10118\nUSA"
	if got != want {
		t.Fatalf("FormatAddress us = %q, want %q", got, want)
	}
}

func TestFormatAddressDropsMissingFields(t *testing.T) {
	formatter := testFormatter(t)

	partial := Address{Street: "12 Rue de Rivoli", City: "Paris"}
	got := formatter.FormatAddress(partial, "fr", "FR", true)
	if strings.Contains(got, "{") {
		t.Fatalf("unresolved placeholder in %q", got)
	}
	if strings.Contains(got, "\n\n") {
		t.Fatalf("blank line left in %q", got)
	}
	if got != "12 Rue de Rivoli\nParis" {
		t.Fatalf("FormatAddress partial = %q", got)
	}
}

func TestFormatAddressSingleLine(t *testing.T) {
	formatter := testFormatter(t)

	addr := Address{Street: "12 Rue de Rivoli", City: "Paris", PostalCode: "75001", Country: "France"}
	got := formatter.FormatAddress(addr, "fr", "FR", false)
	if got != "12 Rue de Rivoli, 75001 Paris, France" {
		t.Fatalf("FormatAddress single line = %q", got)
	}
}

func TestValidateAddress(t *testing.T) {
	formatter := testFormatter(t)

	tests := []struct {
		name        string
		addr        Address
		language    string
		market      string
		wantValid   bool
		wantMissing []string
		wantErrors  []string
	}{
		{
			name:      "valid french address",
			addr:      Address{Street: "12 Rue de Rivoli", City: "Paris", PostalCode: "75001"},
			language:  "fr",
			market:    "FR",
			wantValid: true,
		},
		{
			name:        "missing required fields",
			addr:        Address{Street: "12 Rue de Rivoli"},
			language:    "fr",
			market:      "FR",
			wantMissing: []string{"city", "postalCode"},
		},
		{
			name:       "bad postal code",
			addr:       Address{Street: "12 Rue de Rivoli", City: "Paris", PostalCode: "ABC"},
			language:   "fr",
			market:     "FR",
			wantErrors: []string{"postalCode"},
		},
		{
			name:      "us zip plus four",
			addr:      Address{Street: "350 Fifth Avenue", City: "New York", State: "NY", PostalCode: "10118-0110"},
			language:  "en",
			market:    "US",
			wantValid: true,
		},
		{
			name:       "bad phone",
			addr:       Address{Street: "350 Fifth Avenue", City: "New York", State: "NY", PostalCode: "10118", Phone: "12"},
			language:   "en",
			market:     "US",
			wantErrors: []string{"phone"},
		},
		{
			name:      "unknown pair validates trivially",
			addr:      Address{},
			language:  "de",
			market:    "DE",
			wantValid: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := formatter.ValidateAddress(tc.addr, tc.language, tc.market)
			if result.IsValid != tc.wantValid {
				t.Fatalf("IsValid = %v, want %v (%+v)", result.IsValid, tc.wantValid, result)
			}
			if len(result.MissingFields) != len(tc.wantMissing) {
				t.Fatalf("MissingFields = %v, want %v", result.MissingFields, tc.wantMissing)
			}
			for _, field := range tc.wantMissing {
				found := false
				for _, missing := range result.MissingFields {
					if missing == field {
						found = true
					}
				}
				if !found {
					t.Fatalf("expected %q in MissingFields %v", field, result.MissingFields)
				}
			}
			for _, field := range tc.wantErrors {
				if _, ok := result.Errors[field]; !ok {
					t.Fatalf("expected error for %q, got %v", field, result.Errors)
				}
			}
		})
	}
}
