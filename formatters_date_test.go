package localize

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	formatter := testFormatter(t)
	// A Wednesday.
	when := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		language string
		market   string
		style    DateStyle
		want     string
	}{
		{name: "us short", language: "en", market: "US", style: DateStyleShort, want: "03/05/25"},
		{name: "us medium", language: "en", market: "US", style: DateStyleMedium, want: "Mar 5, 2025"},
		{name: "us long", language: "en", market: "US", style: DateStyleLong, want: "March 5, 2025"},
		{name: "us full", language: "en", market: "US", style: DateStyleFull, want: "Wednesday, March 5, 2025"},
		{name: "french short", language: "fr", market: "FR", style: DateStyleShort, want: "05/03/25"},
		{name: "french long", language: "fr", market: "FR", style: DateStyleLong, want: "5 mars 2025"},
		{name: "french full", language: "fr", market: "FR", style: DateStyleFull, want: "mercredi 5 mars 2025"},
		{name: "spanish long", language: "es", market: "ES", style: DateStyleLong, want: "5 marzo 2025"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := formatter.FormatDate(when, tc.language, tc.market, tc.style)
			if got != tc.want {
				t.Fatalf("FormatDate(%s-%s, %s) = %q, want %q", tc.language, tc.market, tc.style, got, tc.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	formatter := testFormatter(t)
	when := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)

	if got := formatter.FormatTime(when, "en", "US"); got != "2:30 PM" {
		t.Fatalf("US time = %q", got)
	}
	if got := formatter.FormatTime(when, "fr", "FR"); got != "14:30" {
		t.Fatalf("FR time = %q", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	formatter := testFormatter(t)
	when := time.Date(2025, time.March, 5, 9, 5, 0, 0, time.UTC)

	if got := formatter.FormatDateTime(when, "en", "US", DateStyleShort); got != "03/05/25 9:05 AM" {
		t.Fatalf("FormatDateTime = %q", got)
	}
}

func TestFormatDatePattern(t *testing.T) {
	formatter := testFormatter(t)
	when := time.Date(2025, time.March, 5, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: "yyyy-MM-dd", want: "2025-03-05"},
		{pattern: "dd/MM/yyyy HH:mm:ss", want: "05/03/2025 14:30:45"},
		{pattern: "EEEE, MMM d yyyy", want: "Wednesday, Mar 5 2025"},
	}

	for _, tc := range tests {
		got := formatter.FormatDatePattern(when, "en", "US", tc.pattern)
		if got != tc.want {
			t.Fatalf("FormatDatePattern(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}
