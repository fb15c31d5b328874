package localize

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderYAML(t *testing.T) {
	path := writeTestFile(t, "translations.yaml", `
fr-FR:
  nav.home: "Accueil"
  cart.item:
    value: "article"
    context: "checkout"
  order.ref:
    value: "Commande {ref}"
    variables:
      ref: "N/A"
en-US:
  nav.home: "Home"
`)

	loader := NewFileLoader(path)
	buckets, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(buckets) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(buckets))
	}
	if got := buckets["fr-FR"]["nav.home"].Value; got != "Accueil" {
		t.Fatalf("fr-FR nav.home = %q", got)
	}
	if got := buckets["fr-FR"]["cart.item"].Context; got != "checkout" {
		t.Fatalf("cart.item context = %q", got)
	}
	if got := buckets["fr-FR"]["order.ref"].Variables["ref"]; got != "N/A" {
		t.Fatalf("order.ref variables = %q", got)
	}
}

func TestFileLoaderJSON(t *testing.T) {
	path := writeTestFile(t, "translations.json", `{
  "ar-SA": {
    "nav.home": "الرئيسية",
    "welcome": {"value": "أهلاً", "gender": "f"}
  }
}`)

	buckets, err := NewFileLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := buckets["ar-SA"]["nav.home"].Value; got != "الرئيسية" {
		t.Fatalf("nav.home = %q", got)
	}
	if got := buckets["ar-SA"]["welcome"].Gender; got != "f" {
		t.Fatalf("welcome gender = %q", got)
	}
}

func TestFileLoaderNormalizesPairIDs(t *testing.T) {
	path := writeTestFile(t, "translations.yaml", `
FR_fr:
  nav.home: "Accueil"
`)

	buckets, err := NewFileLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := buckets["fr-FR"]; !ok {
		t.Fatalf("expected normalized pair key, got %v", keysOf(buckets))
	}
}

func TestFileLoaderLaterFilesOverride(t *testing.T) {
	first := writeTestFile(t, "base.yaml", `
fr-FR:
  nav.home: "Accueil"
  nav.back: "Retour"
`)
	second := writeTestFile(t, "override.yaml", `
fr-FR:
  nav.home: "Maison"
`)

	buckets, err := NewFileLoader(first, second).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := buckets["fr-FR"]["nav.home"].Value; got != "Maison" {
		t.Fatalf("override lost: nav.home = %q", got)
	}
	if got := buckets["fr-FR"]["nav.back"].Value; got != "Retour" {
		t.Fatalf("base value lost: nav.back = %q", got)
	}
}

func TestFileLoaderErrors(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error for empty loader")
	}
	if _, err := NewFileLoader("missing.yaml").Load(); err == nil {
		t.Fatal("expected error for missing file")
	}

	txt := writeTestFile(t, "translations.txt", "fr-FR: {}")
	if _, err := NewFileLoader(txt).Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}

	empty := writeTestFile(t, "empty.yaml", "")
	if _, err := NewFileLoader(empty).Load(); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestFileLoaderSeedsStore(t *testing.T) {
	path := writeTestFile(t, "translations.yaml", `
fr-FR:
  greeting: "Bonjour {name}"
`)

	store, err := NewFileLoader(path).LoadStore()
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}

	engine, err := NewEngine(WithStore(store))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ctx := context.Background()
	engine.T(ctx, "greeting", nil)
	engine.Wait()
	got := engine.T(ctx, "greeting", map[string]any{"name": "Amira"})
	if got != "Bonjour Amira" {
		t.Fatalf("T = %q", got)
	}
}

func keysOf(m map[string]map[string]TranslationValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
