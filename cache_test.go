package localize

import (
	"testing"
	"time"
)

func testBundle(language, market string) *TranslationBundle {
	return &TranslationBundle{
		Language:     language,
		Market:       market,
		Version:      language + "-" + market + "-v1",
		Translations: map[string]TranslationValue{},
	}
}

func TestBundleCacheHitAndMiss(t *testing.T) {
	cache := NewBundleCache()

	if _, ok := cache.Get("fr", "FR"); ok {
		t.Fatal("expected miss on empty cache")
	}

	bundle := testBundle("fr", "FR")
	cache.Put("fr", "FR", bundle, time.Hour)

	got, ok := cache.Get("fr", "FR")
	if !ok || got.Version != bundle.Version {
		t.Fatalf("Get = %v,%v want cached bundle", got, ok)
	}

	// Pair keys normalize, so lookups are case-insensitive.
	if _, ok := cache.Get("FR", "fr"); !ok {
		t.Fatal("expected hit via normalized pair")
	}
}

func TestBundleCacheTTLExpiry(t *testing.T) {
	current := time.Unix(1000, 0)
	cache := NewBundleCache(WithCacheClock(func() time.Time { return current }))

	cache.Put("en", "US", testBundle("en", "US"), time.Minute)

	current = current.Add(time.Minute)
	if _, ok := cache.Get("en", "US"); !ok {
		t.Fatal("entry at exactly TTL should still be fresh")
	}

	current = current.Add(time.Second)
	if _, ok := cache.Get("en", "US"); ok {
		t.Fatal("expected stale entry to miss")
	}
	if cache.Len() != 0 {
		t.Fatalf("stale entry should be removed, Len = %d", cache.Len())
	}
}

func TestBundleCacheEvictsInInsertionOrder(t *testing.T) {
	cache := NewBundleCache(WithCacheCapacity(2))

	cache.Put("fr", "FR", testBundle("fr", "FR"), time.Hour)
	cache.Put("en", "US", testBundle("en", "US"), time.Hour)

	// Reads must not promote entries.
	if _, ok := cache.Get("fr", "FR"); !ok {
		t.Fatal("expected hit for fr-FR")
	}

	cache.Put("ar", "SA", testBundle("ar", "SA"), time.Hour)

	if _, ok := cache.Get("fr", "FR"); ok {
		t.Fatal("oldest insertion should have been evicted")
	}
	if _, ok := cache.Get("en", "US"); !ok {
		t.Fatal("second insertion should survive")
	}
	if _, ok := cache.Get("ar", "SA"); !ok {
		t.Fatal("newest insertion should survive")
	}
}

func TestBundleCachePutOverwrites(t *testing.T) {
	cache := NewBundleCache(WithCacheCapacity(2))

	cache.Put("fr", "FR", testBundle("fr", "FR"), time.Hour)
	cache.Put("en", "US", testBundle("en", "US"), time.Hour)

	replacement := testBundle("fr", "FR")
	replacement.Version = "fr-FR-v2"
	cache.Put("fr", "FR", replacement, time.Hour)

	got, ok := cache.Get("fr", "FR")
	if !ok || got.Version != "fr-FR-v2" {
		t.Fatalf("Get after overwrite = %v,%v", got, ok)
	}

	// Overwriting refreshes the insertion slot, so en-US is now oldest.
	cache.Put("ar", "SA", testBundle("ar", "SA"), time.Hour)
	if _, ok := cache.Get("en", "US"); ok {
		t.Fatal("expected en-US to be evicted after fr-FR was refreshed")
	}
}

func TestBundleCacheInvalidate(t *testing.T) {
	cache := NewBundleCache()

	cache.Put("fr", "FR", testBundle("fr", "FR"), time.Hour)
	cache.Put("en", "US", testBundle("en", "US"), time.Hour)

	cache.Invalidate("fr", "FR")
	if _, ok := cache.Get("fr", "FR"); ok {
		t.Fatal("expected invalidated entry to miss")
	}
	if cache.Len() != 1 {
		t.Fatalf("Len = %d, want 1", cache.Len())
	}

	cache.InvalidateAll()
	if cache.Len() != 0 {
		t.Fatalf("Len after InvalidateAll = %d, want 0", cache.Len())
	}
}
