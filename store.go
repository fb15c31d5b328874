package localize

import (
	"context"
	"sort"
	"sync"
)

// TranslationStore is the persistent-store contract: active rows filtered by
// (language, market) on read, single-row writes keyed (key, language,
// market). No transactional multi-row guarantee is assumed.
type TranslationStore interface {
	// LoadBundle returns every active translation for the pair.
	LoadBundle(ctx context.Context, languageCode, marketCode string) ([]TranslationValue, error)
	// Upsert writes a single row, replacing any active value for the key.
	Upsert(ctx context.Context, languageCode, marketCode string, value TranslationValue) error
	// Delete removes the row for the key, reporting whether it existed.
	Delete(ctx context.Context, languageCode, marketCode, key string) (bool, error)
}

// MemoryStore is an in-memory TranslationStore used for seeds and tests.
type MemoryStore struct {
	mu sync.RWMutex
	// rows maps "<lang>-<MARKET>" to key to value.
	rows map[string]map[string]TranslationValue
}

var _ TranslationStore = (*MemoryStore)(nil)

// NewMemoryStore builds an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]map[string]TranslationValue)}
}

// NewMemoryStoreFromSeed builds a store pre-populated from bundles keyed by
// combined locale identifier.
func NewMemoryStoreFromSeed(seed map[string]map[string]TranslationValue) *MemoryStore {
	store := NewMemoryStore()
	for id, bundle := range seed {
		languageCode, marketCode := splitCombinedID(id)
		for key, value := range bundle {
			if value.Key == "" {
				value.Key = key
			}
			store.put(languageCode, marketCode, value)
		}
	}
	return store
}

// LoadBundle returns the active rows for the pair sorted by key.
func (s *MemoryStore) LoadBundle(_ context.Context, languageCode, marketCode string) ([]TranslationValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bundle, ok := s.rows[CombinedID(languageCode, marketCode)]
	if !ok {
		return nil, nil
	}

	values := make([]TranslationValue, 0, len(bundle))
	for _, value := range bundle {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool { return values[i].Key < values[j].Key })
	return values, nil
}

// Upsert replaces any existing value for the key.
func (s *MemoryStore) Upsert(_ context.Context, languageCode, marketCode string, value TranslationValue) error {
	s.put(languageCode, marketCode, value)
	return nil
}

// Delete removes the key's row if present.
func (s *MemoryStore) Delete(_ context.Context, languageCode, marketCode, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle, ok := s.rows[CombinedID(languageCode, marketCode)]
	if !ok {
		return false, nil
	}
	if _, exists := bundle[key]; !exists {
		return false, nil
	}
	delete(bundle, key)
	return true, nil
}

func (s *MemoryStore) put(languageCode, marketCode string, value TranslationValue) {
	id := CombinedID(languageCode, marketCode)

	s.mu.Lock()
	defer s.mu.Unlock()

	bundle := s.rows[id]
	if bundle == nil {
		bundle = make(map[string]TranslationValue)
		s.rows[id] = bundle
	}
	bundle[value.Key] = value
}
