package localize

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// ResolveOptions carries the optional resolution discriminators.
type ResolveOptions struct {
	// Count triggers plural category selection when non-nil.
	Count *int
	// Gender and Context prefer a qualified row ("key#value") when present.
	Gender  string
	Context string
}

// Count is a convenience for building ResolveOptions counts inline.
func Count(n int) *int {
	return &n
}

// Resolver turns (key, params, options) into a final string for a
// (language, market) pair. Resolution never fails: every failure mode
// degrades to usable output (default-language value, raw key, literal
// placeholder). This is a deliberate availability-over-correctness choice.
type Resolver struct {
	registry         *Registry
	cache            *BundleCache
	store            TranslationStore
	ttl              time.Duration
	useCache         bool
	fallbackLanguage string
	logger           glog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
	latest   map[string]*TranslationBundle
	loads    sync.WaitGroup
}

// ResolverOption mutates resolver construction.
type ResolverOption func(*Resolver)

// WithResolverTTL overrides the cache TTL for loaded bundles.
func WithResolverTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithResolverCache sets the bundle cache. A nil cache (or
// WithResolverCacheDisabled) forces every resolution through the store.
func WithResolverCache(cache *BundleCache) ResolverOption {
	return func(r *Resolver) {
		r.cache = cache
		r.useCache = cache != nil
	}
}

// WithResolverCacheDisabled forces every resolution through the store.
func WithResolverCacheDisabled() ResolverOption {
	return func(r *Resolver) {
		r.useCache = false
	}
}

// WithResolverFallbackLanguage overrides the registry default as the
// fallback bundle language.
func WithResolverFallbackLanguage(code string) ResolverOption {
	return func(r *Resolver) {
		r.fallbackLanguage = normalizeLanguageCode(code)
	}
}

// WithResolverLogger attaches a structured logger for soft degradations.
func WithResolverLogger(logger glog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver builds a resolver over the registry and store.
func NewResolver(registry *Registry, store TranslationStore, opts ...ResolverOption) *Resolver {
	resolver := &Resolver{
		registry: registry,
		store:    store,
		cache:    NewBundleCache(),
		ttl:      DefaultBundleTTL,
		useCache: true,
		inflight: make(map[string]struct{}),
		latest:   make(map[string]*TranslationBundle),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(resolver)
		}
	}
	return resolver
}

// Resolve returns the display string for key under the given pair.
//
// The chain: active bundle, then the default language's bundle, then the raw
// key itself. A count selects a plural category and applies the per-language
// marker transform; params merged over stored variables substitute {name}
// placeholders, unmatched placeholders staying verbatim.
func (r *Resolver) Resolve(ctx context.Context, languageCode, marketCode, key string, params map[string]any, opts ResolveOptions) string {
	if r == nil || key == "" {
		return key
	}

	languageCode = normalizeLanguageCode(languageCode)
	marketCode = normalizeMarketCode(marketCode)

	value, found := r.lookup(ctx, languageCode, marketCode, key, opts)
	if !found {
		fallbackLang, fallbackMarket := r.fallbackPair()
		if fallbackLang != "" && fallbackLang != languageCode {
			value, found = r.lookup(ctx, fallbackLang, fallbackMarket, key, opts)
		}
	}
	if !found {
		// Terminal fallback: the raw key is the displayed value.
		return key
	}

	result := value.Value

	if opts.Count != nil {
		category := PluralCategoryFor(languageCode, *opts.Count)
		result = applyPluralForm(result, languageCode, category)
		if params == nil {
			params = map[string]any{"count": *opts.Count}
		} else if _, ok := params["count"]; !ok {
			merged := make(map[string]any, len(params)+1)
			for k, v := range params {
				merged[k] = v
			}
			merged["count"] = *opts.Count
			params = merged
		}
	}

	return interpolate(result, value.Variables, params)
}

// Warm loads the pair's bundle into the cache, returning the load error so
// callers orchestrating locale changes can observe store health. Resolution
// itself never surfaces this error.
func (r *Resolver) Warm(ctx context.Context, languageCode, marketCode string) error {
	_, err := r.loadBundle(ctx, languageCode, marketCode)
	return err
}

// lookup fetches the pair's bundle and searches the qualified key candidates.
func (r *Resolver) lookup(ctx context.Context, languageCode, marketCode, key string, opts ResolveOptions) (TranslationValue, bool) {
	bundle := r.bundleFor(ctx, languageCode, marketCode)
	for _, candidate := range lookupCandidates(key, opts) {
		if value, ok := bundle.Lookup(candidate); ok {
			return value, true
		}
	}
	return TranslationValue{}, false
}

// bundleFor returns the freshest bundle available without blocking the
// caller. On a cache miss it kicks off a background load (one in-flight
// load per pair) and serves the built-in minimal bundle meanwhile, so a
// stalled store leaves resolution on fallback values instead of hanging
// callers. With caching disabled every resolution triggers a store load
// and the last completed load is served.
func (r *Resolver) bundleFor(ctx context.Context, languageCode, marketCode string) *TranslationBundle {
	if r.useCache && r.cache != nil {
		if bundle, ok := r.cache.Get(languageCode, marketCode); ok {
			return bundle
		}
		r.startLoad(ctx, languageCode, marketCode)
	} else {
		r.startLoad(ctx, languageCode, marketCode)

		r.mu.Lock()
		bundle := r.latest[CombinedID(languageCode, marketCode)]
		r.mu.Unlock()
		if bundle != nil {
			return bundle
		}
	}

	return builtinBundle(languageCode, marketCode)
}

// startLoad dispatches a background bundle load unless one is already in
// flight for the pair. The load outlives the caller's request context.
func (r *Resolver) startLoad(ctx context.Context, languageCode, marketCode string) {
	key := CombinedID(languageCode, marketCode)

	r.mu.Lock()
	if _, busy := r.inflight[key]; busy {
		r.mu.Unlock()
		return
	}
	r.inflight[key] = struct{}{}
	r.mu.Unlock()

	r.loads.Add(1)
	go func() {
		defer r.loads.Done()
		defer func() {
			r.mu.Lock()
			delete(r.inflight, key)
			r.mu.Unlock()
		}()

		if _, err := r.loadBundle(context.WithoutCancel(ctx), languageCode, marketCode); err != nil {
			r.logDegradation("serving built-in bundle, store load failed",
				"language", languageCode, "market", marketCode, "error", err)
		}
	}()
}

// WaitForLoads blocks until every dispatched background load has
// completed. Resolution never needs it; callers sequencing edits with
// reads do.
func (r *Resolver) WaitForLoads() {
	r.loads.Wait()
}

func (r *Resolver) loadBundle(ctx context.Context, languageCode, marketCode string) (*TranslationBundle, error) {
	if r.store == nil {
		return nil, fmt.Errorf("localize: no translation store configured")
	}

	values, err := r.store.LoadBundle(ctx, languageCode, marketCode)
	if err != nil {
		return nil, err
	}

	bundle := &TranslationBundle{
		Language:     normalizeLanguageCode(languageCode),
		Market:       normalizeMarketCode(marketCode),
		Version:      uuid.NewString(),
		Translations: make(map[string]TranslationValue, len(values)),
		LastUpdated:  time.Now().UTC(),
	}
	for _, value := range values {
		bundle.Translations[bundleKey(value)] = value
	}

	if r.useCache && r.cache != nil {
		r.cache.Put(languageCode, marketCode, bundle, r.ttl)
	} else {
		r.mu.Lock()
		r.latest[CombinedID(languageCode, marketCode)] = bundle
		r.mu.Unlock()
	}
	return bundle, nil
}

// fallbackPair returns the default language and its home market.
func (r *Resolver) fallbackPair() (string, string) {
	code := r.fallbackLanguage
	if code == "" && r.registry != nil {
		code = r.registry.DefaultLanguage().Code
	}
	if code == "" {
		return "", ""
	}
	if r.registry != nil {
		if lang, err := r.registry.Language(code); err == nil {
			return lang.Code, lang.MarketCode
		}
	}
	return code, ""
}

func (r *Resolver) logDegradation(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}

// bundleKey derives the bundle map key for a row, qualifying it by context
// or gender so discriminated rows coexist with the bare one while keeping at
// most one active value per qualified key.
func bundleKey(value TranslationValue) string {
	if value.Context != "" {
		return value.Key + "#" + value.Context
	}
	if value.Gender != "" {
		return value.Key + "#" + value.Gender
	}
	return value.Key
}

func lookupCandidates(key string, opts ResolveOptions) []string {
	candidates := make([]string, 0, 3)
	if opts.Context != "" {
		candidates = append(candidates, key+"#"+opts.Context)
	}
	if opts.Gender != "" {
		candidates = append(candidates, key+"#"+opts.Gender)
	}
	return append(candidates, key)
}

// interpolate substitutes {name} placeholders by exact name match, caller
// params taking precedence over stored variables. Unmatched placeholders are
// left verbatim in the output.
func interpolate(template string, stored map[string]string, params map[string]any) string {
	if len(stored) == 0 && len(params) == 0 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if params != nil {
			if value, ok := params[name]; ok {
				return stringifyParam(value)
			}
		}
		if stored != nil {
			if value, ok := stored[name]; ok {
				return value
			}
		}
		return match
	})
}

func stringifyParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
