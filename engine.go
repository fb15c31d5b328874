package localize

import (
	"context"
	"sync"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// Engine is the composition root: it owns the registry, cache,
// resolver, formatter and direction adaptor, and tracks the single
// active locale. One engine per process is the intended shape, though
// nothing prevents independent instances in tests.
type Engine struct {
	registry  *Registry
	cache     *BundleCache
	store     TranslationStore
	resolver  *Resolver
	formatter *Formatter
	adaptor   *DirectionAdaptor
	logger    glog.Logger

	mu     sync.RWMutex
	active Locale

	loads sync.WaitGroup
}

// NewEngine assembles an engine from the given options and activates
// the configured (or default) locale synchronously. The only error
// paths are catalog validation and an invalid startup pair.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	registry := cfg.registry
	if registry == nil {
		registry = NewDefaultRegistry()
	}
	store := cfg.store
	if store == nil {
		store = builtinStore(registry)
	}

	cache := NewBundleCache()

	resolverOpts := []ResolverOption{
		WithResolverTTL(cfg.BundleTTL),
		WithResolverCache(cache),
	}
	if !cfg.CacheTranslations {
		resolverOpts = append(resolverOpts, WithResolverCacheDisabled())
	}
	if cfg.FallbackLanguage != "" {
		resolverOpts = append(resolverOpts, WithResolverFallbackLanguage(cfg.FallbackLanguage))
	}
	if cfg.logger != nil {
		resolverOpts = append(resolverOpts, WithResolverLogger(cfg.logger))
	}

	adaptorOpts := []DirectionOption{}
	if cfg.sink != nil {
		adaptorOpts = append(adaptorOpts, WithDirectionSink(cfg.sink))
	}
	if !cfg.EnableRTL {
		adaptorOpts = append(adaptorOpts, WithDirectionDisabled())
	}
	if cfg.MirrorNumbers {
		adaptorOpts = append(adaptorOpts, WithNumberMirroring())
	}

	engine := &Engine{
		registry:  registry,
		cache:     cache,
		store:     store,
		resolver:  NewResolver(registry, store, resolverOpts...),
		formatter: NewFormatter(registry),
		adaptor:   NewDirectionAdaptor(adaptorOpts...),
		logger:    cfg.logger,
	}

	languageCode := cfg.CurrentLanguage
	marketCode := cfg.CurrentMarket
	if languageCode == "" {
		languageCode = registry.DefaultLanguage().Code
	}
	if marketCode == "" {
		lang, err := registry.Language(languageCode)
		if err != nil {
			return nil, err
		}
		marketCode = lang.MarketCode
	}

	locale, err := registry.ResolveLocale(languageCode, marketCode)
	if err != nil {
		return nil, err
	}
	engine.activate(locale)
	return engine, nil
}

// SetLocale validates the pair and, on success, loads its bundle in
// the background before switching. Validation failures surface
// immediately; the switch itself never fails. Concurrent calls race
// deliberately: the last load to complete determines the active
// locale.
func (e *Engine) SetLocale(ctx context.Context, languageCode, marketCode string) error {
	locale, err := e.registry.ResolveLocale(languageCode, marketCode)
	if err != nil {
		return err
	}

	e.loads.Add(1)
	go func() {
		defer e.loads.Done()
		if err := e.resolver.Warm(ctx, locale.Language.Code, locale.Market.Code); err != nil && e.logger != nil {
			e.logger.Warn("bundle warm failed, serving fallback values",
				"locale", locale.Code,
				"error", err,
			)
		}
		e.activate(locale)
	}()
	return nil
}

// SetLanguage switches to the language's home market.
func (e *Engine) SetLanguage(ctx context.Context, languageCode string) error {
	lang, err := e.registry.Language(languageCode)
	if err != nil {
		return err
	}
	return e.SetLocale(ctx, lang.Code, lang.MarketCode)
}

func (e *Engine) activate(locale Locale) {
	e.mu.Lock()
	e.active = locale
	e.mu.Unlock()
	e.adaptor.Apply(locale.Language.Direction)
}

// Wait blocks until all in-flight locale switches and background bundle
// loads have completed.
func (e *Engine) Wait() {
	e.loads.Wait()
	e.resolver.WaitForLoads()
}

// ActiveLocale returns the currently active locale.
func (e *Engine) ActiveLocale() Locale {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

func (e *Engine) activePair() (string, string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active.Language.Code, e.active.Market.Code
}

// T resolves key in the active locale. It never fails; see
// Resolver.Resolve for the degradation chain.
func (e *Engine) T(ctx context.Context, key string, params map[string]any) string {
	lang, market := e.activePair()
	return e.resolver.Resolve(ctx, lang, market, key, params, ResolveOptions{})
}

// TN resolves key with plural selection for count.
func (e *Engine) TN(ctx context.Context, key string, count int, params map[string]any) string {
	lang, market := e.activePair()
	return e.resolver.Resolve(ctx, lang, market, key, params, ResolveOptions{Count: Count(count)})
}

// TOpts resolves key with full control over count, gender and context.
func (e *Engine) TOpts(ctx context.Context, key string, params map[string]any, opts ResolveOptions) string {
	lang, market := e.activePair()
	return e.resolver.Resolve(ctx, lang, market, key, params, opts)
}

// IsRTL reports whether the active language renders right-to-left.
func (e *Engine) IsRTL() bool {
	return e.adaptor.IsRTL()
}

// AddListener registers a zero-argument callback fired on direction
// transitions. Consumers re-query engine state after being notified.
func (e *Engine) AddListener(cb func()) ListenerHandle {
	return e.adaptor.AddListener(cb)
}

// RemoveListener unregisters a listener by handle.
func (e *Engine) RemoveListener(handle ListenerHandle) {
	e.adaptor.RemoveListener(handle)
}

// InvalidateBundles drops every cached bundle, forcing reloads on the
// next resolution.
func (e *Engine) InvalidateBundles() {
	e.cache.InvalidateAll()
}

// InvalidateBundle drops one pair's cached bundle.
func (e *Engine) InvalidateBundle(languageCode, marketCode string) {
	e.cache.Invalidate(languageCode, marketCode)
}

// Registry exposes the catalog for administrative tooling.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Formatter exposes the locale formatter.
func (e *Engine) Formatter() *Formatter {
	return e.formatter
}

// Adaptor exposes the direction adaptor for hosting UIs that map
// classes on newly mounted content.
func (e *Engine) Adaptor() *DirectionAdaptor {
	return e.adaptor
}

// FormatCurrency renders amount for the active locale.
func (e *Engine) FormatCurrency(amount float64) string {
	lang, market := e.activePair()
	return e.formatter.FormatCurrency(amount, lang, market)
}

// FormatNumber renders value for the active locale.
func (e *Engine) FormatNumber(value float64, decimals int, opts ...NumberOption) string {
	lang, market := e.activePair()
	return e.formatter.FormatNumber(value, lang, market, decimals, opts...)
}

// FormatDate renders t for the active locale.
func (e *Engine) FormatDate(t time.Time, style DateStyle) string {
	lang, market := e.activePair()
	return e.formatter.FormatDate(t, lang, market, style)
}

// FormatPhone renders raw for the active locale's dial plan.
func (e *Engine) FormatPhone(raw string) string {
	lang, market := e.activePair()
	return e.formatter.FormatPhone(raw, lang, market)
}
