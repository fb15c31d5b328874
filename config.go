package localize

import (
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// Config holds the recognized engine options. Zero values fall back to
// the catalog default language and its home market.
type Config struct {
	CurrentLanguage   string
	CurrentMarket     string
	FallbackLanguage  string
	CacheTranslations bool
	EnableRTL         bool
	MirrorNumbers     bool
	BundleTTL         time.Duration

	registry *Registry
	store    TranslationStore
	sink     StyleSink
	logger   glog.Logger
}

func defaultConfig() Config {
	return Config{
		CacheTranslations: true,
		EnableRTL:         true,
		BundleTTL:         DefaultBundleTTL,
	}
}

// Option mutates engine construction.
type Option func(*Config)

// WithCurrentLanguage sets the language activated on startup.
func WithCurrentLanguage(code string) Option {
	return func(c *Config) {
		c.CurrentLanguage = code
	}
}

// WithCurrentMarket sets the market activated on startup.
func WithCurrentMarket(code string) Option {
	return func(c *Config) {
		c.CurrentMarket = code
	}
}

// WithFallbackLanguage overrides the catalog default as the fallback
// bundle language.
func WithFallbackLanguage(code string) Option {
	return func(c *Config) {
		c.FallbackLanguage = code
	}
}

// WithCacheTranslations toggles bundle caching. Disabling it forces
// every resolution through the persistent store.
func WithCacheTranslations(enabled bool) Option {
	return func(c *Config) {
		c.CacheTranslations = enabled
	}
}

// WithEnableRTL toggles direction adaptation. When disabled the engine
// stays in LTR for every language.
func WithEnableRTL(enabled bool) Option {
	return func(c *Config) {
		c.EnableRTL = enabled
	}
}

// WithMirrorNumbers enables script-native numeral rendering in RTL
// contexts.
func WithMirrorNumbers(enabled bool) Option {
	return func(c *Config) {
		c.MirrorNumbers = enabled
	}
}

// WithBundleTTL overrides how long cached bundles stay fresh.
func WithBundleTTL(ttl time.Duration) Option {
	return func(c *Config) {
		if ttl > 0 {
			c.BundleTTL = ttl
		}
	}
}

// WithRegistry supplies the language/market catalog. Defaults to the
// built-in catalog.
func WithRegistry(registry *Registry) Option {
	return func(c *Config) {
		c.registry = registry
	}
}

// WithStore supplies the persistent translation store. Defaults to an
// in-memory store seeded with the built-in bundles.
func WithStore(store TranslationStore) Option {
	return func(c *Config) {
		c.store = store
	}
}

// WithStyleSink attaches the hosting UI's style sink for direction
// changes. Headless contexts omit it.
func WithStyleSink(sink StyleSink) Option {
	return func(c *Config) {
		c.sink = sink
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger glog.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}
