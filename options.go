package sisapp

import (
	"log/slog"

	"github.com/mozgsvina/sis-app/codec"
	"github.com/mozgsvina/sis-app/internal/cache"
)

const defaultCacheCapacity = 256 << 20 // 256 MiB

type options struct {
	codec            codec.Codec
	byteCache        cache.ByteCache
	cacheCapacity    int64
	disableCache     bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Open behavior.
type Option func(*options)

// WithCodec configures the codec used for decoding annotation records and
// marshaling exports.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithByteCache supplies the cache memoizing blob fetches. Pass a shared
// cache when several explorers read from the same store.
//
// By default each Open gets its own LRU cache; see WithCacheCapacity.
func WithByteCache(c cache.ByteCache) Option {
	return func(o *options) {
		o.byteCache = c
	}
}

// WithCacheCapacity sets the byte capacity of the default fetch cache.
// Ignored when WithByteCache is used.
func WithCacheCapacity(capacity int64) Option {
	return func(o *options) {
		if capacity > 0 {
			o.cacheCapacity = capacity
		}
	}
}

// WithoutCache disables fetch memoization entirely. Every Open re-reads
// from the backing store. Mainly useful in tests that assert fetch counts.
func WithoutCache() Option {
	return func(o *options) {
		o.disableCache = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		cacheCapacity:    defaultCacheCapacity,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.codec == nil {
		o.codec = codec.Default
	}
	return o
}
