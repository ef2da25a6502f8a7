package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/kbukum/gatewaykit/logger"
	"github.com/kbukum/gatewaykit/resilience"
)

type options struct {
	log       *logger.Logger
	retry     *resilience.RetryConfig
	tracing   bool
	transport http.RoundTripper
}

// Option configures a Registry and the sessions it creates.
type Option func(*options)

// WithLogger sets the logger used by sessions from this registry.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithRetry enables per-send retry on sessions from this registry.
func WithRetry(cfg resilience.RetryConfig) Option {
	return func(o *options) { o.retry = &cfg }
}

// WithTracing enables one span per send on sessions from this registry.
func WithTracing() Option {
	return func(o *options) { o.tracing = true }
}

// WithTransport overrides the HTTP transport. Mainly a test seam.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

type registryKey struct {
	key     string
	timeout time.Duration
}

// Registry caches sessions per context key and timeout configuration.
// Equivalent key+timeout pairs always yield the same instance, so connection
// pools are shared across gateways instead of re-created per gateway.
//
// The registry's lifetime is owned by the caller: create one per application
// scope and pass it to gateway.Resolve.
type Registry struct {
	mu       sync.Mutex
	sessions map[registryKey]*Session
	opts     options
}

// NewRegistry creates an empty session registry.
func NewRegistry(opts ...Option) *Registry {
	o := options{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		sessions: make(map[registryKey]*Session),
		opts:     o,
	}
}

// GetOrCreate returns the cached session for key+timeout, constructing and
// caching one on first use. The authorizer is attached only at construction;
// a cached session keeps the credentials it was created with.
func (r *Registry) GetOrCreate(key string, auth Authorizer, timeout time.Duration) *Session {
	rk := registryKey{key: key, timeout: timeout}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[rk]; ok {
		r.opts.log.Debug("session reused", logger.Fields(logger.FieldSessionKey, key))
		return s
	}

	s := newSession(key, timeout, r.opts)
	if auth != nil {
		s = auth.Authorize(s)
	}
	r.sessions[rk] = s

	r.opts.log.Debug("session created", logger.Fields(
		logger.FieldSessionKey, key,
		"timeout", timeout.String(),
	))
	return s
}

// Len returns the number of cached sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
