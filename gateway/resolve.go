package gateway

import (
	"context"
	"sync"

	"github.com/kbukum/gatewaykit/session"
)

const defaultSessionKey = "default"

// Resolve merges a declaration chain with call-time options into a bound,
// immutable request gateway.
//
// The chain is ordered root ancestor first. Each field resolves
// independently: a call-time option wins over any layer, the most derived
// layer that sets a field wins over its ancestors, and system defaults fill
// whatever remains. URL and method are the only hard-required fields.
//
// Sessions come from the registry, cached per session key and timeout, so
// gateways resolved against the same registry share connection pools.
// Adapter references are resolved after model merging: constructors are
// instantiated with the merged model, bound instances are used unchanged.
func Resolve(reg *session.Registry, chain []Spec, opts ...Option) (RequestGateway, error) {
	var override Spec
	for _, opt := range opts {
		opt(&override)
	}

	merged := mergeSpecs(chain, override)

	if merged.URL == "" {
		return nil, NewConfigurationError("url must be provided")
	}
	if merged.Method == "" {
		return nil, NewConfigurationError("method must be provided")
	}
	if !merged.Method.Valid() {
		return nil, NewConfigurationError("unknown HTTP method " + string(merged.Method))
	}

	target, err := ResolveURL(merged.BaseURL, merged.URL)
	if err != nil {
		return nil, err
	}

	sess := merged.Session
	if sess == nil {
		if reg == nil {
			return nil, NewConfigurationError("a session registry or a bound session is required")
		}
		key := merged.SessionKey
		if key == "" {
			key = defaultSessionKey
		}
		sess = reg.GetOrCreate(key, merged.Authorizer, merged.Timeout)
	}

	cfg := Config{
		Session:         sess,
		URL:             target,
		Method:          merged.Method,
		Timeout:         merged.Timeout,
		Headers:         merged.Headers,
		RequestAdapter:  merged.RequestAdapter.resolve(merged.RequestModel),
		ResponseAdapter: merged.ResponseAdapter.resolve(merged.ResponseModel),
	}

	ctor := merged.Gateway
	if ctor == nil {
		ctor = NewGateway
	}
	return ctor(cfg), nil
}

// MustResolve is Resolve for assembly-time use; it panics on error.
func MustResolve(reg *session.Registry, chain []Spec, opts ...Option) RequestGateway {
	g, err := Resolve(reg, chain, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// mergeSpecs applies per-field precedence: override > most derived layer >
// ancestors. Headers merge additively instead, root first, so no declared
// key is ever dropped.
func mergeSpecs(chain []Spec, override Spec) Spec {
	layers := make([]Spec, 0, len(chain)+1)
	layers = append(layers, override)
	for i := len(chain) - 1; i >= 0; i-- {
		layers = append(layers, chain[i])
	}

	var m Spec
	for _, l := range layers {
		if m.URL == "" {
			m.URL = l.URL
		}
		if m.Method == "" {
			m.Method = l.Method
		}
		if m.BaseURL == "" {
			m.BaseURL = l.BaseURL
		}
		if m.Timeout == 0 {
			m.Timeout = l.Timeout
		}
		if m.RequestModel == nil {
			m.RequestModel = l.RequestModel
		}
		if m.ResponseModel == nil {
			m.ResponseModel = l.ResponseModel
		}
		if m.RequestAdapter.isZero() {
			m.RequestAdapter = l.RequestAdapter
		}
		if m.ResponseAdapter.isZero() {
			m.ResponseAdapter = l.ResponseAdapter
		}
		if m.Session == nil {
			m.Session = l.Session
		}
		if m.SessionKey == "" {
			m.SessionKey = l.SessionKey
		}
		if m.Authorizer == nil {
			m.Authorizer = l.Authorizer
		}
		if m.Gateway == nil {
			m.Gateway = l.Gateway
		}
	}

	m.Headers = mergeHeaders(chain, override)
	return m
}

func mergeHeaders(chain []Spec, override Spec) map[string]string {
	var out map[string]string
	put := func(h map[string]string) {
		for k, v := range h {
			if out == nil {
				out = make(map[string]string)
			}
			out[k] = v
		}
	}
	for _, l := range chain {
		put(l.Headers)
	}
	put(override.Headers)
	return out
}

// Lazy defers resolution to first use. It exists for assembly orders where
// the declaration chain is complete before its configuration is; resolution
// still happens exactly once and the bound gateway is reused for every
// subsequent call.
type Lazy struct {
	reg   *session.Registry
	chain []Spec
	opts  []Option

	once sync.Once
	gw   RequestGateway
	err  error
}

// NewLazy creates a lazily-resolved gateway handle.
func NewLazy(reg *session.Registry, chain []Spec, opts ...Option) *Lazy {
	return &Lazy{reg: reg, chain: chain, opts: opts}
}

// Gateway resolves on first call and returns the bound gateway thereafter.
func (l *Lazy) Gateway() (RequestGateway, error) {
	l.once.Do(func() {
		l.gw, l.err = Resolve(l.reg, l.chain, l.opts...)
	})
	return l.gw, l.err
}

// Invoke resolves if needed and invokes the gateway.
func (l *Lazy) Invoke(ctx context.Context, data any) (any, error) {
	g, err := l.Gateway()
	if err != nil {
		return nil, err
	}
	return g.Invoke(ctx, data)
}
