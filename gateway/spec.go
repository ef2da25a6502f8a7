package gateway

import (
	"time"

	"github.com/kbukum/gatewaykit/codec"
	"github.com/kbukum/gatewaykit/session"
)

// Spec is one declaration layer of a gateway. Zero-valued fields are unset
// and fall through to the next layer during resolution; specs are stacked
// root-ancestor first, so shared attributes (base URL, timeout, authorizer)
// are declared once and overridden per endpoint.
type Spec struct {
	// URL is the endpoint path, or a full URL when BaseURL is unset.
	URL string
	// Method is the HTTP method. Required after merging.
	Method Method
	// BaseURL is prepended to relative URLs.
	BaseURL string
	// Timeout bounds each call. Also part of the session cache key.
	Timeout time.Duration
	// Headers are fixed headers sent with every call. Merged additively
	// across layers; derived layers win per key, no key is ever dropped.
	Headers map[string]string
	// RequestModel is the declared shape of call data.
	RequestModel codec.Codec
	// ResponseModel is the declared shape of the result. Unset means the
	// raw response is passed through.
	ResponseModel codec.Codec
	// RequestAdapter overrides the default request adapter.
	RequestAdapter RequestAdapterRef
	// ResponseAdapter overrides the default response adapter.
	ResponseAdapter ResponseAdapterRef
	// Session is a pre-built transport session, used as-is. When unset the
	// resolver obtains one from the registry.
	Session *session.Session
	// SessionKey selects the registry cache entry. Defaults to "default".
	SessionKey string
	// Authorizer attaches credentials when the resolver constructs a new
	// session. Ignored for cached or pre-built sessions.
	Authorizer session.Authorizer
	// Gateway overrides the gateway constructor.
	Gateway Constructor
}

// GetSpec declares a GET endpoint at url.
func GetSpec(url string) Spec {
	return Spec{URL: url, Method: MethodGet}
}

// PostSpec declares a POST endpoint at url.
func PostSpec(url string) Spec {
	return Spec{URL: url, Method: MethodPost}
}

// Option is a call-time override applied when a gateway is resolved.
// Options take precedence over every declaration layer.
type Option func(*Spec)

// WithURL overrides the endpoint URL.
func WithURL(url string) Option {
	return func(s *Spec) { s.URL = url }
}

// WithMethod overrides the HTTP method.
func WithMethod(m Method) Option {
	return func(s *Spec) { s.Method = m }
}

// WithBaseURL overrides the base URL.
func WithBaseURL(base string) Option {
	return func(s *Spec) { s.BaseURL = base }
}

// WithTimeout overrides the call timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Spec) { s.Timeout = d }
}

// WithHeaders adds fixed headers. Declared headers are kept; call-time
// headers add new keys and win on conflicts.
func WithHeaders(h map[string]string) Option {
	return func(s *Spec) { s.Headers = h }
}

// WithRequestModel overrides the request model.
func WithRequestModel(c codec.Codec) Option {
	return func(s *Spec) { s.RequestModel = c }
}

// WithResponseModel overrides the response model.
func WithResponseModel(c codec.Codec) Option {
	return func(s *Spec) { s.ResponseModel = c }
}

// WithRequestAdapter overrides the request adapter with a bound instance.
func WithRequestAdapter(a RequestAdapter) Option {
	return func(s *Spec) { s.RequestAdapter = BoundRequestAdapter(a) }
}

// WithResponseAdapter overrides the response adapter with a bound instance.
func WithResponseAdapter(a ResponseAdapter) Option {
	return func(s *Spec) { s.ResponseAdapter = BoundResponseAdapter(a) }
}

// WithSession binds a pre-built session, bypassing the registry.
func WithSession(sess *session.Session) Option {
	return func(s *Spec) { s.Session = sess }
}

// WithSessionKey overrides the registry cache key.
func WithSessionKey(key string) Option {
	return func(s *Spec) { s.SessionKey = key }
}

// WithAuthorizer overrides the authorizer.
func WithAuthorizer(a session.Authorizer) Option {
	return func(s *Spec) { s.Authorizer = a }
}

// WithGateway overrides the gateway constructor.
func WithGateway(c Constructor) Option {
	return func(s *Spec) { s.Gateway = c }
}
