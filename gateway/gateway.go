package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kbukum/gatewaykit/session"
)

// Config is the resolved, immutable set of fields needed to execute one
// HTTP call. By construction the URL is absolute, the method recognized and
// both adapters bound instances.
type Config struct {
	Session         *session.Session
	URL             string
	Method          Method
	Timeout         time.Duration
	Headers         map[string]string
	RequestAdapter  RequestAdapter
	ResponseAdapter ResponseAdapter
}

// RequestGateway is a bound, reusable outbound call. Prepare and Ingress
// are pure transformations; only Execute touches the network.
type RequestGateway interface {
	Prepare(ctx context.Context, data any) (*http.Request, error)
	Execute(req *http.Request) (*session.Response, error)
	Ingress(resp *session.Response) (any, error)
	Invoke(ctx context.Context, data any) (any, error)
}

// Constructor builds a RequestGateway from a resolved configuration.
type Constructor func(Config) RequestGateway

// Gateway is the default RequestGateway. Safe for concurrent use; it holds
// no mutable state after construction.
type Gateway struct {
	cfg Config
}

// NewGateway is the default gateway constructor.
func NewGateway(cfg Config) RequestGateway {
	return &Gateway{cfg: cfg}
}

// Config returns the resolved configuration.
func (g *Gateway) Config() Config { return g.cfg }

// Prepare serializes data into a request bound to this gateway's session,
// URL, method and headers.
func (g *Gateway) Prepare(ctx context.Context, data any) (*http.Request, error) {
	return g.cfg.RequestAdapter.Adapt(ctx, g.cfg.Session, g.cfg.Method, g.cfg.URL, data, g.cfg.Headers)
}

// Execute sends the prepared request through the bound session, applying
// the per-call timeout when one is declared.
func (g *Gateway) Execute(req *http.Request) (*session.Response, error) {
	if g.cfg.Timeout > 0 {
		ctx, cancel := context.WithTimeout(req.Context(), g.cfg.Timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}
	return g.cfg.Session.Send(req)
}

// Ingress adapts the raw response into the declared result.
func (g *Gateway) Ingress(resp *session.Response) (any, error) {
	return g.cfg.ResponseAdapter.Adapt(resp)
}

// Invoke runs prepare, execute and ingress as a single call.
func (g *Gateway) Invoke(ctx context.Context, data any) (any, error) {
	req, err := g.Prepare(ctx, data)
	if err != nil {
		return nil, err
	}
	resp, err := g.Execute(req)
	if err != nil {
		return nil, err
	}
	return g.Ingress(resp)
}

// Call invokes a gateway and asserts the result to T. Use it with gateways
// whose response model decodes into T.
func Call[T any](ctx context.Context, g RequestGateway, data any) (T, error) {
	var zero T
	out, err := g.Invoke(ctx, data)
	if err != nil {
		return zero, err
	}
	v, ok := out.(T)
	if !ok {
		return zero, NewDecodingError(fmt.Errorf("result is %T, not %T", out, zero))
	}
	return v, nil
}
