package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/kbukum/gatewaykit/codec"
	"github.com/kbukum/gatewaykit/session"
)

// RequestAdapter serializes call data into a prepared request. Read-like
// methods carry the data as query parameters, write-like methods as a JSON
// body.
type RequestAdapter interface {
	Adapt(ctx context.Context, s *session.Session, method Method, url string, data any, headers map[string]string) (*http.Request, error)
}

// ResponseAdapter turns a raw response into the declared result. Status
// policy lives here: 4xx/5xx fail before any decoding is attempted.
type ResponseAdapter interface {
	Adapt(resp *session.Response) (any, error)
}

// JSONRequestAdapter is the default request adapter. With no model it
// prepares bare requests and rejects any call data; with a model it encodes
// data through the model's codec, excluding unset and null fields.
type JSONRequestAdapter struct {
	model codec.Codec
}

// NewJSONRequestAdapter creates a request adapter for the given model.
// A nil model means no data is ever serialized.
func NewJSONRequestAdapter(model codec.Codec) *JSONRequestAdapter {
	return &JSONRequestAdapter{model: model}
}

func (a *JSONRequestAdapter) Adapt(ctx context.Context, s *session.Session, method Method, url string, data any, headers map[string]string) (*http.Request, error) {
	var query map[string]string
	var body []byte

	if data != nil {
		if a.model == nil {
			return nil, NewSerializationError(fmt.Errorf("call data provided but no request model declared"))
		}
		encoded, err := a.model.Encode(data)
		if err != nil {
			return nil, NewSerializationError(err)
		}
		switch {
		case isWriteLike(method):
			body, err = json.Marshal(encoded)
			if err != nil {
				return nil, NewSerializationError(err)
			}
		case isReadLike(method):
			query = queryValues(encoded)
		}
	}

	return s.PrepareRequest(ctx, string(method), url, headers, query, body)
}

// queryValues flattens an encoded payload into query parameter strings.
// JSON decoding turns every number into a float64; those are rendered in
// plain decimal notation so large values never become scientific notation.
func queryValues(m map[string]any) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if f, ok := v.(float64); ok {
			out[k] = strconv.FormatFloat(f, 'f', -1, 64)
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

// JSONResponseAdapter is the default response adapter. With no model it
// returns the raw response unchanged for any status < 400.
type JSONResponseAdapter struct {
	model codec.Codec
}

// NewJSONResponseAdapter creates a response adapter for the given model.
// A nil model means the raw response is passed through.
func NewJSONResponseAdapter(model codec.Codec) *JSONResponseAdapter {
	return &JSONResponseAdapter{model: model}
}

func (a *JSONResponseAdapter) Adapt(resp *session.Response) (any, error) {
	if resp.StatusCode >= 400 {
		return nil, NewHTTPError(resp.StatusCode, resp.Status, resp.Body)
	}
	if a.model == nil {
		return resp, nil
	}
	out, err := a.model.Decode(resp.Body)
	if err != nil {
		return nil, NewDecodingError(err)
	}
	return out, nil
}

// RequestAdapterRef is a tagged reference to a request adapter: either an
// already-constructed instance, used as-is with the declared model ignored,
// or a constructor the resolver instantiates with the merged model. The
// branch is taken after model merging, never before.
type RequestAdapterRef struct {
	instance RequestAdapter
	ctor     func(codec.Codec) RequestAdapter
}

// BoundRequestAdapter references an adapter instance to use unchanged.
func BoundRequestAdapter(a RequestAdapter) RequestAdapterRef {
	return RequestAdapterRef{instance: a}
}

// RequestAdapterOf references an adapter constructor to be instantiated
// with the resolved request model.
func RequestAdapterOf(ctor func(codec.Codec) RequestAdapter) RequestAdapterRef {
	return RequestAdapterRef{ctor: ctor}
}

func (r RequestAdapterRef) isZero() bool {
	return r.instance == nil && r.ctor == nil
}

func (r RequestAdapterRef) resolve(model codec.Codec) RequestAdapter {
	if r.instance != nil {
		return r.instance
	}
	if r.ctor != nil {
		return r.ctor(model)
	}
	return NewJSONRequestAdapter(model)
}

// ResponseAdapterRef is the response-side counterpart of RequestAdapterRef.
type ResponseAdapterRef struct {
	instance ResponseAdapter
	ctor     func(codec.Codec) ResponseAdapter
}

// BoundResponseAdapter references an adapter instance to use unchanged.
func BoundResponseAdapter(a ResponseAdapter) ResponseAdapterRef {
	return ResponseAdapterRef{instance: a}
}

// ResponseAdapterOf references an adapter constructor to be instantiated
// with the resolved response model.
func ResponseAdapterOf(ctor func(codec.Codec) ResponseAdapter) ResponseAdapterRef {
	return ResponseAdapterRef{ctor: ctor}
}

func (r ResponseAdapterRef) isZero() bool {
	return r.instance == nil && r.ctor == nil
}

func (r ResponseAdapterRef) resolve(model codec.Codec) ResponseAdapter {
	if r.instance != nil {
		return r.instance
	}
	if r.ctor != nil {
		return r.ctor(model)
	}
	return NewJSONResponseAdapter(model)
}
