package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/gatewaykit/logger"
	"github.com/kbukum/gatewaykit/observability"
	"github.com/kbukum/gatewaykit/resilience"
	"github.com/kbukum/gatewaykit/version"
)

// Response is the raw result of a sent request. Status policy (raising on
// 4xx/5xx) belongs to the response adapter, not the transport, so a Response
// is returned for every completed exchange regardless of status code.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the HTTP status line reason (e.g. "404 Not Found").
	Status string
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// Session is a reusable HTTP transport with default headers, request IDs and
// optional authorization, retry and tracing. Safe for concurrent use.
type Session struct {
	httpClient *http.Client
	headers    map[string]string
	authorize  func(*http.Request) error
	retry      *resilience.RetryConfig
	tracing    bool
	log        *logger.Logger
	key        string
}

func newSession(key string, timeout time.Duration, o options) *Session {
	s := &Session{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: o.transport,
		},
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   version.UserAgent(),
		},
		retry:   o.retry,
		tracing: o.tracing,
		log:     o.log.WithComponent("session"),
		key:     key,
	}
	return s
}

// Key returns the registry context key this session was created under.
func (s *Session) Key() string { return s.key }

// WithAuth installs a credential hook applied to every prepared request and
// returns the session. Authorizers use this to attach themselves.
func (s *Session) WithAuth(fn func(*http.Request) error) *Session {
	s.authorize = fn
	return s
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (s *Session) Unwrap() *http.Client {
	return s.httpClient
}

// PrepareRequest builds an *http.Request against this session: session
// defaults first, then per-request headers (additive, request wins per key),
// then query parameters, a request ID and credentials.
func (s *Session) PrepareRequest(ctx context.Context, method, url string, headers map[string]string, query map[string]string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("session: prepare %s %s: %w", method, url, err)
	}

	for k, v := range s.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.New().String())
	}

	if len(query) > 0 {
		q := req.URL.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	if s.authorize != nil {
		if err := s.authorize(req); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// Send executes the prepared request and reads the full response body.
// Transport failures are returned as-is (wrapped); status codes are not
// classified here.
func (s *Session) Send(req *http.Request) (*Response, error) {
	ctx := req.Context()

	start := time.Now()
	var resp *Response
	var err error
	if s.tracing {
		spanCtx, span := observability.StartSpan(ctx, "session.send",
			attribute.String(observability.AttrHTTPMethod, req.Method),
			attribute.String(observability.AttrHTTPURL, req.URL.String()),
			attribute.String(observability.AttrSessionKey, s.key),
		)
		resp, err = s.send(req.WithContext(spanCtx))
		if err != nil {
			span.RecordError(err)
		} else {
			span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, resp.StatusCode))
		}
		span.End()
	} else {
		resp, err = s.send(req)
	}

	if err != nil {
		s.log.Debug("send failed", logger.ErrorFields("send", err))
		return nil, err
	}

	s.log.Debug("request sent", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldURL, req.URL.String(),
		logger.FieldStatus, resp.StatusCode,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return resp, nil
}

func (s *Session) send(req *http.Request) (*Response, error) {
	if s.retry != nil {
		return resilience.Retry(req.Context(), *s.retry, func() (*Response, error) {
			return s.sendOnce(req)
		})
	}
	return s.sendOnce(req)
}

func (s *Session) sendOnce(req *http.Request) (*Response, error) {
	// Rewind the body on repeated attempts.
	attempt := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("session: rewind body: %w", err)
		}
		attempt.Body = body
	}

	resp, err := s.httpClient.Do(attempt)
	if err != nil {
		return nil, fmt.Errorf("session: send %s %s: %w", req.Method, req.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("session: read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
