// Package session provides the transport layer underneath request gateways.
//
// A Session wraps a *http.Client with default JSON headers, request IDs,
// optional bearer/JWT authorization, optional per-send retry and optional
// tracing. Sessions are obtained through a Registry, which caches one
// instance per context key and timeout configuration so connection pools
// are shared across every gateway resolved against the same registry:
//
//	reg := session.NewRegistry(session.WithRetry(resilience.DefaultRetryConfig()))
//	s := reg.GetOrCreate("payments", auth, 10*time.Second)
//
// The registry is owned by the caller; there is no package-global state.
package session
