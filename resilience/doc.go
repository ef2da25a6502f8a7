// Package resilience provides retry with exponential backoff for the
// transport session.
//
// Retries are a transport concern: the gateway core never retries, it only
// composes. The session wires this package around each send when a
// RetryConfig is supplied:
//
//	reg := session.NewRegistry(session.WithRetry(resilience.DefaultRetryConfig()))
package resilience
