// Package gateway turns declarative specifications of outbound HTTP calls
// into immutable, reusable request gateways.
//
// A Spec declares where and how to call; specs stack into an ordered chain
// (root ancestor first) so shared attributes are declared once. Resolve
// merges the chain with call-time options and system defaults (per field:
// call-time option > nearest layer > default), validates the result and
// binds a gateway to a cached transport session:
//
//	reg := session.NewRegistry()
//
//	base := gateway.Spec{BaseURL: "https://api.test", Timeout: 10 * time.Second}
//
//	getUser, err := gateway.Resolve(reg, []gateway.Spec{base, {
//	    URL:           "/users",
//	    Method:        gateway.MethodGet,
//	    RequestModel:  codec.Map(),
//	    ResponseModel: codec.Record[User](),
//	}})
//
//	user, err := gateway.Call[User](ctx, getUser, map[string]any{"id": 7})
//
// A resolved gateway never re-resolves; it is safe for concurrent use and is
// meant to be assembled once and held as a named field on a client struct.
// Use Lazy when assembly has to happen before configuration is complete.
package gateway
