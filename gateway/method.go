package gateway

import "fmt"

// Method is an HTTP method from the fixed set a gateway may declare.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodHead    Method = "HEAD"
)

var methods = map[Method]bool{
	MethodGet:     true,
	MethodPost:    true,
	MethodPut:     true,
	MethodPatch:   true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
}

// Valid reports whether m is one of the recognized HTTP methods.
func (m Method) Valid() bool { return methods[m] }

// ParseMethod converts a string into a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.Valid() {
		return "", fmt.Errorf("gateway: unknown HTTP method %q", s)
	}
	return m, nil
}

// isReadLike reports whether data is carried as query parameters.
func isReadLike(m Method) bool {
	return m == MethodGet || m == MethodOptions || m == MethodHead
}

// isWriteLike reports whether data is carried as a JSON body.
func isWriteLike(m Method) bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch || m == MethodDelete
}
