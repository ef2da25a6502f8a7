package gateway

import "net/url"

// ResolveURL joins a base URL and a path into an absolute target URL.
//
// A path that already carries scheme and host is returned unchanged, so a
// fully-qualified path overrides a declared base. Otherwise the path is
// appended to the base by plain concatenation: duplicate or missing slashes
// between the two are deliberately not normalized, so caller mistakes stay
// visible instead of being silently patched over.
func ResolveURL(base, path string) (string, error) {
	if isAbsolute(path) {
		return path, nil
	}
	if !isAbsolute(base) {
		return "", NewConfigurationError("either base_url or url must be absolute (scheme and host)")
	}
	return base + path, nil
}

func isAbsolute(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
