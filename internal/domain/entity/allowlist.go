package entity

import "strings"

// NormalizeOrigin lowercases an origin and drops its scheme, path and trailing slash,
// leaving host[:port].
func NormalizeOrigin(origin string) string {
	o := strings.ToLower(strings.TrimSpace(origin))
	o = strings.TrimPrefix(o, "https://")
	o = strings.TrimPrefix(o, "http://")
	if i := strings.IndexByte(o, '/'); i >= 0 {
		o = o[:i]
	}

	return o
}

// OriginAllowed reports whether host, port included, is one of the allowed origins.
// An entry without a port only admits the portless host.
func OriginAllowed(host string, origins []string) bool {
	h := NormalizeOrigin(host)
	if h == "" {
		return false
	}

	for _, origin := range origins {
		if NormalizeOrigin(origin) == h {
			return true
		}
	}

	return false
}

// EndpointAllowed reports whether path equals, or is nested beneath, one of the allowed endpoints.
// Both sides are compared with trailing slashes trimmed, so "/a/b" admits "/a/b/c" but not "/a/bc".
func EndpointAllowed(path string, endpoints []string) bool {
	p := strings.TrimRight(path, "/")

	for _, endpoint := range endpoints {
		allowed := strings.TrimRight(strings.TrimSpace(endpoint), "/")
		if p == allowed || strings.HasPrefix(p, allowed+"/") {
			return true
		}
	}

	return false
}
