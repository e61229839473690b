package ratelimit

import (
	"net/http"
	"strings"
)

// ClientIdentifier derives the rate-limit key for a request from the first
// forwarded address and the user agent. Proxy headers are consulted in the
// order X-Forwarded-For, X-Real-IP, CF-Connecting-IP.
func ClientIdentifier(r *http.Request) string {
	ip := "unknown"
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			ip = first
		}
	} else if real := r.Header.Get("X-Real-IP"); real != "" {
		ip = real
	} else if cf := r.Header.Get("CF-Connecting-IP"); cf != "" {
		ip = cf
	}

	ua := r.UserAgent()
	if ua == "" {
		ua = "unknown"
	}
	return ip + "-" + ua
}
