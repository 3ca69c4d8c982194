// Package metadata extracts client metadata (IP, User-Agent, device) from
// incoming requests and stores it in the request context for audit trails.
package metadata

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"kredi/pkg/requestcontext"
)

// ClientMetadata extracts the client IP address, User-Agent, and a parsed
// device description from the request and adds them to the context for use by
// handlers and services. This middleware should be applied early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIPFromRequest(r)
		rawUA := r.Header.Get("User-Agent")

		ctx := requestcontext.WithClientMetadata(r.Context(), ip, rawUA)
		if device := describeDevice(rawUA); device != "" {
			ctx = requestcontext.WithDevice(ctx, device)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// describeDevice turns a raw User-Agent into a short "OS / browser" label.
// Most borrowers reach the platform through low-end Android phones, so the
// audit trail records the device class rather than the full UA string.
func describeDevice(rawUA string) string {
	if rawUA == "" {
		return ""
	}
	ua := useragent.New(rawUA)
	browser, _ := ua.Browser()
	// An unrecognized agent string is echoed back as the browser name;
	// treat that as "nothing parsed" rather than recording garbage.
	if browser == rawUA {
		browser = ""
	}

	parts := make([]string, 0, 2)
	if os := ua.OS(); os != "" {
		parts = append(parts, os)
	}
	if browser != "" {
		parts = append(parts, browser)
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, " / ")
}

// ClientIPFromRequest extracts the real client IP from the request, handling proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// Check X-Forwarded-For header first (standard for proxied requests)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...)
		// Take the first IP which is the original client
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	// Check X-Real-IP header (used by nginx and other proxies)
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr (direct connection)
	// RemoteAddr is in format "ip:port", so we need to strip the port
	if addr := r.RemoteAddr; addr != "" {
		// For IPv6, format is [::1]:port
		// For IPv4, format is 127.0.0.1:port
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}
