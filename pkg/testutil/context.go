package testutil

import (
	"net/http"

	"kredi/pkg/requestcontext"
)

// WithCaller stamps an authenticated caller identity onto the request
// context, simulating what the auth middleware does for valid credentials.
func WithCaller(req *http.Request, callerID string) *http.Request {
	return req.WithContext(requestcontext.WithCallerID(req.Context(), callerID))
}

// WithRequestID stamps a request ID onto the request context, simulating the
// request ID middleware.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithClientMetadata stamps client IP and user agent onto the request
// context, simulating the metadata middleware.
func WithClientMetadata(req *http.Request, ip, userAgent string) *http.Request {
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, userAgent))
}
