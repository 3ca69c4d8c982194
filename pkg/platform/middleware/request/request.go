// Package request assigns every incoming request a correlation ID.
package request

import (
	"net/http"

	"github.com/google/uuid"

	"kredi/pkg/requestcontext"
)

// HeaderRequestID is the header used to propagate request IDs across services.
const HeaderRequestID = "X-Request-ID"

// ID reuses an inbound X-Request-ID when present (so partner gateways can
// correlate), otherwise generates one. The ID is stored in the context and
// echoed on the response.
func ID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
