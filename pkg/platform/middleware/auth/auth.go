// Package auth guards the scoring API. Two credential types are accepted:
// partner JWTs (Authorization: Bearer) issued by the platform, and static API
// keys (X-API-Key) for back-office tooling, checked against bcrypt hashes so
// the plaintext never lives in config.
package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"kredi/pkg/requestcontext"
)

// TokenValidator defines the interface for validating JWT tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims represents the claims we expect from the token validator.
type TokenClaims struct {
	PartnerID string
	Scope     string
}

// APIKey is one named back-office credential.
type APIKey struct {
	Name string
	Hash []byte // bcrypt hash of the key material
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

func RequireAuth(validator TokenValidator, apiKeys []APIKey, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			if token, ok := strings.CutPrefix(authHeader, bearerPrefix); ok {
				claims, err := validator.ValidateToken(token)
				if err != nil {
					logger.WarnContext(ctx, "unauthorized access - invalid token",
						"error", err,
						"request_id", requestcontext.RequestID(ctx),
					)
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
					return
				}

				ctx = requestcontext.WithCallerID(ctx, claims.PartnerID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if key := r.Header.Get("X-API-Key"); key != "" {
				for _, candidate := range apiKeys {
					if bcrypt.CompareHashAndPassword(candidate.Hash, []byte(key)) == nil {
						ctx = requestcontext.WithCallerID(ctx, candidate.Name)
						next.ServeHTTP(w, r.WithContext(ctx))
						return
					}
				}
				logger.WarnContext(ctx, "unauthorized access - unknown api key",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Unknown API key")
				return
			}

			// No Authorization header or invalid format
			logger.WarnContext(ctx, "unauthorized access - missing credentials",
				"request_id", requestcontext.RequestID(ctx),
			)
			writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
		})
	}
}
