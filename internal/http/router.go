// Package httpapi assembles the public HTTP surface: middleware chain, scoring
// routes, and operational endpoints. Business logic stays in the services.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	scoringhandler "kredi/internal/scoring/handler"

	"kredi/internal/platform/metrics"
	"kredi/pkg/platform/httputil"
	"kredi/pkg/platform/middleware/auth"
	"kredi/pkg/platform/middleware/metadata"
	"kredi/pkg/platform/middleware/request"
	"kredi/pkg/platform/middleware/requesttime"
)

// Deps carries everything the router needs. Auth is optional so tests can
// exercise routes without minting tokens.
type Deps struct {
	Scoring     *scoringhandler.Handler
	HTTPMetrics *metrics.HTTP
	Validator   auth.TokenValidator
	APIKeys     []auth.APIKey
	Logger      *slog.Logger
}

// NewRouter wires the middleware chain and mounts all endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(requesttime.Middleware)
	r.Use(request.ID)
	r.Use(metadata.ClientMetadata)
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware)
	}

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if deps.Validator != nil {
			r.Use(auth.RequireAuth(deps.Validator, deps.APIKeys, deps.Logger))
		}
		deps.Scoring.Register(r)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
