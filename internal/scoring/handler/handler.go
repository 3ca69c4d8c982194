package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kredi/internal/scoring"
	"kredi/internal/scoring/service"
	"kredi/pkg/domain"
	"kredi/pkg/platform/httputil"
	"kredi/pkg/requestcontext"
)

// Service defines the interface for scoring operations.
//
//go:generate mockgen -source=handler.go -destination=mocks/handler-mocks.go -package=mocks Service
type Service interface {
	Evaluate(ctx context.Context, req service.EvaluateRequest) (*scoring.Record, error)
	Get(ctx context.Context, scoreID domain.ScoreID) (*scoring.Record, error)
	LatestForBorrower(ctx context.Context, borrowerID domain.BorrowerID) (*scoring.Record, error)
}

// Handler wires scoring endpoints to the scoring service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a scoring handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts scoring endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/score/evaluate", h.HandleEvaluate)
	r.Get("/score/{scoreID}", h.HandleGet)
	r.Get("/score/borrower/{borrowerID}/latest", h.HandleLatest)
}

// HandleEvaluate handles POST /score/evaluate requests.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	record, err := h.service.Evaluate(ctx, service.EvaluateRequest{
		BorrowerID: req.ParsedBorrowerID(),
		Input:      req.ParsedInput(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "score evaluation failed",
			"request_id", requestID,
			"borrower_id", req.BorrowerID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "score evaluated",
		"request_id", requestID,
		"borrower_id", req.BorrowerID,
		"score_id", record.ID,
		"final_score", record.Result.FinalScore,
		"grade", record.Result.Grade,
		"approved", record.Recommendation.Approved,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, FromRecord(record))
}

// HandleGet handles GET /score/{scoreID} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scoreID, err := domain.ParseScoreID(chi.URLParam(r, "scoreID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.service.Get(ctx, scoreID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromRecord(record))
}

// HandleLatest handles GET /score/borrower/{borrowerID}/latest requests.
func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	borrowerID, err := domain.ParseBorrowerID(chi.URLParam(r, "borrowerID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.service.LatestForBorrower(ctx, borrowerID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromRecord(record))
}
