// Package service orchestrates score evaluations around the pure engine:
// trust-signal lookup, persistence, caching, metrics, and audit. All business
// math stays in the scoring package.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"kredi/internal/scoring"
	"kredi/internal/scoring/metrics"
	"kredi/internal/scoring/ports"
	"kredi/pkg/domain"
	dErrors "kredi/pkg/domain-errors"
	"kredi/pkg/platform/audit"
	"kredi/pkg/platform/sentinel"
	"kredi/pkg/requestcontext"
)

type Service struct {
	engine  *scoring.Engine
	store   ports.ResultStore
	cache   ports.ResultCache
	trust   ports.TrustSignalProvider
	audit   ports.AuditPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithCache(cache ports.ResultCache) Option {
	return func(s *Service) { s.cache = cache }
}

func WithTrustProvider(provider ports.TrustSignalProvider) Option {
	return func(s *Service) { s.trust = provider }
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(s *Service) { s.audit = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(engine *scoring.Engine, store ports.ResultStore, opts ...Option) (*Service, error) {
	if engine == nil {
		return nil, errors.New("scoring engine is required")
	}
	if store == nil {
		return nil, errors.New("result store is required")
	}

	svc := &Service{
		engine: engine,
		store:  store,
		tracer: otel.Tracer("kredi/scoring"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// EvaluateRequest is the service-level input: the borrower identity plus the
// raw attribute snapshot from the data collaborators.
type EvaluateRequest struct {
	BorrowerID domain.BorrowerID
	Input      scoring.Input
}

// Evaluate runs one scoring request end to end. The engine itself cannot
// fail; only persistence can, so a returned error always means the result was
// not stored.
func (s *Service) Evaluate(ctx context.Context, req EvaluateRequest) (*scoring.Record, error) {
	ctx, span := s.tracer.Start(ctx, "scoring.Evaluate",
		trace.WithAttributes(attribute.String("borrower_id", req.BorrowerID.String())),
	)
	defer span.End()
	start := time.Now()

	input := req.Input
	var previous *scoring.Record

	// Gather auxiliary evidence in parallel. Neither lookup is required for
	// a valid evaluation, so failures degrade to "signal absent".
	g, gctx := errgroup.WithContext(ctx)
	if input.AuxTrustScore == nil && s.trust != nil {
		g.Go(func() error {
			score, found, err := s.trust.PhoneTrustScore(gctx, req.BorrowerID)
			if err != nil {
				s.warn(gctx, "trust signal lookup failed", "borrower_id", req.BorrowerID, "error", err)
				return nil
			}
			if found {
				input.AuxTrustScore = &score
			}
			return nil
		})
	}
	g.Go(func() error {
		record, err := s.store.LatestByBorrower(gctx, req.BorrowerID)
		if err != nil {
			if !errors.Is(err, sentinel.ErrNotFound) {
				s.warn(gctx, "previous score lookup failed", "borrower_id", req.BorrowerID, "error", err)
			}
			return nil
		}
		previous = record
		return nil
	})
	_ = g.Wait()

	result, recommendation := s.engine.Evaluate(input)

	record := &scoring.Record{
		ID:             domain.NewScoreID(),
		BorrowerID:     req.BorrowerID,
		Result:         *result,
		Recommendation: *recommendation,
		CreatedAt:      time.Now(),
	}
	if err := s.store.Save(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save score record")
	}

	if s.cache != nil {
		if err := s.cache.SetLatest(ctx, record); err != nil {
			s.warn(ctx, "failed to cache score record", "score_id", record.ID, "error", err)
		}
	}

	span.SetAttributes(
		attribute.Int("final_score", result.FinalScore),
		attribute.Float64("certainty", result.OverallCertainty),
		attribute.Bool("approved", recommendation.Approved),
	)
	if s.metrics != nil {
		s.metrics.ObserveEvaluation(recommendation.Approved, string(result.RiskTier), result.FinalScore, result.OverallCertainty, time.Since(start))
	}

	attrs := []any{
		"final_score", result.FinalScore,
		"grade", result.Grade,
		"risk_tier", result.RiskTier,
		"certainty", result.OverallCertainty,
	}
	if previous != nil {
		attrs = append(attrs, "previous_score", previous.Result.FinalScore)
	}
	ports.LogAudit(ctx, s.logger, s.audit, audit.Event{
		Category:   audit.CategoryCompliance,
		Action:     audit.ActionScoreEvaluated,
		BorrowerID: req.BorrowerID,
		ScoreID:    record.ID,
		Decision:   decision(recommendation.Approved),
		FinalScore: result.FinalScore,
		RequestID:  requestcontext.RequestID(ctx),
		ClientIP:   requestcontext.ClientIP(ctx),
		Device:     requestcontext.Device(ctx),
	}, attrs...)

	return record, nil
}

// Get fetches one score record by ID.
func (s *Service) Get(ctx context.Context, scoreID domain.ScoreID) (*scoring.Record, error) {
	record, err := s.store.Get(ctx, scoreID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "score record not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load score record")
	}
	s.auditView(ctx, record)
	return record, nil
}

// LatestForBorrower returns the borrower's most recent record, trying the
// cache first and falling back to the store on any miss or cache failure.
func (s *Service) LatestForBorrower(ctx context.Context, borrowerID domain.BorrowerID) (*scoring.Record, error) {
	if s.cache != nil {
		record, err := s.cache.GetLatest(ctx, borrowerID)
		if err == nil {
			s.auditView(ctx, record)
			return record, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.warn(ctx, "score cache read failed", "borrower_id", borrowerID, "error", err)
		}
	}

	record, err := s.store.LatestByBorrower(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "borrower has no score yet")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load latest score")
	}
	s.auditView(ctx, record)
	return record, nil
}

// auditView records who looked at a score. Views are operational events, not
// compliance-critical, but partners pulling borrower scores should still be
// traceable.
func (s *Service) auditView(ctx context.Context, record *scoring.Record) {
	ports.LogAudit(ctx, s.logger, s.audit, audit.Event{
		Category:   audit.CategoryOperations,
		Action:     audit.ActionScoreViewed,
		BorrowerID: record.BorrowerID,
		ScoreID:    record.ID,
		RequestID:  requestcontext.RequestID(ctx),
		ClientIP:   requestcontext.ClientIP(ctx),
		Device:     requestcontext.Device(ctx),
	})
}

func (s *Service) warn(ctx context.Context, msg string, attrs ...any) {
	if s.logger != nil {
		s.logger.WarnContext(ctx, msg, attrs...)
	}
}

func decision(approved bool) string {
	if approved {
		return "approved"
	}
	return "declined"
}
