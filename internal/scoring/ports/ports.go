// Package ports defines shared interfaces for the scoring module.
// Interfaces live here when consumed by multiple packages to avoid duplication.
//
//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks
package ports

import (
	"context"
	"log/slog"

	"kredi/internal/scoring"
	"kredi/pkg/domain"
	"kredi/pkg/platform/audit"
)

// ResultStore persists completed score records.
type ResultStore interface {
	// Save appends a new score record. Records are immutable once written.
	Save(ctx context.Context, record *scoring.Record) error

	// Get retrieves a record by score ID. Returns sentinel.ErrNotFound when
	// the record does not exist.
	Get(ctx context.Context, scoreID domain.ScoreID) (*scoring.Record, error)

	// LatestByBorrower returns the most recent record for a borrower.
	// Returns sentinel.ErrNotFound when the borrower has never been scored.
	LatestByBorrower(ctx context.Context, borrowerID domain.BorrowerID) (*scoring.Record, error)
}

// ResultCache keeps the latest record per borrower hot for dashboard reads.
// Cache failures are never fatal; callers fall back to the store.
type ResultCache interface {
	SetLatest(ctx context.Context, record *scoring.Record) error
	GetLatest(ctx context.Context, borrowerID domain.BorrowerID) (*scoring.Record, error)
}

// TrustSignalProvider resolves the auxiliary phone/identity trust score
// (0-100) seeded by the verification pipeline. found is false when no signal
// exists for the borrower, which is not an error.
type TrustSignalProvider interface {
	PhoneTrustScore(ctx context.Context, borrowerID domain.BorrowerID) (score float64, found bool, err error)
}

// AuditPublisher emits audit events for completed evaluations.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// LogAudit logs an audit event to the structured logger and forwards it to
// the publisher when one is configured. Publisher failures are logged, never
// propagated: an evaluation must not fail because auditing is degraded.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, event audit.Event, attrs ...any) {
	args := append(attrs, "event", event.Action, "log_type", "audit")
	if logger != nil {
		logger.InfoContext(ctx, string(event.Action), args...)
	}
	if publisher == nil {
		return
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", event.Action, "error", err)
	}
}
