package audit

import (
	"context"
	"time"

	"kredi/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose, enabling
// different retention policies and routing downstream.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance: credit
	// decisions fall here, since lenders must be able to reconstruct why a
	// borrower was approved or declined.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers events useful for debugging and operational
	// visibility; these can be sampled with shorter retention.
	CategoryOperations EventCategory = "operations"
)

// Action identifies what happened.
type Action string

const (
	ActionScoreEvaluated Action = "score_evaluated"
	ActionScoreViewed    Action = "score_viewed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category   EventCategory     `json:"category"`
	Action     Action            `json:"action"`
	Timestamp  time.Time         `json:"timestamp"`
	BorrowerID domain.BorrowerID `json:"borrower_id"`
	ScoreID    domain.ScoreID    `json:"score_id,omitempty"`
	Decision   string            `json:"decision,omitempty"`
	FinalScore int               `json:"final_score,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	ClientIP   string            `json:"client_ip,omitempty"`
	Device     string            `json:"device,omitempty"`
}

// Store persists audit events append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByBorrower(ctx context.Context, borrowerID domain.BorrowerID) ([]Event, error)
}
