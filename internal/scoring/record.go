package scoring

import (
	"time"

	"kredi/pkg/domain"
)

// Record is the persistence aggregate for one completed evaluation. The
// engine's outputs are embedded unchanged; only the service layer creates and
// stores records.
type Record struct {
	ID             domain.ScoreID       `json:"id"`
	BorrowerID     domain.BorrowerID    `json:"borrower_id"`
	Result         ScoreResult          `json:"result"`
	Recommendation CreditRecommendation `json:"recommendation"`
	CreatedAt      time.Time            `json:"created_at"`
}
