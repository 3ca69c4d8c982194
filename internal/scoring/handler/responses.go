package handler

import (
	"time"

	"kredi/internal/scoring"
)

// ScoreResponse is the HTTP response for score endpoints.
type ScoreResponse struct {
	ScoreID        string                       `json:"score_id"`
	BorrowerID     string                       `json:"borrower_id"`
	Result         scoring.ScoreResult          `json:"result"`
	Recommendation scoring.CreditRecommendation `json:"recommendation"`
	CreatedAt      time.Time                    `json:"created_at"`
}

// FromRecord converts a stored score record to an HTTP response.
func FromRecord(record *scoring.Record) *ScoreResponse {
	return &ScoreResponse{
		ScoreID:        record.ID.String(),
		BorrowerID:     record.BorrowerID.String(),
		Result:         record.Result,
		Recommendation: record.Recommendation,
		CreatedAt:      record.CreatedAt,
	}
}
