// Package domain holds shared value types used across module boundaries.
//
// Typed UUIDs prevent accidental cross-assignment between identifier kinds;
// construct them via the Parse functions at trust boundaries so the
// "valid, non-empty, non-nil" invariant is enforced once.
package domain

import (
	"github.com/google/uuid"

	dErrors "kredi/pkg/domain-errors"
)

// BorrowerID identifies the individual or small business being scored.
type BorrowerID uuid.UUID

// ScoreID identifies a single persisted scoring result.
type ScoreID uuid.UUID

// NewBorrowerID generates a fresh borrower identifier.
func NewBorrowerID() BorrowerID { return BorrowerID(uuid.New()) }

// NewScoreID generates a fresh score identifier.
func NewScoreID() ScoreID { return ScoreID(uuid.New()) }

func (id BorrowerID) String() string { return uuid.UUID(id).String() }
func (id BorrowerID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id ScoreID) String() string { return uuid.UUID(id).String() }
func (id ScoreID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// Text marshaling keeps IDs as canonical UUID strings in JSON payloads,
// cached records, and audit events.

func (id BorrowerID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *BorrowerID) UnmarshalText(data []byte) error {
	u, err := uuid.ParseBytes(data)
	if err != nil {
		return err
	}
	*id = BorrowerID(u)
	return nil
}

func (id ScoreID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *ScoreID) UnmarshalText(data []byte) error {
	u, err := uuid.ParseBytes(data)
	if err != nil {
		return err
	}
	*id = ScoreID(u)
	return nil
}

// ParseBorrowerID validates external input into a BorrowerID.
//
// Errors: CodeInvalidInput when the value is empty, malformed, or the nil UUID.
func ParseBorrowerID(s string) (BorrowerID, error) {
	u, err := parseUUID(s, "borrower_id")
	if err != nil {
		return BorrowerID{}, err
	}
	return BorrowerID(u), nil
}

// ParseScoreID validates external input into a ScoreID.
func ParseScoreID(s string) (ScoreID, error) {
	u, err := parseUUID(s, "score_id")
	if err != nil {
		return ScoreID{}, err
	}
	return ScoreID(u), nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, field+" must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" cannot be the nil UUID")
	}
	return u, nil
}
