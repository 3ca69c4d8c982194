package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kredi/internal/scoring"
	"kredi/pkg/domain"
	"kredi/pkg/platform/sentinel"
)

// PostgresResultStore persists score records in PostgreSQL. Records are
// append-only; the result and recommendation are stored as JSONB so the
// engine's output shape can evolve without migrations.
//
// Schema:
//
//	CREATE TABLE score_records (
//	    id          UUID PRIMARY KEY,
//	    borrower_id UUID NOT NULL,
//	    result      JSONB NOT NULL,
//	    recommendation JSONB NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX score_records_borrower_idx ON score_records (borrower_id, created_at DESC);
type PostgresResultStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresResultStore {
	return &PostgresResultStore{pool: pool}
}

func (s *PostgresResultStore) Save(ctx context.Context, record *scoring.Record) error {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("marshal score result: %w", err)
	}
	recommendation, err := json.Marshal(record.Recommendation)
	if err != nil {
		return fmt.Errorf("marshal recommendation: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO score_records (id, borrower_id, result, recommendation, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.UUID(record.ID), uuid.UUID(record.BorrowerID), result, recommendation, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("save score record: %w", err)
	}
	return nil
}

func (s *PostgresResultStore) Get(ctx context.Context, scoreID domain.ScoreID) (*scoring.Record, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, borrower_id, result, recommendation, created_at
		FROM score_records
		WHERE id = $1
	`, uuid.UUID(scoreID))
	return scanRecord(row)
}

func (s *PostgresResultStore) LatestByBorrower(ctx context.Context, borrowerID domain.BorrowerID) (*scoring.Record, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, borrower_id, result, recommendation, created_at
		FROM score_records
		WHERE borrower_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, uuid.UUID(borrowerID))
	return scanRecord(row)
}

func scanRecord(row pgx.Row) (*scoring.Record, error) {
	var (
		record         scoring.Record
		id, borrowerID uuid.UUID
		result         []byte
		recommendation []byte
	)
	if err := row.Scan(&id, &borrowerID, &result, &recommendation, &record.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan score record: %w", err)
	}
	record.ID = domain.ScoreID(id)
	record.BorrowerID = domain.BorrowerID(borrowerID)
	if err := json.Unmarshal(result, &record.Result); err != nil {
		return nil, fmt.Errorf("unmarshal score result: %w", err)
	}
	if err := json.Unmarshal(recommendation, &record.Recommendation); err != nil {
		return nil, fmt.Errorf("unmarshal recommendation: %w", err)
	}
	return &record, nil
}
