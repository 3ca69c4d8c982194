// Package postgres persists audit events in PostgreSQL for deployments that
// need a queryable compliance trail without a Kafka consumer.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kredi/pkg/domain"
	"kredi/pkg/platform/audit"
	"kredi/pkg/platform/tx"
)

// Store writes audit events append-only via database/sql so it can join an
// ambient transaction when one is carried in the context.
//
// Schema:
//
//	CREATE TABLE audit_events (
//	    id          BIGSERIAL PRIMARY KEY,
//	    category    TEXT NOT NULL,
//	    action      TEXT NOT NULL,
//	    occurred_at TIMESTAMPTZ NOT NULL,
//	    borrower_id UUID NOT NULL,
//	    score_id    UUID,
//	    decision    TEXT,
//	    final_score INT,
//	    request_id  TEXT,
//	    client_ip   TEXT,
//	    device      TEXT
//	);
//	CREATE INDEX audit_events_borrower_idx ON audit_events (borrower_id, occurred_at DESC);
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// executor lets Append run inside a caller-provided transaction.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) exec(ctx context.Context) executor {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return s.db
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var scoreID any
	if !event.ScoreID.IsNil() {
		scoreID = uuid.UUID(event.ScoreID)
	}

	_, err := s.exec(ctx).ExecContext(ctx, `
		INSERT INTO audit_events (category, action, occurred_at, borrower_id, score_id, decision, final_score, request_id, client_ip, device)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, event.Category, event.Action, event.Timestamp, uuid.UUID(event.BorrowerID), scoreID,
		nullable(event.Decision), event.FinalScore, nullable(event.RequestID), nullable(event.ClientIP), nullable(event.Device))
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *Store) ListByBorrower(ctx context.Context, borrowerID domain.BorrowerID) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, action, occurred_at, borrower_id, score_id, decision, final_score, request_id, client_ip, device
		FROM audit_events
		WHERE borrower_id = $1
		ORDER BY occurred_at ASC
	`, uuid.UUID(borrowerID))
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			event      audit.Event
			bID        uuid.UUID
			sID        sql.Null[uuid.UUID]
			decision   sql.NullString
			requestID  sql.NullString
			clientIP   sql.NullString
			device     sql.NullString
			finalScore sql.NullInt64
		)
		if err := rows.Scan(&event.Category, &event.Action, &event.Timestamp, &bID, &sID,
			&decision, &finalScore, &requestID, &clientIP, &device); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.BorrowerID = domain.BorrowerID(bID)
		if sID.Valid {
			event.ScoreID = domain.ScoreID(sID.V)
		}
		event.Decision = decision.String
		event.FinalScore = int(finalScore.Int64)
		event.RequestID = requestID.String
		event.ClientIP = clientIP.String
		event.Device = device.String
		events = append(events, event)
	}
	return events, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
