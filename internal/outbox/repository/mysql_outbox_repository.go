package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/signup/internal/database"
	apperrors "github.com/allisson/signup/internal/errors"
	"github.com/allisson/signup/internal/outbox/domain"
)

// MySQLOutboxEventRepository handles outbox event persistence for MySQL.
// IDs are stored as BINARY(16).
type MySQLOutboxEventRepository struct {
	db *sql.DB
}

// NewMySQLOutboxEventRepository creates a new MySQLOutboxEventRepository.
func NewMySQLOutboxEventRepository(db *sql.DB) *MySQLOutboxEventRepository {
	return &MySQLOutboxEventRepository{
		db: db,
	}
}

// Create inserts a new outbox event, joining the caller's transaction when present.
func (r *MySQLOutboxEventRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO outbox_events (id, event_type, payload, status, retries, last_error, processed_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	idBytes, err := event.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal outbox event id")
	}

	_, err = querier.ExecContext(ctx, query, idBytes, event.EventType, event.Payload, event.Status,
		event.Retries, event.LastError, event.ProcessedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create outbox event")
	}
	return nil
}

// GetPendingEvents locks up to limit pending events, oldest first, skipping rows
// held by another worker.
func (r *MySQLOutboxEventRepository) GetPendingEvents(
	ctx context.Context,
	limit int,
) ([]*domain.OutboxEvent, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, event_type, payload, status, retries, last_error, processed_at, created_at, updated_at
			  FROM outbox_events
			  WHERE status = ?
			  ORDER BY created_at ASC, id ASC
			  LIMIT ?
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, domain.OutboxEventStatusPending, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get pending outbox events")
	}
	defer rows.Close() //nolint:errcheck

	events := make([]*domain.OutboxEvent, 0)
	for rows.Next() {
		event, err := scanMySQLEvent(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan outbox event")
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate outbox events")
	}
	return events, nil
}

// Update persists the delivery state of an event.
func (r *MySQLOutboxEventRepository) Update(ctx context.Context, event *domain.OutboxEvent) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE outbox_events
			  SET status = ?, retries = ?, last_error = ?, processed_at = ?, updated_at = NOW()
			  WHERE id = ?`

	idBytes, err := event.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal outbox event id")
	}

	_, err = querier.ExecContext(ctx, query, event.Status, event.Retries, event.LastError,
		event.ProcessedAt, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to update outbox event")
	}
	return nil
}

// CountProcessedBefore counts processed events delivered before the given instant.
func (r *MySQLOutboxEventRepository) CountProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT COUNT(*) FROM outbox_events WHERE status = ? AND processed_at < ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, domain.OutboxEventStatusProcessed, before).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count processed outbox events")
	}
	return count, nil
}

// DeleteProcessedBefore removes processed events delivered before the given instant.
func (r *MySQLOutboxEventRepository) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM outbox_events WHERE status = ? AND processed_at < ?`

	result, err := querier.ExecContext(ctx, query, domain.OutboxEventStatusProcessed, before)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete processed outbox events")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows")
	}
	return count, nil
}

func scanMySQLEvent(row rowScanner) (*domain.OutboxEvent, error) {
	var event domain.OutboxEvent
	var idBytes []byte

	err := row.Scan(&idBytes, &event.EventType, &event.Payload, &event.Status,
		&event.Retries, &event.LastError, &event.ProcessedAt, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := event.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	return &event, nil
}
