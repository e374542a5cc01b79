// Package repository provides data persistence implementations for participants.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/signup/internal/database"
	apperrors "github.com/allisson/signup/internal/errors"
	"github.com/allisson/signup/internal/participant/domain"
)

// PostgreSQLParticipantRepository handles participant persistence for PostgreSQL.
type PostgreSQLParticipantRepository struct {
	db *sql.DB
}

// NewPostgreSQLParticipantRepository creates a new PostgreSQLParticipantRepository.
func NewPostgreSQLParticipantRepository(db *sql.DB) *PostgreSQLParticipantRepository {
	return &PostgreSQLParticipantRepository{
		db: db,
	}
}

// Create inserts a new participant. A duplicate email yields ErrAlreadyRegistered.
func (r *PostgreSQLParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO participants (id, first_name, last_name, telegram_handle, email, phone_number, registered_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query,
		participant.ID,
		participant.FirstName,
		participant.LastName,
		participant.TelegramHandle,
		participant.Email,
		participant.PhoneNumber,
		participant.RegisteredAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return apperrors.Wrap(err, "failed to create participant")
	}
	return nil
}

// GetByID retrieves a participant by ID.
func (r *PostgreSQLParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, telegram_handle, email, phone_number, registered_at
			  FROM participants WHERE id = $1`

	var p domain.Participant
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.TelegramHandle, &p.Email, &p.PhoneNumber, &p.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get participant by id")
	}
	return &p, nil
}

// ExistsByEmail reports whether a participant with the given email exists.
func (r *PostgreSQLParticipantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM participants WHERE email = $1)`
	if err := querier.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check participant email")
	}
	return exists, nil
}

// List returns participants ordered by registration time, newest first.
func (r *PostgreSQLParticipantRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Participant, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, telegram_handle, email, phone_number, registered_at
			  FROM participants
			  ORDER BY registered_at DESC, id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list participants")
	}
	defer rows.Close() //nolint:errcheck

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.TelegramHandle, &p.Email, &p.PhoneNumber, &p.RegisteredAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan participant")
		}
		participants = append(participants, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate participants")
	}
	return participants, nil
}

// Count returns the number of registered participants.
func (r *PostgreSQLParticipantRepository) Count(ctx context.Context) (int, error) {
	querier := database.GetTx(ctx, r.db)

	var count int
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count participants")
	}
	return count, nil
}
