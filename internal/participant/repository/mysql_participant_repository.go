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

// MySQLParticipantRepository handles participant persistence for MySQL.
// IDs are stored as BINARY(16).
type MySQLParticipantRepository struct {
	db *sql.DB
}

// NewMySQLParticipantRepository creates a new MySQLParticipantRepository.
func NewMySQLParticipantRepository(db *sql.DB) *MySQLParticipantRepository {
	return &MySQLParticipantRepository{
		db: db,
	}
}

// Create inserts a new participant. A duplicate email yields ErrAlreadyRegistered.
func (r *MySQLParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO participants (id, first_name, last_name, telegram_handle, email, phone_number, registered_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	idBytes, err := participant.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes,
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
func (r *MySQLParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, telegram_handle, email, phone_number, registered_at
			  FROM participants WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	p, err := scanMySQLParticipant(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get participant by id")
	}
	return p, nil
}

// ExistsByEmail reports whether a participant with the given email exists.
func (r *MySQLParticipantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM participants WHERE email = ?)`
	if err := querier.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check participant email")
	}
	return exists, nil
}

// List returns participants ordered by registration time, newest first.
func (r *MySQLParticipantRepository) List(ctx context.Context, offset, limit int) ([]*domain.Participant, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, telegram_handle, email, phone_number, registered_at
			  FROM participants
			  ORDER BY registered_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list participants")
	}
	defer rows.Close() //nolint:errcheck

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p, err := scanMySQLParticipant(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan participant")
		}
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate participants")
	}
	return participants, nil
}

// Count returns the number of registered participants.
func (r *MySQLParticipantRepository) Count(ctx context.Context) (int, error) {
	querier := database.GetTx(ctx, r.db)

	var count int
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count participants")
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMySQLParticipant(row rowScanner) (*domain.Participant, error) {
	var p domain.Participant
	var idBytes []byte

	if err := row.Scan(
		&idBytes, &p.FirstName, &p.LastName, &p.TelegramHandle, &p.Email, &p.PhoneNumber, &p.RegisteredAt,
	); err != nil {
		return nil, err
	}

	if err := p.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	return &p, nil
}
