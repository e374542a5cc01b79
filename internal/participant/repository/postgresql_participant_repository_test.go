package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/signup/internal/errors"
	"github.com/allisson/signup/internal/participant/domain"
)

var participantColumns = []string{
	"id", "first_name", "last_name", "telegram_handle", "email", "phone_number", "registered_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newParticipant() *domain.Participant {
	phone := "+44 7700 900123"
	return &domain.Participant{
		ID:             uuid.Must(uuid.NewV7()),
		FirstName:      "Jane",
		LastName:       "Doe",
		TelegramHandle: "@janedoe",
		Email:          "jane@example.com",
		PhoneNumber:    &phone,
		RegisteredAt:   time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestPostgreSQLParticipantRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLParticipantRepository(db)
		p := newParticipant()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO participants")).
			WithArgs(p.ID, p.FirstName, p.LastName, p.TelegramHandle, p.Email, p.PhoneNumber, p.RegisteredAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(ctx, p))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLParticipantRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO participants")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "participants_email_key"})

		err := repo.Create(ctx, newParticipant())
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLParticipantRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO participants")).
			WillReturnError(errors.New("connection reset"))

		err := repo.Create(ctx, newParticipant())
		assert.ErrorContains(t, err, "failed to create participant")
		assert.NotErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestPostgreSQLParticipantRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLParticipantRepository(db)
		p := newParticipant()

		mock.ExpectQuery(regexp.QuoteMeta("FROM participants WHERE id = $1")).
			WithArgs(p.ID).
			WillReturnRows(sqlmock.NewRows(participantColumns).AddRow(
				p.ID.String(), p.FirstName, p.LastName, p.TelegramHandle, p.Email, *p.PhoneNumber, p.RegisteredAt,
			))

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLParticipantRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM participants WHERE id = $1")).
			WillReturnRows(sqlmock.NewRows(participantColumns))

		_, err := repo.GetByID(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
	})
}

func TestPostgreSQLParticipantRepository_ExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLParticipantRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLParticipantRepository_ListAndCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLParticipantRepository(db)
	p := newParticipant()

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(participantColumns).
			AddRow(p.ID.String(), p.FirstName, p.LastName, p.TelegramHandle, p.Email, nil, p.RegisteredAt))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM participants")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	participants, err := repo.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, p.ID, participants[0].ID)
	assert.Nil(t, participants[0].PhoneNumber)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
