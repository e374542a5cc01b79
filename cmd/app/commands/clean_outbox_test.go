package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	outboxMocks "github.com/allisson/signup/internal/outbox/usecase/mocks"
)

func TestRunCleanOutbox(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	days := 30

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &outboxMocks.MockOutboxUseCase{}
		mockUseCase.On("DeleteProcessedOlderThan", ctx, days, false).Return(int64(12), nil)

		var out bytes.Buffer
		err := RunCleanOutbox(ctx, mockUseCase, logger, &out, days, false, FormatText)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 12 processed outbox event(s) older than 30 day(s)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("dry-run-text-output", func(t *testing.T) {
		mockUseCase := &outboxMocks.MockOutboxUseCase{}
		mockUseCase.On("DeleteProcessedOlderThan", ctx, days, true).Return(int64(7), nil)

		var out bytes.Buffer
		err := RunCleanOutbox(ctx, mockUseCase, logger, &out, days, true, FormatText)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Dry-run mode: Would delete 7")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &outboxMocks.MockOutboxUseCase{}
		mockUseCase.On("DeleteProcessedOlderThan", ctx, days, true).Return(int64(50), nil)

		var out bytes.Buffer
		err := RunCleanOutbox(ctx, mockUseCase, logger, &out, days, true, FormatJSON)

		require.NoError(t, err)
		require.JSONEq(t, `{"count":50,"days":30,"dry_run":true}`, out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-days", func(t *testing.T) {
		mockUseCase := &outboxMocks.MockOutboxUseCase{}
		err := RunCleanOutbox(ctx, mockUseCase, logger, &bytes.Buffer{}, -1, false, FormatText)

		require.Error(t, err)
		require.Contains(t, err.Error(), "days must be a positive number")
		mockUseCase.AssertNotCalled(t, "DeleteProcessedOlderThan")
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := &outboxMocks.MockOutboxUseCase{}
		err := RunCleanOutbox(ctx, mockUseCase, logger, &bytes.Buffer{}, days, false, "yaml")

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &outboxMocks.MockOutboxUseCase{}
		mockUseCase.On("DeleteProcessedOlderThan", ctx, days, false).Return(int64(0), errors.New("db down"))

		err := RunCleanOutbox(ctx, mockUseCase, logger, &bytes.Buffer{}, days, false, FormatText)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to delete outbox events")
	})
}
