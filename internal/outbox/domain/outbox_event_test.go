package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxEvent_MarkProcessed(t *testing.T) {
	lastError := "smtp timeout"
	event := &OutboxEvent{Status: OutboxEventStatusPending, Retries: 1, LastError: &lastError}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	event.MarkProcessed(at)

	assert.Equal(t, OutboxEventStatusProcessed, event.Status)
	require.NotNil(t, event.ProcessedAt)
	assert.Equal(t, at, *event.ProcessedAt)
	assert.Nil(t, event.LastError)
	assert.Equal(t, 1, event.Retries)
}

func TestOutboxEvent_MarkAttemptFailed(t *testing.T) {
	t.Run("stays pending below max retries", func(t *testing.T) {
		event := &OutboxEvent{Status: OutboxEventStatusPending}

		event.MarkAttemptFailed(errors.New("smtp timeout"), 3)

		assert.Equal(t, OutboxEventStatusPending, event.Status)
		assert.Equal(t, 1, event.Retries)
		require.NotNil(t, event.LastError)
		assert.Equal(t, "smtp timeout", *event.LastError)
	})

	t.Run("fails at max retries", func(t *testing.T) {
		event := &OutboxEvent{Status: OutboxEventStatusPending, Retries: 2}

		event.MarkAttemptFailed(errors.New("smtp timeout"), 3)

		assert.Equal(t, OutboxEventStatusFailed, event.Status)
		assert.Equal(t, 3, event.Retries)
	})
}
