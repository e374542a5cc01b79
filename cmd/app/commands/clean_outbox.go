package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	outboxUsecase "github.com/allisson/signup/internal/outbox/usecase"
)

type cleanOutboxResult struct {
	Count  int64 `json:"count"`
	Days   int   `json:"days"`
	DryRun bool  `json:"dry_run"`
}

// RunCleanOutbox deletes processed outbox events older than days. With dryRun it
// only reports how many events would be deleted.
func RunCleanOutbox(
	ctx context.Context,
	outboxUseCase outboxUsecase.OutboxUseCase,
	logger *slog.Logger,
	writer io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("cleaning outbox events", slog.Int("days", days), slog.Bool("dry_run", dryRun))

	count, err := outboxUseCase.DeleteProcessedOlderThan(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to delete outbox events: %w", err)
	}

	if format == FormatJSON {
		if err := writeJSON(writer, cleanOutboxResult{Count: count, Days: days, DryRun: dryRun}); err != nil {
			return err
		}
	} else if dryRun {
		_, _ = fmt.Fprintf(writer, "Dry-run mode: Would delete %d processed outbox event(s) older than %d day(s)\n",
			count, days)
	} else {
		_, _ = fmt.Fprintf(writer, "Successfully deleted %d processed outbox event(s) older than %d day(s)\n",
			count, days)
	}

	logger.Info("cleanup completed", slog.Int64("count", count))
	return nil
}
