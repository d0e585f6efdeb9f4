package impl

import (
	"context"
	"log/slog"

	domainerrors "locinsight/internal/domain/errors"
	"locinsight/internal/errors"
)

// translate maps a repository sentinel to its AppError. Anything unmapped is logged and
// surfaced as a database error so driver messages stay out of responses.
func translate(ctx context.Context, logger *slog.Logger, err error, operation string, mapping map[error]*domainerrors.BaseError) error {
	for sentinel, appErr := range mapping {
		if errors.Is(err, sentinel) {
			return appErr
		}
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	logger.ErrorContext(ctx, "Repository call failed", slog.String("operation", operation), slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, operation)
}
