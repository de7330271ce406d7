package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Already committed or rolled back
		if errors.Is(err, pgx.ErrTxClosed) || err.Error() == domain.ErrMsgTxClosed {
			return
		}
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
