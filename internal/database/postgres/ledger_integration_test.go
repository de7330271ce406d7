package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/repository"
)

func TestLedgerRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(pool)

	t.Run("unknown player has zero balance", func(t *testing.T) {
		balance, err := repo.GetBalance(ctx, newPlayerID())
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("balance is credits minus debits", func(t *testing.T) {
		playerID := newPlayerID()
		seedDeposit(t, pool, playerID, 100)

		tx, err := repo.BeginLedgerTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		require.NoError(t, tx.LockPlayer(ctx, playerID))
		debit := &domain.LedgerTransaction{
			PlayerID:     playerID,
			Direction:    domain.DirectionDebit,
			Category:     domain.CategoryWagerBet,
			Amount:       30,
			BalanceAfter: 70,
			ReferenceID:  uuid.NewString(),
			Metadata:     map[string]interface{}{"venue_id": "venue-1"},
		}
		require.NoError(t, tx.AppendTransaction(ctx, debit))
		assert.NotZero(t, debit.ID)
		assert.False(t, debit.CreatedAt.IsZero())

		inTx, err := tx.CurrentBalance(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, int64(70), inTx)

		require.NoError(t, tx.Commit(ctx))

		balance, err := repo.GetBalance(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, int64(70), balance)

		history, err := repo.ListTransactions(ctx, playerID, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, domain.DirectionDebit, history[0].Direction)
		assert.Equal(t, domain.CategoryWagerBet, history[0].Category)
		assert.Equal(t, "venue-1", history[0].Metadata["venue_id"])
		assert.Equal(t, domain.CategoryDeposit, history[1].Category)
	})

	t.Run("rollback discards appended rows", func(t *testing.T) {
		playerID := newPlayerID()

		tx, err := repo.BeginLedgerTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.AppendTransaction(ctx, &domain.LedgerTransaction{
			PlayerID:     playerID,
			Direction:    domain.DirectionCredit,
			Category:     domain.CategoryDeposit,
			Amount:       50,
			BalanceAfter: 50,
		}))
		require.NoError(t, tx.Rollback(ctx))

		balance, err := repo.GetBalance(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("reference and direction are unique", func(t *testing.T) {
		playerID := newPlayerID()
		ref := uuid.NewString()
		seedDeposit(t, pool, playerID, 10)

		tx, err := repo.BeginLedgerTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		first := &domain.LedgerTransaction{
			PlayerID: playerID, Direction: domain.DirectionDebit, Category: domain.CategoryWagerBet,
			Amount: 1, BalanceAfter: 9, ReferenceID: ref,
		}
		require.NoError(t, tx.AppendTransaction(ctx, first))

		dup := *first
		dup.BalanceAfter = 8
		err = tx.AppendTransaction(ctx, &dup)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDuplicateLedgerReference)
	})

	t.Run("negative balance rejected by schema", func(t *testing.T) {
		tx, err := repo.BeginLedgerTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		err = tx.AppendTransaction(ctx, &domain.LedgerTransaction{
			PlayerID: newPlayerID(), Direction: domain.DirectionDebit, Category: domain.CategoryWagerBet,
			Amount: 5, BalanceAfter: -5,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedToAppendTransaction)
	})

	t.Run("rows are append-only", func(t *testing.T) {
		playerID := newPlayerID()
		seedDeposit(t, pool, playerID, 10)

		_, err := pool.Exec(ctx, `UPDATE ledger_transactions SET amount = 1000 WHERE player_id = $1`, playerID)
		require.Error(t, err)
		_, err = pool.Exec(ctx, `DELETE FROM ledger_transactions WHERE player_id = $1`, playerID)
		require.Error(t, err)

		balance, err := repo.GetBalance(ctx, playerID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), balance)
	})
}
