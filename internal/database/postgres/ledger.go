package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/repository"
	"github.com/osse101/wagerengine/internal/utils"
)

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetBalance derives the player's balance from the transaction log
func (r *LedgerRepository) GetBalance(ctx context.Context, playerID string) (int64, error) {
	balance, err := balanceOf(ctx, r.db, playerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return balance, nil
}

// ListTransactions returns the newest transactions of a player first
func (r *LedgerRepository) ListTransactions(ctx context.Context, playerID string, limit int) ([]domain.LedgerTransaction, error) {
	rows, err := r.db.Query(ctx, sqlListTransactions, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTransactions, err)
	}
	defer rows.Close()

	txs := make([]domain.LedgerTransaction, 0, limit)
	for rows.Next() {
		var (
			t         domain.LedgerTransaction
			direction string
			category  string
			reference pgtype.Text
			metadata  []byte
		)
		if err := rows.Scan(&t.ID, &t.PlayerID, &direction, &category, &t.Amount, &t.BalanceAfter,
			&reference, &metadata, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanLedgerRow, err)
		}
		t.Direction = domain.LedgerDirection(direction)
		t.Category = domain.LedgerCategory(category)
		t.ReferenceID = reference.String
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &t.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalMetadata, err)
			}
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTransactions, err)
	}
	return txs, nil
}

// BeginLedgerTx starts a transaction for appending balance events
func (r *LedgerRepository) BeginLedgerTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &ledgerTx{tx: tx}, nil
}

// ledgerTx implements repository.LedgerTx on top of a pgx transaction
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// LockPlayer takes a transaction-scoped advisory lock keyed on the player.
// It is released automatically on commit or rollback.
func (t *ledgerTx) LockPlayer(ctx context.Context, playerID string) error {
	key := utils.AdvisoryLockKey(LockNamespaceLedger, playerID)
	if _, err := t.tx.Exec(ctx, sqlAdvisoryLock, key); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockPlayer, err)
	}
	return nil
}

func (t *ledgerTx) CurrentBalance(ctx context.Context, playerID string) (int64, error) {
	balance, err := balanceOf(ctx, t.tx, playerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return balance, nil
}

func (t *ledgerTx) AppendTransaction(ctx context.Context, lt *domain.LedgerTransaction) error {
	metadata := lt.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalMetadata, err)
	}

	var (
		id        int64
		createdAt time.Time
	)
	err = t.tx.QueryRow(ctx, sqlAppendTransaction,
		lt.PlayerID,
		string(lt.Direction),
		string(lt.Category),
		lt.Amount,
		lt.BalanceAfter,
		strToText(lt.ReferenceID),
		metadataJSON,
	).Scan(&id, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", ErrMsgDuplicateLedgerReference, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToAppendTransaction, err)
	}

	lt.ID = id
	lt.CreatedAt = createdAt
	return nil
}
