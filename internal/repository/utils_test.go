package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	rollbackErr error
	rollbacks   int
}

func (s *stubTx) Commit(ctx context.Context) error { return nil }

func (s *stubTx) Rollback(ctx context.Context) error {
	s.rollbacks++
	return s.rollbackErr
}

func TestSafeRollback(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"clean rollback", nil},
		{"already closed", pgx.ErrTxClosed},
		{"unexpected error", errors.New("connection lost")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &stubTx{rollbackErr: tt.err}
			assert.NotPanics(t, func() { SafeRollback(context.Background(), tx) })
			assert.Equal(t, 1, tx.rollbacks)
		})
	}
}
