package wager

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/wagerengine/internal/concurrency"
	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/repository"
)

// Failure injection points
const (
	failBegin        = "begin"
	failLock         = "lock"
	failAppendDebit  = "append_debit"
	failAppendCredit = "append_credit"
	failIncrement    = "increment"
	failInsertPlay   = "insert_play"
	failCommit       = "commit"
)

type counterKey struct {
	playerID string
	venueID  string
	date     string
}

// fakeStore is an in-memory stand-in for the postgres repositories. Writes
// are staged per transaction and applied only on Commit; LockPlayer holds a
// per-player mutex until the transaction ends.
type fakeStore struct {
	mu       sync.Mutex
	locks    *concurrency.LockManager
	ledger   []domain.LedgerTransaction
	counters map[counterKey]domain.DailyPlayCounter
	plays    map[string]domain.PlayRecord
	nextID   int64
	failures map[string]error
	begins   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		locks:    concurrency.NewLockManager(),
		counters: make(map[counterKey]domain.DailyPlayCounter),
		plays:    make(map[string]domain.PlayRecord),
		failures: make(map[string]error),
	}
}

func (s *fakeStore) failOn(point string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[point] = fmt.Errorf("injected %s failure", point)
}

func (s *fakeStore) failure(point string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures[point]
}

func (s *fakeStore) seedBalance(playerID string, amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.ledger = append(s.ledger, domain.LedgerTransaction{
		ID:           s.nextID,
		PlayerID:     playerID,
		Direction:    domain.DirectionCredit,
		Category:     domain.CategoryDeposit,
		Amount:       amount,
		BalanceAfter: s.balanceLocked(playerID) + amount,
	})
}

func (s *fakeStore) seedCounter(c domain.DailyPlayCounter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[keyOf(c.PlayerID, c.VenueID, c.PlayDate)] = c
}

func (s *fakeStore) balance(playerID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balanceLocked(playerID)
}

func (s *fakeStore) balanceLocked(playerID string) int64 {
	var total int64
	for _, t := range s.ledger {
		if t.PlayerID == playerID {
			total += t.Signed()
		}
	}
	return total
}

func (s *fakeStore) ledgerFor(playerID string) []domain.LedgerTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LedgerTransaction
	for _, t := range s.ledger {
		if t.PlayerID == playerID {
			out = append(out, t)
		}
	}
	return out
}

func (s *fakeStore) playCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.plays)
}

func (s *fakeStore) beginCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.begins
}

func (s *fakeStore) tamperPayout(playID string, payout int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.plays[playID]
	rec.PayoutAmount = payout
	rec.BalanceAfter = rec.BalanceBefore - rec.BetAmount + payout
	s.plays[playID] = rec
}

func (s *fakeStore) tamperCell(playID string, row, col int, mutate func(*domain.Symbol)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.plays[playID]
	mutate(&rec.OutcomeGrid[row][col])
	s.plays[playID] = rec
}

func keyOf(playerID, venueID string, date time.Time) counterKey {
	return counterKey{playerID: playerID, venueID: venueID, date: date.Format(time.DateOnly)}
}

// ---- repository.Wager ----

func (s *fakeStore) BeginWagerTx(ctx context.Context) (repository.WagerTx, error) {
	if err := s.failure(failBegin); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.begins++
	s.mu.Unlock()
	return &fakeTx{store: s, counters: make(map[counterKey]domain.DailyPlayCounter)}, nil
}

// ---- repository.DailyCounter ----

func (s *fakeStore) GetDailyCounter(ctx context.Context, playerID, venueID string, playDate time.Time) (*domain.DailyPlayCounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.counters[keyOf(playerID, venueID, playDate)]
	if !ok {
		return &domain.DailyPlayCounter{PlayerID: playerID, VenueID: venueID, PlayDate: playDate}, nil
	}
	return &c, nil
}

// ---- repository.Play ----

func (s *fakeStore) GetPlay(ctx context.Context, playID string) (*domain.PlayRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.plays[playID]
	if !ok {
		return nil, domain.ErrPlayNotFound
	}
	return &rec, nil
}

func (s *fakeStore) ListPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.PlayRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.PlayRecord
	for _, rec := range s.plays {
		if filter.PlayerID != "" && rec.PlayerID != filter.PlayerID {
			continue
		}
		if filter.VenueID != "" && rec.VenueID != filter.VenueID {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

type fakeTx struct {
	store    *fakeStore
	unlocks  []func()
	locked   map[string]bool
	ledger   []domain.LedgerTransaction
	counters map[counterKey]domain.DailyPlayCounter
	plays    []domain.PlayRecord
	done     bool
}

func (tx *fakeTx) check(ctx context.Context, point string) error {
	if tx.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if point != "" {
		return tx.store.failure(point)
	}
	return nil
}

func (tx *fakeTx) LockPlayer(ctx context.Context, playerID string) error {
	if err := tx.check(ctx, failLock); err != nil {
		return err
	}
	if tx.locked == nil {
		tx.locked = make(map[string]bool)
	}
	if tx.locked[playerID] {
		return nil
	}
	tx.unlocks = append(tx.unlocks, tx.store.locks.Lock(playerID))
	tx.locked[playerID] = true
	return nil
}

func (tx *fakeTx) CurrentBalance(ctx context.Context, playerID string) (int64, error) {
	if err := tx.check(ctx, ""); err != nil {
		return 0, err
	}
	total := tx.store.balance(playerID)
	for _, t := range tx.ledger {
		if t.PlayerID == playerID {
			total += t.Signed()
		}
	}
	return total, nil
}

func (tx *fakeTx) AppendTransaction(ctx context.Context, t *domain.LedgerTransaction) error {
	point := failAppendCredit
	if t.Direction == domain.DirectionDebit {
		point = failAppendDebit
	}
	if err := tx.check(ctx, point); err != nil {
		return err
	}
	t.CreatedAt = time.Now().UTC()
	tx.ledger = append(tx.ledger, *t)
	return nil
}

func (tx *fakeTx) IncrementDailyCounter(ctx context.Context, inc domain.DailyCounterIncrement, quota int) (*domain.DailyPlayCounter, error) {
	if err := tx.check(ctx, failIncrement); err != nil {
		return nil, err
	}
	key := keyOf(inc.PlayerID, inc.VenueID, inc.PlayDate)
	c, ok := tx.counters[key]
	if !ok {
		current, _ := tx.store.GetDailyCounter(ctx, inc.PlayerID, inc.VenueID, inc.PlayDate)
		c = *current
	}
	if c.PlaysCount >= quota {
		return nil, domain.ErrQuotaExceeded
	}
	c.PlaysCount++
	c.TotalWagered += inc.Wagered
	c.TotalWon += inc.Won
	tx.counters[key] = c
	return &c, nil
}

func (tx *fakeTx) InsertPlayRecord(ctx context.Context, rec *domain.PlayRecord) error {
	if err := tx.check(ctx, failInsertPlay); err != nil {
		return err
	}
	tx.plays = append(tx.plays, *rec)
	return nil
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	if err := tx.check(ctx, failCommit); err != nil {
		return err
	}

	s := tx.store
	s.mu.Lock()
	seen := make(map[string]bool)
	for _, t := range s.ledger {
		seen[t.ReferenceID+"/"+string(t.Direction)] = true
	}
	for _, t := range tx.ledger {
		key := t.ReferenceID + "/" + string(t.Direction)
		if t.ReferenceID != "" && seen[key] {
			s.mu.Unlock()
			return fmt.Errorf("duplicate ledger reference %s", key)
		}
		seen[key] = true
	}
	for _, rec := range tx.plays {
		if _, dup := s.plays[rec.PlayID]; dup {
			s.mu.Unlock()
			return fmt.Errorf("duplicate play id %s", rec.PlayID)
		}
	}

	for _, t := range tx.ledger {
		s.nextID++
		t.ID = s.nextID
		s.ledger = append(s.ledger, t)
	}
	for k, c := range tx.counters {
		s.counters[k] = c
	}
	for _, rec := range tx.plays {
		s.plays[rec.PlayID] = rec
	}
	s.mu.Unlock()

	tx.finish()
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if tx.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	tx.finish()
	return nil
}

func (tx *fakeTx) finish() {
	tx.done = true
	for i := len(tx.unlocks) - 1; i >= 0; i-- {
		tx.unlocks[i]()
	}
	tx.unlocks = nil
}
