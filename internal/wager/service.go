package wager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/ledger"
	"github.com/osse101/wagerengine/internal/limiter"
	"github.com/osse101/wagerengine/internal/logger"
	"github.com/osse101/wagerengine/internal/metrics"
	"github.com/osse101/wagerengine/internal/repository"
	"github.com/osse101/wagerengine/internal/signer"
	"github.com/osse101/wagerengine/internal/symbols"
)

// Config holds coordinator settings
type Config struct {
	TxTimeout time.Duration
}

// Service settles wagers and audits settled plays
type Service interface {
	// PlaceWager validates, debits, generates, settles and records one play
	// in a single transaction. Errors classify with domain.ErrorCodeOf.
	PlaceWager(ctx context.Context, req domain.WagerRequest) (*domain.SettlementResult, error)

	// VerifyPlay re-checks the signature, payout and conservation of a stored play
	VerifyPlay(ctx context.Context, playID string) (*domain.PlayVerification, error)

	ListPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.PlayRecord, error)
}

type service struct {
	repo      repository.Wager
	plays     repository.Play
	venues    limiter.VenueProvider
	limiter   limiter.Service
	resolver  symbols.Resolver
	signer    *signer.Signer
	modes     Modes
	txTimeout time.Duration
	now       func() time.Time
	newPlayID func() string
}

// NewService creates the wager coordinator
func NewService(
	repo repository.Wager,
	plays repository.Play,
	venues limiter.VenueProvider,
	limiterSvc limiter.Service,
	resolver symbols.Resolver,
	sig *signer.Signer,
	modes Modes,
	config Config,
) Service {
	timeout := config.TxTimeout
	if timeout <= 0 {
		timeout = DefaultTxTimeout
	}
	return &service{
		repo:      repo,
		plays:     plays,
		venues:    venues,
		limiter:   limiterSvc,
		resolver:  resolver,
		signer:    sig,
		modes:     modes,
		txTimeout: timeout,
		now:       time.Now,
		newPlayID: uuid.NewString,
	}
}

// machine tracks the current state so failures can report where they happened.
type machine struct {
	log   *slog.Logger
	state State
}

func (m *machine) enter(s State) {
	m.state = s
	m.log.Debug(LogMsgStateChanged, "state", s)
}

// fail wraps an infrastructure error with the state it happened in.
func (m *machine) fail(err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrTransactionFailed, m.state, err)
}

func (s *service) PlaceWager(ctx context.Context, req domain.WagerRequest) (*domain.SettlementResult, error) {
	log := logger.FromContext(ctx).With("player_id", req.PlayerID, "venue_id", req.VenueID, "bet_amount", req.BetAmount)
	m := &machine{log: log}
	m.enter(StateValidating)

	venue, mode, err := s.validate(ctx, req)
	if err != nil {
		return nil, s.reject(log, m, err)
	}

	// Once debiting starts the unit runs to commit or rollback regardless of the caller.
	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.txTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.settle(txCtx, m, req, venue, mode)
	metrics.WagerTxDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, s.reject(log, m, err)
	}

	metrics.PlaysSettled.WithLabelValues(mode.Name, string(result.PayoutClass)).Inc()
	metrics.CoinsWagered.Add(float64(req.BetAmount))
	metrics.CoinsPaid.Add(float64(result.PayoutAmount))
	log.Info(LogMsgWagerSettled,
		"play_id", result.PlayID,
		"payout_class", result.PayoutClass,
		"payout_amount", result.PayoutAmount,
		"balance_after", result.BalanceAfter)
	return result, nil
}

// validate runs every check that must pass before any write.
func (s *service) validate(ctx context.Context, req domain.WagerRequest) (*domain.Venue, *GameMode, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return nil, nil, domain.ErrInvalidPlayerID
	}
	if req.BetAmount <= 0 {
		return nil, nil, domain.ErrInvalidBet
	}

	venue, err := s.venues.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, domain.ErrVenueNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %s: %w", domain.ErrTransactionFailed, StateValidating, err)
	}
	if !venue.WageringEnabled {
		return nil, nil, domain.ErrVenueNotEnabled
	}

	mode, err := s.modes.Get(venue.GameMode)
	if err != nil {
		return nil, nil, err
	}
	if !mode.AcceptsBet(req.BetAmount) {
		return nil, nil, fmt.Errorf("%w: must be between %d and %d", domain.ErrInvalidBet, mode.MinBet, mode.MaxBet)
	}

	remaining, err := s.limiter.Remaining(ctx, req.PlayerID, venue)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", domain.ErrTransactionFailed, ErrMsgQuotaCheckFailed, err)
	}
	if remaining < 1 {
		return nil, nil, limiter.QuotaReached{VenueID: venue.ID, Quota: venue.DailyPlayQuota}
	}
	return venue, mode, nil
}

func (s *service) settle(ctx context.Context, m *machine, req domain.WagerRequest, venue *domain.Venue, mode *GameMode) (*domain.SettlementResult, error) {
	m.enter(StateDebiting)
	tx, err := s.repo.BeginWagerTx(ctx)
	if err != nil {
		return nil, m.fail(fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err))
	}
	defer repository.SafeRollback(ctx, tx)

	playID := s.newPlayID()
	book := ledger.NewBook(tx)

	debit, err := book.Debit(ctx, ledger.Entry{
		PlayerID:    req.PlayerID,
		Category:    domain.CategoryWagerBet,
		Amount:      req.BetAmount,
		ReferenceID: playID,
		Metadata:    map[string]interface{}{MetaKeyVenueID: venue.ID, MetaKeyGameMode: mode.Name},
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, err
		}
		return nil, m.fail(err)
	}
	balanceBefore := debit.BalanceAfter + req.BetAmount

	m.enter(StateGenerating)
	deck, err := s.resolver.Resolve(ctx, req.PlayerID)
	if err != nil {
		return nil, m.fail(fmt.Errorf("%s: %w", ErrMsgResolveSymbols, err))
	}
	out, err := mode.Generator.Generate(deck)
	if err != nil {
		return nil, m.fail(fmt.Errorf("%s: %w", ErrMsgGenerateOutcome, err))
	}

	m.enter(StateSettling)
	res := mode.Calculator.Evaluate(out.Grid, req.BetAmount)

	m.enter(StateRecording)
	balanceAfter := debit.BalanceAfter
	if res.PayoutAmount > 0 {
		meta := map[string]interface{}{
			MetaKeyVenueID:     venue.ID,
			MetaKeyGameMode:    mode.Name,
			MetaKeyPayoutClass: string(res.Class),
		}
		if res.WinningLine != nil {
			meta[MetaKeyWinningLine] = string(*res.WinningLine)
		}
		credit, err := book.Credit(ctx, ledger.Entry{
			PlayerID:    req.PlayerID,
			Category:    domain.CategoryWagerPayout,
			Amount:      res.PayoutAmount,
			ReferenceID: playID,
			Metadata:    meta,
		})
		if err != nil {
			return nil, m.fail(err)
		}
		balanceAfter = credit.BalanceAfter
	}

	if balanceAfter != balanceBefore-req.BetAmount+res.PayoutAmount {
		return nil, m.fail(errors.New(ErrMsgConservationBroken))
	}

	playDate, err := s.limiter.Today(venue)
	if err != nil {
		return nil, m.fail(fmt.Errorf("%s: %w", ErrMsgPlayDate, err))
	}
	_, remaining, err := s.limiter.RecordPlay(ctx, tx, venue, domain.DailyCounterIncrement{
		PlayerID: req.PlayerID,
		VenueID:  venue.ID,
		PlayDate: playDate,
		Wagered:  req.BetAmount,
		Won:      res.PayoutAmount,
	})
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return nil, err
		}
		return nil, m.fail(err)
	}

	// Postgres keeps microseconds; sign what will be read back.
	ts := s.now().UTC().Truncate(time.Microsecond)
	signature := s.signer.Sign(signer.Payload{
		PlayID:       playID,
		Grid:         out.Grid,
		PayoutAmount: res.PayoutAmount,
		Timestamp:    ts,
	})

	rec := &domain.PlayRecord{
		PlayID:        playID,
		PlayerID:      req.PlayerID,
		VenueID:       venue.ID,
		GameMode:      mode.Name,
		BetAmount:     req.BetAmount,
		PayoutAmount:  res.PayoutAmount,
		PayoutClass:   res.Class,
		WinningLine:   res.WinningLine,
		OutcomeGrid:   out.Grid,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		Signature:     signature,
		PlayDate:      playDate,
		CreatedAt:     ts,
	}
	if err := tx.InsertPlayRecord(ctx, rec); err != nil {
		return nil, m.fail(fmt.Errorf("%s: %w", ErrMsgInsertPlayFailed, err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, m.fail(fmt.Errorf("%s: %w", ErrMsgCommitFailed, err))
	}
	m.enter(StateCommitted)

	return &domain.SettlementResult{
		PlayID:              playID,
		OutcomeGrid:         out.Grid,
		WinningLine:         res.WinningLine,
		PayoutAmount:        res.PayoutAmount,
		PayoutClass:         res.Class,
		BalanceBefore:       balanceBefore,
		BalanceAfter:        balanceAfter,
		SpinsRemainingToday: remaining,
		Signature:           signature,
		ServerTimestamp:     ts,
	}, nil
}

// reject records the failure and returns err unchanged.
func (s *service) reject(log *slog.Logger, m *machine, err error) error {
	failedIn := m.state
	m.enter(StateFailed)

	code := domain.ErrorCodeOf(err)
	if code == domain.CodeTransactionFailed {
		metrics.WagerFailures.WithLabelValues(string(failedIn)).Inc()
		log.Error(LogMsgWagerRolledBack, "state", failedIn, "error", err)
	} else {
		log.Info(LogMsgWagerRejected, "state", failedIn, "error_code", code, "reason", err.Error())
	}
	metrics.WagersRejected.WithLabelValues(string(code)).Inc()
	return err
}
