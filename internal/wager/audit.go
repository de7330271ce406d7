package wager

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/logger"
	"github.com/osse101/wagerengine/internal/metrics"
	"github.com/osse101/wagerengine/internal/signer"
)

// VerifyPlay re-derives what a stored play should look like. Payout
// consistency is judged against the mode's current configuration.
func (s *service) VerifyPlay(ctx context.Context, playID string) (*domain.PlayVerification, error) {
	rec, err := s.plays.GetPlay(ctx, playID)
	if err != nil {
		if errors.Is(err, domain.ErrPlayNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadPlayFailed, err)
	}

	v := &domain.PlayVerification{
		PlayID:       rec.PlayID,
		StoredPayout: rec.PayoutAmount,
		SignatureValid: s.signer.Verify(rec.Signature, signer.Payload{
			PlayID:       rec.PlayID,
			Grid:         rec.OutcomeGrid,
			PayoutAmount: rec.PayoutAmount,
			Timestamp:    rec.CreatedAt,
		}),
		ConservationHolds: rec.BalanceAfter == rec.BalanceBefore-rec.BetAmount+rec.PayoutAmount &&
			rec.BalanceAfter >= 0,
	}

	if mode, err := s.modes.Get(rec.GameMode); err == nil {
		res := mode.Calculator.Evaluate(rec.OutcomeGrid, rec.BetAmount)
		v.ExpectedPayout = res.PayoutAmount
		v.PayoutConsistent = res.PayoutAmount == rec.PayoutAmount && res.Class == rec.PayoutClass
	}

	if v.Verified() {
		metrics.AuditVerifications.WithLabelValues(metrics.AuditResultVerified).Inc()
	} else {
		metrics.AuditVerifications.WithLabelValues(metrics.AuditResultFailed).Inc()
		logger.FromContext(ctx).Warn(LogMsgAuditFailed,
			"play_id", rec.PlayID,
			"signature_valid", v.SignatureValid,
			"payout_consistent", v.PayoutConsistent,
			"conservation_holds", v.ConservationHolds)
	}
	return v, nil
}

func (s *service) ListPlays(ctx context.Context, filter domain.PlayFilter) ([]domain.PlayRecord, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultPlayListLimit
	}
	filter.Limit = min(filter.Limit, MaxPlayListLimit)

	plays, err := s.plays.ListPlays(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListPlaysFailed, err)
	}
	return plays, nil
}
