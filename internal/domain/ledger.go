package domain

import "time"

// LedgerDirection is the sign of a ledger transaction.
type LedgerDirection string

const (
	DirectionDebit  LedgerDirection = "debit"
	DirectionCredit LedgerDirection = "credit"
)

// LedgerCategory describes why a transaction was appended.
type LedgerCategory string

const (
	CategoryWagerBet    LedgerCategory = "wager_bet"
	CategoryWagerPayout LedgerCategory = "wager_payout"
	CategoryDeposit     LedgerCategory = "deposit"
)

// LedgerTransaction is an immutable balance-affecting event.
// A player's balance is the sum of credits minus debits.
type LedgerTransaction struct {
	ID           int64                  `json:"transaction_id"`
	PlayerID     string                 `json:"player_id"`
	Direction    LedgerDirection        `json:"direction"`
	Category     LedgerCategory         `json:"category"`
	Amount       int64                  `json:"amount"`
	BalanceAfter int64                  `json:"balance_after"`
	ReferenceID  string                 `json:"reference_id,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Signed returns the transaction amount with its direction applied.
func (t LedgerTransaction) Signed() int64 {
	if t.Direction == DirectionDebit {
		return -t.Amount
	}
	return t.Amount
}
