package domain

import "time"

// PayoutClass classifies a settled play.
type PayoutClass string

const (
	PayoutClassLoss       PayoutClass = "loss"
	PayoutClassLineWin    PayoutClass = "line_win"
	PayoutClassMythical   PayoutClass = "mythical"
	PayoutClassTripleWild PayoutClass = "triple_wild"
)

// WagerRequest is one bet submitted by an authenticated player.
type WagerRequest struct {
	PlayerID  string
	VenueID   string
	BetAmount int64
}

// SettlementResult is returned to the player after commit.
type SettlementResult struct {
	PlayID              string      `json:"play_id"`
	OutcomeGrid         OutcomeGrid `json:"outcome_grid"`
	WinningLine         *WinLine    `json:"winning_line"`
	PayoutAmount        int64       `json:"payout_amount"`
	PayoutClass         PayoutClass `json:"payout_class"`
	BalanceBefore       int64       `json:"balance_before"`
	BalanceAfter        int64       `json:"balance_after"`
	SpinsRemainingToday int         `json:"spins_remaining_today"`
	Signature           string      `json:"signature"`
	ServerTimestamp     time.Time   `json:"server_timestamp"`
}

// PlayRecord is the persisted snapshot of a committed play.
type PlayRecord struct {
	PlayID        string      `json:"play_id"`
	PlayerID      string      `json:"player_id"`
	VenueID       string      `json:"venue_id"`
	GameMode      string      `json:"game_mode"`
	BetAmount     int64       `json:"bet_amount"`
	PayoutAmount  int64       `json:"payout_amount"`
	PayoutClass   PayoutClass `json:"payout_class"`
	WinningLine   *WinLine    `json:"winning_line"`
	OutcomeGrid   OutcomeGrid `json:"outcome_grid"`
	BalanceBefore int64       `json:"balance_before"`
	BalanceAfter  int64       `json:"balance_after"`
	Signature     string      `json:"signature"`
	PlayDate      time.Time   `json:"play_date"`
	CreatedAt     time.Time   `json:"created_at"`
}

// PlayFilter narrows audit listings. Zero values are ignored.
type PlayFilter struct {
	PlayerID string
	VenueID  string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// PlayVerification is the outcome of auditing a stored play.
type PlayVerification struct {
	PlayID            string `json:"play_id"`
	SignatureValid    bool   `json:"signature_valid"`
	PayoutConsistent  bool   `json:"payout_consistent"`
	ExpectedPayout    int64  `json:"expected_payout"`
	StoredPayout      int64  `json:"stored_payout"`
	ConservationHolds bool   `json:"conservation_holds"`
}

// Verified reports whether every audit check passed.
func (v PlayVerification) Verified() bool {
	return v.SignatureValid && v.PayoutConsistent && v.ConservationHolds
}

// DailyPlayCounter tracks a player's plays at one venue for one calendar day.
type DailyPlayCounter struct {
	PlayerID     string    `json:"player_id"`
	VenueID      string    `json:"venue_id"`
	PlayDate     time.Time `json:"play_date"`
	PlaysCount   int       `json:"plays_count"`
	TotalWagered int64     `json:"total_wagered"`
	TotalWon     int64     `json:"total_won"`
}

// DailyCounterIncrement is one settled play applied to a counter.
type DailyCounterIncrement struct {
	PlayerID string
	VenueID  string
	PlayDate time.Time
	Wagered  int64
	Won      int64
}

// Venue holds the wagering settings of one location.
type Venue struct {
	ID              string    `json:"venue_id"`
	Name            string    `json:"name"`
	WageringEnabled bool      `json:"wagering_enabled"`
	DailyPlayQuota  int       `json:"daily_play_quota"`
	Timezone        string    `json:"timezone"`
	GameMode        string    `json:"game_mode"`
	UpdatedAt       time.Time `json:"updated_at"`
}
