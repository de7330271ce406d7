package outcome

// Defaults
const (
	DefaultWinProbability = 0.15
	DefaultInverseLevelK  = 10
	DefaultMaxRedraws     = 32

	// probeBet is the bet used when comparing line values during generation.
	probeBet = 100

	// fallbackCandidates bounds the deterministic search used once redraws are exhausted.
	fallbackCandidates = 3
)

// Error messages
const (
	ErrFmtWinProbability  = "win probability %v must be within [0, 1]"
	ErrFmtNegativeWeight  = "pattern %s has a negative weight"
	ErrMsgNoPatternWeight = "at least one pattern weight must be positive"
	ErrMsgInverseLevelK   = "inverse level constant must be at least 1"
	ErrMsgMaxRedraws      = "max redraws must be at least 1"
	ErrMsgDeckTooSmall    = "deck needs at least two distinct non-wild symbols"
)

// Log messages
const (
	LogMsgRedrawsExhausted = "Outcome redraws exhausted, using deterministic layout"
)
