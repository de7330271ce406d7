package symbols

// Deck size requirements
const (
	MinDeckSize     = 3
	MinPlainSymbols = 2
)

// Fallback deck
const (
	FallbackCherryID      = "fallback_cherry"
	FallbackCherryDisplay = "🍒"
	FallbackLemonID       = "fallback_lemon"
	FallbackLemonDisplay  = "🍋"
	FallbackWildID        = "fallback_wild"
	FallbackWildDisplay   = "⭐"
)

const (
	ErrMsgLoadSymbolsFailed = "failed to load unlocked symbols"
	LogMsgFallbackDeck      = "Symbol set unusable, substituting fallback deck"
)
