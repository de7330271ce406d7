package payout

// Default multiplier table
const (
	DefaultJackpotMultiplier       = 6
	DefaultTripleWildFactor        = 2
	DefaultMythicalFactor          = "1.5"
	DefaultLegendaryLevelThreshold = 8
	DefaultLevelMultiplier         = 2
	DefaultWildBonus               = 1
	DefaultDiagonalBonus           = 2
)

// Configuration error messages
const (
	ErrMsgJackpotMultiplier  = "jackpot multiplier must be positive"
	ErrMsgTripleWildFactor   = "triple wild factor must be positive"
	ErrMsgMythicalFactor     = "mythical factor must be positive"
	ErrMsgLegendaryThreshold = "legendary level threshold must be at least 1"
	ErrMsgLevelMultiplier    = "level multiplier must be positive"
	ErrMsgNegativeBonus      = "wild and diagonal bonuses must not be negative"
	ErrMsgNegativeCap        = "max payout multiplier must not be negative"
)
