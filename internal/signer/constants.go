package signer

const (
	// CurrentVersion tags newly issued signatures so keys can rotate.
	CurrentVersion = "v1"

	hkdfInfoPrefix = "wager-result-signature:"
	versionSep     = "."
	minSecretLen   = 32
)

const (
	ErrMsgSecretTooShort = "signing secret must be at least 32 bytes"
	ErrMsgKeyDerivation  = "failed to derive signing key"
)
