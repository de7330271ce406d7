package middleware

import "time"

// Session token settings
const (
	// SessionIssuer is the iss claim every session token must carry
	SessionIssuer = "wager-engine"

	// DefaultSessionTTL is the lifetime of tokens issued by Issue
	DefaultSessionTTL = 12 * time.Hour

	// BearerPrefix precedes the token in the Authorization header
	BearerPrefix = "Bearer "

	// HeaderAuthorization carries the session token
	HeaderAuthorization = "Authorization"
)

// HTTP error messages
const (
	ErrMsgMissingToken = "Missing session token"
	ErrMsgInvalidToken = "Invalid session token"
)

// Log Messages
const (
	// LogMsgSessionRejected indicates a request carried an unusable session token
	LogMsgSessionRejected = "Session token rejected"
)
