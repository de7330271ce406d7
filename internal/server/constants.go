package server

import "time"

// HTTP server limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second
)

// Rate monitoring thresholds
const (
	DetectorWindow           = 5 * time.Minute
	FailedAuthAlertThreshold = 5
	MaxRequestsPerWindow     = 1000
	HighRateLogEvery         = 100
)

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCacheControl   = "Cache-Control"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueNoStore              = "no-store"
)

// Header redaction marker
const RedactedValue = "[REDACTED]"
