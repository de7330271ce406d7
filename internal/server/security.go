package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/wagerengine/internal/logger"
)

// AuthMiddleware guards operator routes with the shared API key
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison so the key cannot be guessed byte by byte
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector tracks and alerts on suspicious patterns
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	lastResetTime    time.Time
}

// NewSuspiciousActivityDetector creates a detector with an empty window
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		lastResetTime:    time.Now(),
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.failedAuthByIP[ip]++

	if s.failedAuthByIP[ip] >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", s.failedAuthByIP[ip])
	}
}

// RecordRequest records a request for rate monitoring and returns false if rate limit exceeded
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.requestCountByIP[ip]++

	if s.requestCountByIP[ip] > MaxRequestsPerWindow {
		if s.requestCountByIP[ip]%HighRateLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_5min", s.requestCountByIP[ip])
		}
		return false
	}
	return true
}

// resetCountsIfNeeded resets counters if the time window has passed
// Caller must hold the mutex
func (s *SuspiciousActivityDetector) resetCountsIfNeeded() {
	if time.Since(s.lastResetTime) > DetectorWindow {
		s.requestCountByIP = make(map[string]int)
		s.failedAuthByIP = make(map[string]int)
		s.lastResetTime = time.Now()
	}
}

// SecurityLoggingMiddleware enforces the per-IP request rate
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !detector.RecordRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	// Get remote IP (direct connection)
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// Fallback if parsing fails (shouldn't happen for valid RemoteAddr)
		remoteIP = r.RemoteAddr
	}

	// Check if remote IP is a trusted proxy
	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	// Only check X-Forwarded-For if trusted
	if isTrusted {
		forwarded := r.Header.Get(HeaderForwardedFor)
		if forwarded != "" {
			// For X-Forwarded-For: client, proxy1, proxy2
			// We want the rightmost IP (the one that connected to our trusted proxy)
			// since we trust the proxy to accurately report the previous hop.
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			// Prevent clickjacking
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			// Enable XSS protection (for older browsers)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			// Control referrer information
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			// Balances and signed results must not be cached by intermediaries
			w.Header().Set(HeaderCacheControl, HeaderValueNoStore)

			next.ServeHTTP(w, r)
		})
	}
}
