package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/wagerengine/internal/logger"
)

type contextKey string

const playerIDKey contextKey = "player_id"

// WithPlayerID stores the authenticated player in ctx
func WithPlayerID(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, playerIDKey, playerID)
}

// PlayerIDFromContext returns the player set by Session.Require
func PlayerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(playerIDKey).(string)
	return id, ok && id != ""
}

// Session authenticates players with HS256 bearer tokens. The token subject
// is the player identifier; request bodies never name the player.
type Session struct {
	secret []byte
	parser *jwt.Parser
	now    func() time.Time
}

// NewSession creates a session verifier keyed by secret
func NewSession(secret []byte) *Session {
	s := &Session{secret: secret, now: time.Now}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(SessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s
}

// Issue signs a token for playerID valid for ttl
func (s *Session) Issue(playerID string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   playerID,
		Issuer:    SessionIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses token and returns its subject
func (s *Session) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", jwt.ErrTokenInvalidClaims)
	}
	return claims.Subject, nil
}

// Require rejects requests without a valid session and exposes the player
// to handlers through PlayerIDFromContext
func (s *Session) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderAuthorization)
		token, ok := strings.CutPrefix(header, BearerPrefix)
		if !ok || token == "" {
			http.Error(w, ErrMsgMissingToken, http.StatusUnauthorized)
			return
		}

		playerID, err := s.Verify(token)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgSessionRejected,
				"path", r.URL.Path,
				"error", err)
			http.Error(w, ErrMsgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPlayerID(r.Context(), playerID)))
	})
}
