package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/models"
)

const tokenIssuer = "league"

// TokenIssuer mints and verifies the two token kinds the backend uses:
// login tokens for the HTTP surface and single-purpose confirmation
// tokens that bind a pending match action to its original requester.
type TokenIssuer struct {
	secret     []byte
	loginTTL   time.Duration
	confirmTTL time.Duration
	clock      clockwork.Clock
}

// NewTokenIssuer creates a token issuer.
// In production pass clockwork.NewRealClock(); tests use a FakeClock.
func NewTokenIssuer(secret string, loginTTL, confirmTTL time.Duration, clock clockwork.Clock) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		loginTTL:   loginTTL,
		confirmTTL: confirmTTL,
		clock:      clock,
	}
}

type loginClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

type confirmClaims struct {
	UserID string `json:"uid"`
	Action string `json:"act"`
	jwt.RegisteredClaims
}

// IssueLogin mints a session token for an authenticated user.
func (t *TokenIssuer) IssueLogin(userID uuid.UUID) (string, error) {
	now := t.clock.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, loginClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.loginTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	})
	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign login token: %w", err)
	}
	return signed, nil
}

// VerifyLogin validates a session token and returns the user it was
// issued to.
func (t *TokenIssuer) VerifyLogin(tokenStr string) (uuid.UUID, error) {
	var claims loginClaims
	if err := t.parse(tokenStr, &claims); err != nil {
		return uuid.Nil, apperr.ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, apperr.ErrInvalidToken
	}
	return userID, nil
}

// IssueConfirmation mints a time-bound token binding the requester's
// identity to one pending match action. A token issued for one action
// kind cannot confirm another.
func (t *TokenIssuer) IssueConfirmation(userID uuid.UUID, action models.MatchAction) (string, error) {
	now := t.clock.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, confirmClaims{
		UserID: userID.String(),
		Action: string(action),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.confirmTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	})
	signed, err := tok.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign confirmation token: %w", err)
	}
	return signed, nil
}

// VerifyConfirmation validates a confirmation token for the given action
// and recovers the original requester's identity. It fails closed: any
// tampering, expiry, or action mismatch yields apperr.ErrInvalidToken.
func (t *TokenIssuer) VerifyConfirmation(tokenStr string, action models.MatchAction) (uuid.UUID, error) {
	var claims confirmClaims
	if err := t.parse(tokenStr, &claims); err != nil {
		return uuid.Nil, apperr.ErrInvalidToken
	}
	if claims.Action != string(action) {
		return uuid.Nil, apperr.ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, apperr.ErrInvalidToken
	}
	return userID, nil
}

func (t *TokenIssuer) parse(tokenStr string, claims jwt.Claims) error {
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		return err
	}
	if !tok.Valid {
		return fmt.Errorf("token is not valid")
	}
	return nil
}
