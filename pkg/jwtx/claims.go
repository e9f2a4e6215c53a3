package jwtx

import (
	"encoding/base64"
	"slices"
	"time"

	"github.com/aussiebroadwan/vocab/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// Default lifetimes of the two token classes.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 14 * 24 * time.Hour
)

// Audiences separate the token classes so one can never stand in for the other.
const (
	AudienceAccess  = "vocab:access"
	AudienceRefresh = "vocab:refresh"
)

// Claims are the JWT claims of both token classes. Refresh tokens leave
// Role empty.
type Claims struct {
	jwt.RegisteredClaims

	// Role of the user at issue time, e.g. "user" or "admin".
	Role string `json:"role,omitempty"`
}

// UserID is the subject of the token.
func (c *Claims) UserID() string { return c.Subject }

// NewAccessClaims builds claims for a short-lived access token.
func NewAccessClaims(userID, role, issuer string, ttl time.Duration, now time.Time) Claims {
	c := newClaims(userID, issuer, AudienceAccess, ttl, now)
	c.Role = role
	return c
}

// NewRefreshClaims builds claims for a refresh token. They carry the user id only.
func NewRefreshClaims(userID, issuer string, ttl time.Duration, now time.Time) Claims {
	return newClaims(userID, issuer, AudienceRefresh, ttl, now)
}

func newClaims(subject, issuer, audience string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim, so two
// tokens minted for the same user within the same second still differ.
func NewJTI() string {
	b, err := cryptox.RandomBytes(16)
	if err != nil {
		panic("jwtx: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected ...string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiryAt checks exp and nbf against now. A token is expired from
// the exp second onwards.
func (c *Claims) ValidateExpiryAt(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
