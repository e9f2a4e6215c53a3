package jwtx

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

var ErrSharedSecret = errors.New("jwtx: access and refresh secrets must differ")

// IssuerConfig configures a TokenIssuer.
type IssuerConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Issuer        string

	// Zero values fall back to DefaultAccessTokenTTL / DefaultRefreshTokenTTL.
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Now is the clock, time.Now when nil.
	Now func() time.Time
}

// TokenIssuer mints and verifies the two token classes. Each class has its
// own secret and audience, so forging or substituting one does not yield
// the other.
type TokenIssuer struct {
	access        *HS256Signer
	refresh       *HS256Signer
	accessVerify  *HS256Verifier
	refreshVerify *HS256Verifier

	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(cfg IssuerConfig) (*TokenIssuer, error) {
	if bytes.Equal(cfg.AccessSecret, cfg.RefreshSecret) {
		return nil, ErrSharedSecret
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	access, err := NewSignerHS256(cfg.AccessSecret)
	if err != nil {
		return nil, fmt.Errorf("access secret: %w", err)
	}
	refresh, err := NewSignerHS256(cfg.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("refresh secret: %w", err)
	}
	accessVerify, err := NewVerifierHS256(cfg.AccessSecret, cfg.Issuer, AudienceAccess, cfg.Now)
	if err != nil {
		return nil, fmt.Errorf("access secret: %w", err)
	}
	refreshVerify, err := NewVerifierHS256(cfg.RefreshSecret, cfg.Issuer, AudienceRefresh, cfg.Now)
	if err != nil {
		return nil, fmt.Errorf("refresh secret: %w", err)
	}

	return &TokenIssuer{
		access:        access,
		refresh:       refresh,
		accessVerify:  accessVerify,
		refreshVerify: refreshVerify,
		issuer:        cfg.Issuer,
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           cfg.Now,
	}, nil
}

// IssueAccessToken signs {userId, role} with the access secret.
func (i *TokenIssuer) IssueAccessToken(userID, role string) (string, time.Time, error) {
	c := NewAccessClaims(userID, role, i.issuer, i.accessTTL, i.now())
	tok, err := i.access.Sign(c)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return tok, c.ExpiresAt.Time, nil
}

// IssueRefreshToken signs {userId} with the refresh secret.
func (i *TokenIssuer) IssueRefreshToken(userID string) (string, time.Time, error) {
	c := NewRefreshClaims(userID, i.issuer, i.refreshTTL, i.now())
	tok, err := i.refresh.Sign(c)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return tok, c.ExpiresAt.Time, nil
}

// VerifyAccess validates an access token.
func (i *TokenIssuer) VerifyAccess(token string) (*Claims, error) {
	return i.accessVerify.Verify(token)
}

// VerifyRefresh validates a refresh token. It says nothing about whether the
// token is still in the owner's session set.
func (i *TokenIssuer) VerifyRefresh(token string) (*Claims, error) {
	return i.refreshVerify.Verify(token)
}

func (i *TokenIssuer) AccessTTL() time.Duration  { return i.accessTTL }
func (i *TokenIssuer) RefreshTTL() time.Duration { return i.refreshTTL }

// AccessVerifier exposes the access half for the request guard.
func (i *TokenIssuer) AccessVerifier() Verifier { return i.accessVerify }
