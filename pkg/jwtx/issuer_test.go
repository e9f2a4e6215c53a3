package jwtx_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/vocab/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = bytes.Repeat([]byte("a"), 32)
	refreshSecret = bytes.Repeat([]byte("r"), 32)
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newIssuer(t *testing.T, c *clock) *jwtx.TokenIssuer {
	t.Helper()
	iss, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
		Issuer:        "vocab",
		Now:           c.Now,
	})
	require.NoError(t, err)
	return iss
}

func TestNewTokenIssuerRejectsBadSecrets(t *testing.T) {
	t.Run("shared secret", func(t *testing.T) {
		_, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{AccessSecret: accessSecret, RefreshSecret: accessSecret})
		require.ErrorIs(t, err, jwtx.ErrSharedSecret)
	})

	t.Run("short secret", func(t *testing.T) {
		_, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{AccessSecret: []byte("short"), RefreshSecret: refreshSecret})
		require.ErrorIs(t, err, jwtx.ErrWeakSecret)
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	c := &clock{t: time.Now().Truncate(time.Second)}
	iss := newIssuer(t, c)

	tok, exp, err := iss.IssueAccessToken("user-1", "admin")
	require.NoError(t, err)
	require.Equal(t, c.t.Add(15*time.Minute), exp)

	claims, err := iss.VerifyAccess(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID())
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "vocab", claims.Issuer)
	require.Contains(t, claims.Audience, jwtx.AudienceAccess)
	require.NotEmpty(t, claims.ID)
}

func TestRefreshTokenCarriesNoRole(t *testing.T) {
	c := &clock{t: time.Now().Truncate(time.Second)}
	iss := newIssuer(t, c)

	tok, exp, err := iss.IssueRefreshToken("user-1")
	require.NoError(t, err)
	require.Equal(t, c.t.Add(14*24*time.Hour), exp)

	claims, err := iss.VerifyRefresh(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID())
	require.Empty(t, claims.Role)
}

func TestRefreshTokensAreDistinctWithinOneSecond(t *testing.T) {
	c := &clock{t: time.Now().Truncate(time.Second)}
	iss := newIssuer(t, c)

	a, _, err := iss.IssueRefreshToken("user-1")
	require.NoError(t, err)
	b, _, err := iss.IssueRefreshToken("user-1")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestAccessTokenLifetime(t *testing.T) {
	c := &clock{t: time.Now().Truncate(time.Second)}
	iss := newIssuer(t, c)
	t0 := c.t

	tok, _, err := iss.IssueAccessToken("user-1", "user")
	require.NoError(t, err)

	c.t = t0.Add(14*time.Minute + 59*time.Second)
	_, err = iss.VerifyAccess(tok)
	require.NoError(t, err)

	c.t = t0.Add(15*time.Minute + time.Second)
	_, err = iss.VerifyAccess(tok)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestRefreshTokenLifetime(t *testing.T) {
	c := &clock{t: time.Now().Truncate(time.Second)}
	iss := newIssuer(t, c)
	t0 := c.t

	tok, _, err := iss.IssueRefreshToken("user-1")
	require.NoError(t, err)

	c.t = t0.Add(14*24*time.Hour - time.Second)
	_, err = iss.VerifyRefresh(tok)
	require.NoError(t, err)

	c.t = t0.Add(14 * 24 * time.Hour)
	_, err = iss.VerifyRefresh(tok)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestTokenClassesAreNotSubstitutable(t *testing.T) {
	c := &clock{t: time.Now()}
	iss := newIssuer(t, c)

	access, _, err := iss.IssueAccessToken("user-1", "user")
	require.NoError(t, err)
	refresh, _, err := iss.IssueRefreshToken("user-1")
	require.NoError(t, err)

	_, err = iss.VerifyRefresh(access)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)

	_, err = iss.VerifyAccess(refresh)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsTampering(t *testing.T) {
	c := &clock{t: time.Now()}
	iss := newIssuer(t, c)

	tok, _, err := iss.IssueAccessToken("user-1", "user")
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := iss.VerifyAccess("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("flipped signature", func(t *testing.T) {
		parts := strings.Split(tok, ".")
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		_, err := iss.VerifyAccess(parts[0] + "." + parts[1] + "." + string(sig))
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("alg none", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("user-1", "admin", "vocab", time.Hour, c.t)
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = iss.VerifyAccess(none)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256(bytes.Repeat([]byte("x"), 32))
		require.NoError(t, err)
		forged, err := other.Sign(jwtx.NewAccessClaims("user-1", "admin", "vocab", time.Hour, c.t))
		require.NoError(t, err)

		_, err = iss.VerifyAccess(forged)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}

func TestVerifyChecksIssuerAndAudience(t *testing.T) {
	now := time.Now()
	signer, err := jwtx.NewSignerHS256(accessSecret)
	require.NoError(t, err)

	v, err := jwtx.NewVerifierHS256(accessSecret, "vocab", jwtx.AudienceAccess, nil)
	require.NoError(t, err)

	wrongIss, err := signer.Sign(jwtx.NewAccessClaims("user-1", "user", "someone-else", time.Hour, now))
	require.NoError(t, err)
	_, err = v.Verify(wrongIss)
	require.ErrorIs(t, err, jwtx.ErrIssuer)

	wrongAud, err := signer.Sign(jwtx.NewRefreshClaims("user-1", "vocab", time.Hour, now))
	require.NoError(t, err)
	_, err = v.Verify(wrongAud)
	require.ErrorIs(t, err, jwtx.ErrAudience)
}

func TestValidateExpiryAt(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	c := jwtx.NewAccessClaims("u", "user", "vocab", time.Minute, now)

	require.NoError(t, c.ValidateExpiryAt(now))
	require.ErrorIs(t, c.ValidateExpiryAt(now.Add(time.Minute)), jwtx.ErrExpired)
	require.ErrorIs(t, c.ValidateExpiryAt(now.Add(-time.Second)), jwtx.ErrNotYetValid)
}
