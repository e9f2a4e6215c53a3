//go:build e2e

package vocab_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/vocab/pkg/vocabsdk"
	"github.com/stretchr/testify/require"
)

func requireAPIError(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *vocabsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
}

func TestHealth(t *testing.T) {
	client := newClient(t)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)
}

// TestRotationExample follows the register, login, refresh chain and checks
// that a used refresh token is rejected.
func TestRotationExample(t *testing.T) {
	client := newClient(t)
	ctx := t.Context()
	email := uniqueEmail(t)

	_, err := client.Register(ctx, email, "pw")
	require.NoError(t, err)

	session, err := client.Login(ctx, email, "pw")
	require.NoError(t, err)
	r1 := session.RefreshToken()

	_, r2, err := client.Refresh(ctx, r1)
	require.NoError(t, err)

	_, _, err = client.Refresh(ctx, r1)
	requireAPIError(t, err, http.StatusForbidden)

	_, _, err = client.Refresh(ctx, r2)
	require.NoError(t, err)
}

func TestRegisterTwice(t *testing.T) {
	client := newClient(t)
	email := uniqueEmail(t)

	_, err := client.Register(t.Context(), email, "pw")
	require.NoError(t, err)

	_, err = client.Register(t.Context(), email, "pw")
	requireAPIError(t, err, http.StatusConflict)
}

func TestLogoutRevokesRefresh(t *testing.T) {
	client := newClient(t)
	ctx := t.Context()
	email := uniqueEmail(t)

	_, err := client.Register(ctx, email, "pw")
	require.NoError(t, err)
	session, err := client.Login(ctx, email, "pw")
	require.NoError(t, err)

	me, err := session.Protected(ctx)
	require.NoError(t, err)
	require.Equal(t, "user", me.User.Role)

	refresh := session.RefreshToken()
	require.NoError(t, session.Logout(ctx))

	_, _, err = client.Refresh(ctx, refresh)
	requireAPIError(t, err, http.StatusForbidden)

	// Logout is idempotent.
	require.NoError(t, client.Logout(ctx, refresh))
	require.NoError(t, client.Logout(ctx, ""))
}

func TestLoginRateLimited(t *testing.T) {
	client := vocabsdk.NewSDKClient(setupVocabContainer(t, baseEnv()))

	var lastErr error
	for range 11 {
		_, lastErr = client.Login(t.Context(), "nobody@example.com", "wrong")
	}
	requireAPIError(t, lastErr, http.StatusTooManyRequests)
}
