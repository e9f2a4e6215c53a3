package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/vocab/pkg/jwtx"
	"github.com/aussiebroadwan/vocab/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := LoadConfig()
	cfg.DatabaseFile = filepath.Join(dir, "vocab.db")
	cfg.PepperFile = filepath.Join(dir, "pepper")
	cfg.LogLevel = "error"
	cfg.Port = 0
	return cfg
}

func TestInitTokenIssuer(t *testing.T) {
	log := slogx.Discard()
	strong := strings.Repeat("a", 32)

	t.Run("random secrets", func(t *testing.T) {
		cfg := testConfig(t)
		issuer, err := InitTokenIssuer(cfg, log)
		require.NoError(t, err)

		tok, _, err := issuer.IssueAccessToken("u1", "user")
		require.NoError(t, err)
		_, err = issuer.VerifyAccess(tok)
		require.NoError(t, err)
	})

	t.Run("weak secret", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.AccessSecret = "short"
		_, err := InitTokenIssuer(cfg, log)
		require.ErrorIs(t, err, jwtx.ErrWeakSecret)
	})

	t.Run("shared secret", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.AccessSecret, cfg.RefreshSecret = strong, strong
		_, err := InitTokenIssuer(cfg, log)
		require.ErrorIs(t, err, jwtx.ErrSharedSecret)
	})

	t.Run("configured secrets", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.AccessSecret, cfg.RefreshSecret = strong, strings.Repeat("b", 32)
		_, err := InitTokenIssuer(cfg, log)
		require.NoError(t, err)
	})
}

func TestApplicationLifecycle(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)

	srv := httptest.NewServer(app.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/auth/register", "application/json",
		strings.NewReader(`{"email":"a@x.com","password":"pw"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	app.housekeepingService.Start()
	require.NoError(t, app.Shutdown())
}
