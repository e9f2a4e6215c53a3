package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/domain"
	"github.com/aussiebroadwan/vocab/internal/vocab/store"
	"github.com/aussiebroadwan/vocab/internal/vocab/store/drivers/sqlite"
	"github.com/aussiebroadwan/vocab/pkg/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()
	now := time.Now()
	u := domain.User{
		ID:           idx.NewString(),
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := newUser(t, s, "a@x.com")

	got, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, domain.RoleUser, got.Role)
	require.Equal(t, u.CreatedAt.Unix(), got.CreatedAt.Unix())

	got, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", got.Email)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := u
	dup.ID = idx.NewString()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestRefreshTokenSet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := newUser(t, s, "alice@x.com")
	bob := newUser(t, s, "bob@x.com")

	now := time.Now()
	add := func(userID, hash string, exp time.Time) {
		require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
			ID: idx.NewString(), UserID: userID, TokenHash: hash, ExpiresAt: exp, CreatedAt: now,
		}))
	}
	add(alice.ID, "h1", now.Add(time.Hour))
	add(alice.ID, "h2", now.Add(time.Hour))
	add(bob.ID, "h3", now.Add(-time.Hour))

	set, err := s.RefreshTokens().ListUserRefreshTokens(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, set, 2)
	require.Equal(t, "h1", set[0].TokenHash)

	got, err := s.RefreshTokens().GetRefreshTokenByHash(ctx, "h2")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.UserID)

	t.Run("conditional delete respects owner", func(t *testing.T) {
		err := s.RefreshTokens().DeleteUserRefreshToken(ctx, bob.ID, "h1")
		require.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, s.RefreshTokens().DeleteUserRefreshToken(ctx, alice.ID, "h1"))
		err = s.RefreshTokens().DeleteUserRefreshToken(ctx, alice.ID, "h1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete by hash", func(t *testing.T) {
		require.NoError(t, s.RefreshTokens().DeleteRefreshTokenByHash(ctx, "h2"))
		require.ErrorIs(t, s.RefreshTokens().DeleteRefreshTokenByHash(ctx, "h2"), store.ErrNotFound)
	})

	t.Run("expired sweep", func(t *testing.T) {
		n, err := s.RefreshTokens().DeleteExpiredRefreshTokens(ctx, now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		set, err := s.RefreshTokens().ListUserRefreshTokens(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, set)
	})

	t.Run("hash is unique", func(t *testing.T) {
		add(alice.ID, "h4", now.Add(time.Hour))
		err := s.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
			ID: idx.NewString(), UserID: bob.ID, TokenHash: "h4", ExpiresAt: now, CreatedAt: now,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestRefreshTokenRequiresUser(t *testing.T) {
	s := newStore(t)
	err := s.RefreshTokens().CreateRefreshToken(context.Background(), domain.RefreshToken{
		ID: idx.NewString(), UserID: "ghost", TokenHash: "h", ExpiresAt: time.Now(), CreatedAt: time.Now(),
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, store.ErrAlreadyExists)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := newUser(t, s, "a@x.com")

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
			ID: idx.NewString(), UserID: u.ID, TokenHash: "h", ExpiresAt: time.Now(), CreatedAt: time.Now(),
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	set, err := s.RefreshTokens().ListUserRefreshTokens(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, set)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		require.ErrorIs(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), sql.ErrTxDone)
		return nil
	}))
}

func TestConcurrentConditionalDeleteOnFile(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "vocab.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	u := newUser(t, s, "a@x.com")
	require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
		ID: idx.NewString(), UserID: u.ID, TokenHash: "h", ExpiresAt: time.Now().Add(time.Hour), CreatedAt: time.Now(),
	}))

	const n = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.WithTx(ctx, func(tx store.Tx) error {
				return tx.RefreshTokens().DeleteUserRefreshToken(ctx, u.ID, "h")
			})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, store.ErrNotFound)
		}()
	}
	wg.Wait()
	require.Equal(t, 1, wins)
}
