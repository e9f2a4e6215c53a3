package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPasswordFormat(t *testing.T) {
	for _, pw := range []string{"password123", "", "пароль🔒", "   spaces   ", strings.Repeat("a", 200)} {
		hash, err := HashPassword(pw)
		require.NoError(t, err)

		parts := strings.Split(hash, "$")
		require.Len(t, parts, 6)
		require.Equal(t, "argon2id", parts[1])
		require.Equal(t, "v=19", parts[2])
		require.Equal(t, "m=19456,t=2,p=1", parts[3])
		require.NotEmpty(t, parts[4])
		require.NotEmpty(t, parts[5])

		require.NoError(t, VerifyPassword(pw, hash))
	}
}

func TestHashPasswordUsesUniqueSalts(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	require.ErrorIs(t, VerifyPassword("Correct horse", hash), ErrMismatch)
	require.ErrorIs(t, VerifyPassword("", hash), ErrMismatch)
}

func TestVerifyPasswordMalformed(t *testing.T) {
	for _, h := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$",
	} {
		require.ErrorIs(t, VerifyPassword("pw", h), ErrMalformedHash, h)
	}
}

func TestPepperIsPersisted(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	p1, err := Pepper()
	require.NoError(t, err)

	// Forget the cached value; the same file must yield the same pepper.
	pepperMu.Lock()
	pepper = ""
	pepperMu.Unlock()

	p2, err := Pepper()
	require.NoError(t, err)
	require.Equal(t, p1, p2)
	require.NoError(t, VerifyPassword("pw", hash))
}

func TestPepperChangeInvalidatesHashes(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	orig := pepperFile
	SetPepperPath(filepath.Join(t.TempDir(), "other"))
	t.Cleanup(func() { SetPepperPath(orig) })

	require.ErrorIs(t, VerifyPassword("pw", hash), ErrMismatch)
}
