package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterForgetsIdleKeys(t *testing.T) {
	rl := newRateLimiter(RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10})
	now := time.Now()
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	ok, _ := rl.reserve("a")
	require.True(t, ok)
	ok, _ = rl.reserve("b")
	require.True(t, ok)
	require.Equal(t, 2, rl.size())

	now = now.Add(rl.idle + time.Second)
	ok, _ = rl.reserve("c")
	require.True(t, ok)
	require.Equal(t, 1, rl.size())
}
