package vocabsdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("json body", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusForbidden}
		err := parseErrorResponse(resp, []byte(`{"error":"forbidden","message":"nope"}`))

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		require.Equal(t, ErrorCodeForbidden, apiErr.Code)
		require.Equal(t, "nope", apiErr.Message)
		require.Equal(t, "forbidden: nope", err.Error())
	})

	t.Run("plain body", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusBadGateway}
		err := parseErrorResponse(resp, []byte("upstream down"))

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		require.Equal(t, "Bad Gateway", apiErr.Code)
	})
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ErrEmailTaken.WithMessage("taken").WriteError(rec)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.JSONEq(t, `{"error":"email_taken","message":"taken"}`, rec.Body.String())
	require.Equal(t, "email is already registered", ErrEmailTaken.Message, "WithMessage must not mutate the shared value")
}

func TestLoginReadsRefreshCookie(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: RefreshCookieName, Value: "r1", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"a1"}`))
	}))
	defer srv.Close()

	s, err := NewSDKClient(srv.URL + "/").Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "a1", s.AccessToken())
	require.Equal(t, "r1", s.RefreshToken())
}

func TestLoginWithoutCookie(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"a1"}`))
	}))
	defer srv.Close()

	_, err := NewSDKClient(srv.URL).Login(context.Background(), "a@x.com", "pw")
	require.ErrorIs(t, err, ErrNoRefreshCookie)
}

func TestSessionRetriesOnceAfterRefresh(t *testing.T) {
	t.Parallel()

	var protectedCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie(RefreshCookieName)
		if err != nil || ck.Value != "r1" {
			ErrForbidden.WriteError(w)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: RefreshCookieName, Value: "r2"})
		_, _ = w.Write([]byte(`{"accessToken":"fresh"}`))
	})
	mux.HandleFunc("GET /protected", func(w http.ResponseWriter, r *http.Request) {
		protectedCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			ErrForbidden.WriteError(w)
			return
		}
		_, _ = w.Write([]byte(`{"message":"ok","user":{"userId":"u1","role":"user"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewSDKClient(srv.URL)

	t.Run("refreshes and retries", func(t *testing.T) {
		s := client.NewSession("stale", "r1")
		me, err := s.Protected(context.Background())
		require.NoError(t, err)
		require.Equal(t, "u1", me.User.UserID)
		require.Equal(t, "r2", s.RefreshToken())
		require.EqualValues(t, 2, protectedCalls.Load())
	})

	t.Run("refresh failure surfaces", func(t *testing.T) {
		s := client.NewSession("stale", "used")
		_, err := s.Protected(context.Background())

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})
}
