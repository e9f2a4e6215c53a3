package vocabsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Session is an authenticated caller. On a 403 from a guarded endpoint it
// rotates its refresh token once and retries.
type Session struct {
	client *SDKClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Refresh rotates the session's refresh token.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	access, refresh, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}
	s.accessToken = access
	s.refreshToken = refresh
	return nil
}

// Logout ends this session on the server and forgets its tokens.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	refresh := s.refreshToken
	s.accessToken, s.refreshToken = "", ""
	s.mu.Unlock()

	return s.client.Logout(ctx, refresh)
}

// Protected calls GET /protected.
func (s *Session) Protected(ctx context.Context) (*ProtectedResponse, error) {
	var out ProtectedResponse
	if err := s.getJSON(ctx, "/protected", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doAuthRequest sends an authenticated request, retrying once after a
// refresh when the access token is rejected.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	resp, err := s.send(ctx, method, path, payload)
	if err != nil || resp.StatusCode != http.StatusForbidden {
		return resp, err
	}
	_ = resp.Body.Close()

	if err := s.Refresh(ctx); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		return nil, err
	}
	return s.send(ctx, method, path, payload)
}

func (s *Session) send(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+s.AccessToken())
	return s.client.doRequest(ctx, method, path, payload, h)
}

func (s *Session) getJSON(ctx context.Context, path string, target any) error {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}
