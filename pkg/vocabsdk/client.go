package vocabsdk

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// ErrNoRefreshCookie is returned when a login or refresh response carries no
// refreshToken cookie.
var ErrNoRefreshCookie = errors.New("vocabsdk: response has no refresh token cookie")

// SDKClient is a client for the public endpoints of the vocab service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with a 10 second request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account and returns its user id.
func (c *SDKClient) Register(ctx context.Context, email, password string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/register", CredentialsRequest{Email: email, Password: password}, nil)
	if err != nil {
		return "", err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.UserID, nil
}

// Login authenticates and opens a Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", CredentialsRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	refresh, ok := refreshCookie(resp)
	if !ok {
		return nil, ErrNoRefreshCookie
	}
	return &Session{client: c, accessToken: out.AccessToken, refreshToken: refresh}, nil
}

// Refresh exchanges refreshToken for a new access token and a new refresh
// token. The old refresh token is no longer usable afterwards.
func (c *SDKClient) Refresh(ctx context.Context, refreshToken string) (accessToken, newRefreshToken string, err error) {
	var cookies []*http.Cookie
	if refreshToken != "" {
		cookies = append(cookies, &http.Cookie{Name: RefreshCookieName, Value: refreshToken})
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/refresh", nil, nil, cookies...)
	if err != nil {
		return "", "", err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", "", err
	}
	refresh, ok := refreshCookie(resp)
	if !ok {
		return "", "", ErrNoRefreshCookie
	}
	return out.AccessToken, refresh, nil
}

// Logout drops refreshToken from the server's session set. It succeeds even
// when the token is unknown.
func (c *SDKClient) Logout(ctx context.Context, refreshToken string) error {
	var cookies []*http.Cookie
	if refreshToken != "" {
		cookies = append(cookies, &http.Cookie{Name: RefreshCookieName, Value: refreshToken})
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/logout", nil, nil, cookies...)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// NewSession wraps tokens obtained elsewhere.
func (c *SDKClient) NewSession(accessToken, refreshToken string) *Session {
	return &Session{client: c, accessToken: accessToken, refreshToken: refreshToken}
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
