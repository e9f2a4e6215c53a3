package domain

import "time"

// TokenPair is the result of a login or refresh. The refresh token travels
// to the client in a cookie, never in a JSON body.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// RefreshToken is one member of a user's set of valid refresh tokens. Only
// the fingerprint of the token is stored.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string // base64url SHA-256 of the signed token
	ExpiresAt time.Time
	CreatedAt time.Time
}
