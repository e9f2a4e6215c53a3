package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/domain"
	"github.com/aussiebroadwan/vocab/internal/vocab/store"
	"github.com/aussiebroadwan/vocab/pkg/cryptox"
	"github.com/aussiebroadwan/vocab/pkg/idx"
	"github.com/aussiebroadwan/vocab/pkg/jwtx"
	"github.com/aussiebroadwan/vocab/pkg/slogx"
)

// EventRecorder receives session lifecycle events, e.g. for metrics.
type EventRecorder interface {
	AuthEvent(event, outcome string)
}

// SessionService owns registration, login, refresh rotation and logout. A
// user's sessions are the rows of their refresh token set; a refresh token
// is good for exactly one successful refresh.
type SessionService struct {
	Store  store.Store
	Tokens *jwtx.TokenIssuer
	Events EventRecorder // optional
	Now    func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) event(event, outcome string) {
	if s.Events != nil {
		s.Events.AuthEvent(event, outcome)
	}
}

// Register creates a user with role "user" and an empty session set.
func (s *SessionService) Register(ctx context.Context, email, password string) (string, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", invalid("email and password are required")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	u := domain.User{
		ID:           idx.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			s.event("register", "email_taken")
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	s.event("register", "success")
	slogx.FromContext(ctx).Info("user registered", "user_id", u.ID)
	return u.ID, nil
}

// Login checks the password and adds one refresh token to the user's set.
//
// An unknown email returns before any hashing happens, so response timing
// can distinguish it from a wrong password.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.TokenPair{}, invalid("email and password are required")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.event("login", "invalid_credentials")
			return domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.TokenPair{}, fmt.Errorf("get user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			s.event("login", "invalid_credentials")
			return domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.TokenPair{}, fmt.Errorf("verify password: %w", err)
	}

	pair, rt, err := s.issuePair(u)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.Store.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
		return domain.TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}

	s.event("login", "success")
	return pair, nil
}

// Refresh exchanges a refresh token for a new pair and retires the old one.
//
//  1. no token: ErrUnauthenticated
//  2. bad signature or expired: ErrForbidden
//  3. owner missing: ErrForbidden
//  4. token not in the owner's set: ErrForbidden
//  5. issue a new pair
//  6. add the new refresh token to the set
//  7. return the pair
//
// Steps 3 to 6 share a transaction and step 4 is a single conditional
// delete, so two concurrent refreshes with the same token cannot both win.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	log := slogx.FromContext(ctx)

	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		s.event("refresh", "unauthenticated")
		return domain.TokenPair{}, ErrUnauthenticated
	}

	claims, err := s.Tokens.VerifyRefresh(refreshToken)
	if err != nil {
		log.Warn("refresh token rejected", "err", err)
		s.event("refresh", "rejected")
		return domain.TokenPair{}, fmt.Errorf("%w: %v", ErrForbidden, err)
	}

	var pair domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: unknown user", ErrForbidden)
			}
			return fmt.Errorf("get user: %w", err)
		}

		err = tx.RefreshTokens().DeleteUserRefreshToken(ctx, u.ID, cryptox.FingerprintToken(refreshToken))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: token not in session set", ErrForbidden)
			}
			return fmt.Errorf("consume refresh token: %w", err)
		}

		var rt domain.RefreshToken
		pair, rt, err = s.issuePair(u)
		if err != nil {
			return err
		}
		if err := tx.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
			return fmt.Errorf("store refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			log.Warn("refresh token rejected", "err", err, "user_id", claims.Subject)
			s.event("refresh", "rejected")
		}
		return domain.TokenPair{}, err
	}

	s.event("refresh", "success")
	return pair, nil
}

// Logout removes the token from whichever set holds it. The token is not
// verified, and an absent or unknown token is not an error.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) error {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil
	}

	err := s.Store.RefreshTokens().DeleteRefreshTokenByHash(ctx, cryptox.FingerprintToken(refreshToken))
	switch {
	case err == nil:
		s.event("logout", "success")
		return nil
	case errors.Is(err, store.ErrNotFound):
		s.event("logout", "unknown_token")
		return nil
	default:
		return fmt.Errorf("delete refresh token: %w", err)
	}
}

// Sessions lists the user's currently stored refresh tokens.
func (s *SessionService) Sessions(ctx context.Context, userID string) ([]domain.RefreshToken, error) {
	return s.Store.RefreshTokens().ListUserRefreshTokens(ctx, userID)
}

func (s *SessionService) issuePair(u domain.User) (domain.TokenPair, domain.RefreshToken, error) {
	access, accessExp, err := s.Tokens.IssueAccessToken(u.ID, u.Role)
	if err != nil {
		return domain.TokenPair{}, domain.RefreshToken{}, err
	}
	refresh, refreshExp, err := s.Tokens.IssueRefreshToken(u.ID)
	if err != nil {
		return domain.TokenPair{}, domain.RefreshToken{}, err
	}

	rt := domain.RefreshToken{
		ID:        idx.NewString(),
		UserID:    u.ID,
		TokenHash: cryptox.FingerprintToken(refresh),
		ExpiresAt: refreshExp,
		CreatedAt: s.now(),
	}
	return domain.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, rt, nil
}
