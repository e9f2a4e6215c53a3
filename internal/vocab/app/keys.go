package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/vocab/pkg/cryptox"
	"github.com/aussiebroadwan/vocab/pkg/jwtx"
)

// InitTokenIssuer builds the token issuer from the configured secrets.
//
// A missing secret is replaced by a random one for this process only, so
// every token becomes invalid when the service restarts. Short secrets and
// a shared access/refresh secret are rejected.
func InitTokenIssuer(cfg Config, logger *slog.Logger) (*jwtx.TokenIssuer, error) {
	access, err := secretOrRandom(cfg.AccessSecret, "VOCAB_ACCESS_SECRET", logger)
	if err != nil {
		return nil, err
	}
	refresh, err := secretOrRandom(cfg.RefreshSecret, "VOCAB_REFRESH_SECRET", logger)
	if err != nil {
		return nil, err
	}

	issuer, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{
		AccessSecret:  access,
		RefreshSecret: refresh,
		Issuer:        cfg.Issuer,
		AccessTTL:     cfg.AccessTTL,
		RefreshTTL:    cfg.RefreshTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	logger.Info("token issuer ready",
		"issuer", cfg.Issuer,
		"access_ttl", issuer.AccessTTL().String(),
		"refresh_ttl", issuer.RefreshTTL().String(),
	)
	return issuer, nil
}

func secretOrRandom(secret, envName string, logger *slog.Logger) ([]byte, error) {
	if secret != "" {
		if len(secret) < jwtx.MinSecretSize {
			return nil, fmt.Errorf("%s: %w", envName, jwtx.ErrWeakSecret)
		}
		return []byte(secret), nil
	}

	logger.Warn("secret not configured, using a random per-process secret; tokens will not survive a restart", "env", envName)
	return cryptox.RandomBytes(cryptox.SecretSize)
}
