package httpx

import (
	"context"

	"github.com/aussiebroadwan/vocab/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyIdentity ctxKey = "identity"
	CtxKeyClaims   ctxKey = "claims"
)

// Identity is the decoded caller of a guarded request.
type Identity struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func WithIdentity(ctx context.Context, c *jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyIdentity, Identity{UserID: c.Subject, Role: c.Role})
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// IdentityFromContext returns the caller attached by AuthnMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(CtxKeyIdentity).(Identity)
	return id, ok && id.UserID != ""
}

func ClaimsFromContext(ctx context.Context) (*jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(*jwtx.Claims)
	return c, ok
}
