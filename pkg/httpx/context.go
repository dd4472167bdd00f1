package httpx

import "context"

type ctxKey string

const (
	// CtxKeyAccountID carries the authenticated account id, set by
	// AuthnMiddleware from the verified token's subject claim.
	CtxKeyAccountID ctxKey = "account_id"

	// CtxKeyClaims carries the full verified jwtx.Claims.
	CtxKeyClaims ctxKey = "claims"
)

// AccountIDFromCtx returns the authenticated account id, or "" when the
// request did not pass through AuthnMiddleware.
func AccountIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAccountID).(string); ok {
		return v
	}
	return ""
}
