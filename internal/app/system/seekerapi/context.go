package seekerapi

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey int

const (
	tokenKey ctxKey = iota
	requestIDKey
)

// AccessTokenCookie is the cookie the upstream login flow sets.
const AccessTokenCookie = "access_token"

// WithToken attaches the job seeker's bearer token to ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom returns the bearer token attached to ctx, or "".
func TokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}

// WithRequestID attaches a correlation id forwarded to the upstream.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the correlation id attached to ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// TokenFromRequest finds the caller's bearer token: the Authorization
// header first, then the access_token cookie.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(tok)
		}
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		v := strings.TrimSpace(c.Value)
		if scheme, tok, ok := strings.Cut(v, " "); ok && strings.EqualFold(scheme, "bearer") {
			v = strings.TrimSpace(tok)
		}
		return v
	}
	return ""
}
