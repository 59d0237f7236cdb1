package middleware

import (
	"context"
	"net/http"
	"strings"

	"wedgram-api/internal/auth"
	"wedgram-api/internal/config"
	"wedgram-api/pkg/logger"
)

type contextKey int

const claimsKey contextKey = iota

// AccountChecker lets the middleware reject tokens whose account was
// deactivated after the token was issued.
type AccountChecker interface {
	IsActive(ctx context.Context, id string) (bool, error)
}

type JWTAuth struct {
	secret   []byte
	accounts AccountChecker
	log      logger.Logger
}

func NewJWTAuth(cfg config.JWTConfig, accounts AccountChecker, log logger.Logger) *JWTAuth {
	return &JWTAuth{
		secret:   []byte(cfg.Secret),
		accounts: accounts,
		log:      log,
	}
}

func (a *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		claims, err := auth.ParseToken(token, a.secret)
		if err != nil {
			unauthorized(w)
			return
		}

		if a.accounts != nil {
			active, err := a.accounts.IsActive(r.Context(), claims.UserID)
			if err != nil {
				a.log.InternalError("auth: active check failed", err, "user_id", claims.UserID)
				writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
				return
			}
			if !active {
				unauthorized(w)
				return
			}
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards a route group behind the role claim. Must run after
// Middleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if claims.Role != role {
				writeError(w, http.StatusForbidden, "forbidden", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// WithClaims is used by handler tests to inject an authenticated identity.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
}
