package middleware

import (
	"net/http"
	"strings"

	"github.com/Toyowa5296/poliform/internal/auth"
	"github.com/Toyowa5296/poliform/internal/common"
)

// resolveClaims turns the Authorization header into claims, or nil when the
// request is anonymous or the token/session is dead.
func resolveClaims(r *http.Request, tokens *auth.TokenService, sessions *common.SessionService) auth.UserClaims {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}

	sessionID, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil
	}

	session, err := sessions.GetSession(r.Context(), sessionID)
	if err != nil {
		return nil
	}

	// Sliding expiry: active sessions stay alive past the initial TTL.
	_ = sessions.RefreshSession(r.Context(), sessionID)

	return &auth.SessionClaims{
		UserUUID:  session.UserID,
		EmailVal:  session.Email,
		NameVal:   session.Name,
		SessionID: session.SessionID,
	}
}

// AuthMiddleware rejects requests without a live session. Claims are resolved
// exactly once here; downstream handlers read them from the request context.
func AuthMiddleware(tokens *auth.TokenService, sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := resolveClaims(r, tokens, sessions)
			if claims == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware attaches claims when a valid session is presented
// but lets anonymous requests through. Public list/detail endpoints use this
// to include the caller's supported/membership flags when available.
func OptionalAuthMiddleware(tokens *auth.TokenService, sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims := resolveClaims(r, tokens, sessions); claims != nil {
				r = r.WithContext(auth.SetUserClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}
