package httpapp

import (
	"context"
	"net/http"

	"github.com/adlt1785/musicjournal-backend/internal/domain"
)

type contextKey string

const sessionContextKey contextKey = "session"

// RequireSession gates the /user routes: requests without a valid session
// cookie fail with 401 before reaching a handler. The resolved session is
// stored on the request context.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.Sessions.Authenticate(r.Context(), sessionToken(r))
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		if sess == nil {
			h.respondError(w, r, domain.ErrNotAuthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromContext returns the session stored by RequireSession.
func sessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return sess
}
