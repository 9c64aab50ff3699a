package httpapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adlt1785/musicjournal-backend/internal/auth"
	"github.com/adlt1785/musicjournal-backend/internal/constants"
	"github.com/adlt1785/musicjournal-backend/internal/domain"
	"github.com/adlt1785/musicjournal-backend/internal/logger"
	"github.com/adlt1785/musicjournal-backend/internal/services"
	"github.com/adlt1785/musicjournal-backend/internal/session"
	"github.com/adlt1785/musicjournal-backend/internal/store"
)

type Handler struct {
	DB       *store.DB
	Creds    *auth.CredentialStore
	Sessions *session.Manager
	Catalog  *services.CatalogResolver
	Journal  *services.JournalService
	Logger   *logger.Logger
}

func NewHandler(db *store.DB, creds *auth.CredentialStore, sessions *session.Manager, catalog *services.CatalogResolver, journal *services.JournalService, log *logger.Logger) *Handler {
	return &Handler{
		DB:       db,
		Creds:    creds,
		Sessions: sessions,
		Catalog:  catalog,
		Journal:  journal,
		Logger:   log.WithComponent("http"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Healthz)

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/me", h.Me)
	r.Post("/logout", h.Logout)

	r.Route("/user", func(r chi.Router) {
		r.Use(h.RequireSession)
		r.Post("/albums", h.SaveAlbum)
		r.Get("/albums", h.ListAlbums)
		r.Post("/album-notes", h.SaveAlbumNotes)
		r.Post("/ratings", h.SaveRating)
		r.Get("/ratings/{externalId}", h.GetRatings)
	})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("failed to encode response", "error", err)
	}
}

// respondError maps a typed failure onto its status code. Anything not
// in the taxonomy is logged and reported as a generic internal error so
// no store detail leaks to clients.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var message string

	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrNotAuthenticated):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	default:
		h.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		status = http.StatusInternalServerError
		message = "internal server error"
	}

	h.respondJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// setSessionCookie attaches the session token as an HTTP-only
// SameSite=Lax cookie. The cookie attributes are part of the API
// contract.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(constants.SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken extracts the raw token from the request cookie, or ""
// when the cookie is absent.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
