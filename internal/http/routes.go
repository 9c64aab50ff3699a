package httpapp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adlt1785/musicjournal-backend/internal/http/dto"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	user, err := h.Creds.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	sess, err := h.Sessions.Start(r.Context(), user.ID, user.Username)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.setSessionCookie(w, sess)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    dto.NewUserResponse(user),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	user, err := h.Creds.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	sess, err := h.Sessions.Start(r.Context(), user.ID, user.Username)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.setSessionCookie(w, sess)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    dto.NewUserResponse(user),
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Authenticate(r.Context(), sessionToken(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if sess == nil {
		h.respondJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	user, err := h.DB.GetUserByID(r.Context(), sess.UserID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if user == nil {
		h.respondJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	resp := dto.NewUserResponse(user)
	resp.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"user": resp})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(r.Context(), sessionToken(r)); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.clearSessionCookie(w)
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) SaveAlbum(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req dto.SaveAlbumRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	album, err := h.Catalog.ResolveOrCreate(r.Context(), req.ExternalID, req.Title, req.Artist, req.CoverURL)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.Journal.AttachAlbum(r.Context(), sess.UserID, album.ID); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"albumId": album.ID,
	})
}

func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	albums, err := h.Journal.ListAlbums(r.Context(), sess.UserID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, albums)
}

func (h *Handler) SaveAlbumNotes(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req dto.AlbumNotesRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	album, err := h.Catalog.ResolveOrCreate(r.Context(), req.AlbumExternalID, req.Title(), req.Artist(), req.CoverURL)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.Journal.AttachAlbum(r.Context(), sess.UserID, album.ID); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.Journal.SetNotes(r.Context(), sess.UserID, album.ID, req.Notes); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) SaveRating(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req dto.RatingRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	album, err := h.Catalog.ResolveOrCreate(r.Context(), req.AlbumExternalID, req.Title(), req.Artist(), req.CoverURL)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.Journal.AttachAlbum(r.Context(), sess.UserID, album.ID); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.Journal.UpsertRating(r.Context(), sess.UserID, album.ID, req.TrackID, req.TrackName, req.RatingValue()); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) GetRatings(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	externalID := chi.URLParam(r, "externalId")

	ratings, err := h.Journal.GetRatings(r.Context(), sess.UserID, externalID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, ratings)
}
