package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/haunan-see/bookmarks-api/internal/core/domain"
	"github.com/haunan-see/bookmarks-api/internal/core/ports"
)

type BookmarkHandler struct {
	service ports.BookmarkService
}

func NewBookmarkHandler(service ports.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		service: service,
	}
}

type createBookmarkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	bookmarks, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("bookmark list failed", "error", err)
		http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, bookmarks)
}

func (h *BookmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid bookmark id", http.StatusBadRequest)
		return
	}

	bookmark, err := h.service.Get(r.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookmarkNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		slog.Error("bookmark get failed", "error", err)
		http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, bookmark)
}

func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	var req createBookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.CreateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}

	bookmark, err := h.service.Create(r.Context(), user.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("bookmark create failed", "error", err)
		http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, bookmark)
}

func (h *BookmarkHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid bookmark id", http.StatusBadRequest)
		return
	}

	var req editBookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.EditBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}

	bookmark, err := h.service.Edit(r.Context(), user.ID, id, input)
	if err != nil {
		h.writeMutationError(w, err, "bookmark edit failed")
		return
	}

	writeJSON(w, http.StatusOK, bookmark)
}

func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid bookmark id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, id); err != nil {
		h.writeMutationError(w, err, "bookmark delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeMutationError maps write-path errors: a foreign bookmark is forbidden,
// an absent one is not found.
func (h *BookmarkHandler) writeMutationError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, domain.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, domain.ErrForbidden) {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	if errors.Is(err, domain.ErrBookmarkNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	slog.Error(logMsg, "error", err)
	http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
}
