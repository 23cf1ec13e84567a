package handlers

import (
	"database/sql"
	"net/http"

	"github.com/Manojmaturi07/voteanalytics/cliparse"
	"github.com/Manojmaturi07/voteanalytics/middleware"
	"github.com/Manojmaturi07/voteanalytics/models"
	"github.com/Manojmaturi07/voteanalytics/store"
)

type BookmarkHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewBookmarkHandler(db *sql.DB, cfg cliparse.Config) *BookmarkHandler {
	return &BookmarkHandler{store: store.New(db), cfg: cfg}
}

// List handles GET /api/bookmarks
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListBookmarks(r.Context(), middleware.IdentityFrom(r))
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, polls)
}

// Add handles PUT /api/bookmarks/{pollId}
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("pollId")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	if err := h.store.AddBookmark(r.Context(), middleware.IdentityFrom(r), pollID); err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Success: true})
}

// Remove handles DELETE /api/bookmarks/{pollId}
func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("pollId")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	if err := h.store.RemoveBookmark(r.Context(), middleware.IdentityFrom(r), pollID); err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Success: true})
}
