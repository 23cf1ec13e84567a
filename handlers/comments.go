package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Manojmaturi07/voteanalytics/cliparse"
	"github.com/Manojmaturi07/voteanalytics/middleware"
	"github.com/Manojmaturi07/voteanalytics/models"
	"github.com/Manojmaturi07/voteanalytics/store"
)

type CommentHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewCommentHandler(db *sql.DB, cfg cliparse.Config) *CommentHandler {
	return &CommentHandler{store: store.New(db), cfg: cfg}
}

// List handles GET /api/polls/{id}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	comments, err := h.store.ListComments(r.Context(), pollID)
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, comments)
}

// Add handles POST /api/polls/{id}/comments
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.AddCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	comment, err := h.store.AddComment(r.Context(), middleware.IdentityFrom(r), pollID, req.Body)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("comment added", "poll_id", pollID, "comment_id", comment.ID)
	middleware.JSONResponse(w, http.StatusCreated, comment)
}
