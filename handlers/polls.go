package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Manojmaturi07/voteanalytics/cliparse"
	"github.com/Manojmaturi07/voteanalytics/middleware"
	"github.com/Manojmaturi07/voteanalytics/models"
	"github.com/Manojmaturi07/voteanalytics/notify"
	"github.com/Manojmaturi07/voteanalytics/store"
)

type PollHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	notifier notify.Notifier
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: store.New(db), cfg: cfg, notifier: notify.LogNotifier{}}
}

// Create handles POST /api/polls
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.store.CreatePoll(r.Context(), middleware.IdentityFrom(r), req)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "question", poll.Question)
	notify.Dispatch(h.notifier, *poll)

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// List handles GET /api/polls
func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListPolls(r.Context(), middleware.IdentityFrom(r))
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, polls)
}

// Get handles GET /api/polls/{id}
func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	poll, err := h.store.GetPoll(r.Context(), pollID)
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Update handles PUT /api/polls/{id}
func (h *PollHandler) Update(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.store.UpdatePoll(r.Context(), middleware.IdentityFrom(r), pollID, req)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("poll updated", "poll_id", poll.ID)
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Delete handles DELETE /api/polls/{id}
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	if err := h.store.DeletePoll(r.Context(), middleware.IdentityFrom(r), pollID); err != nil {
		storeError(w, err)
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Success: true})
}

// Publish handles POST /api/polls/{id}/publish
func (h *PollHandler) Publish(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.PublishPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.store.SetPublished(r.Context(), middleware.IdentityFrom(r), pollID, req.Published)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("poll publish state changed", "poll_id", poll.ID, "is_published", poll.IsPublished)
	middleware.JSONResponse(w, http.StatusOK, poll)
}
