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

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: store.New(db), cfg: cfg}
}

// Vote handles POST /api/polls/{id}/vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ident := middleware.IdentityFrom(r)
	poll, err := h.store.SubmitVote(r.Context(), ident, pollID, req.OptionID)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "user_id", ident.UserID, "option_id", req.OptionID)
	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// HasVoted handles GET /api/polls/{id}/has-voted
// Anonymous callers get has_voted=false rather than an error.
func (h *VotingHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	voted, err := h.store.HasVoted(r.Context(), middleware.IdentityFrom(r), pollID)
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{HasVoted: voted})
}

// Results handles GET /api/polls/{id}/results
// Returns the poll with tallies and the full ledger.
func (h *VotingHandler) Results(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	poll, err := h.store.GetPollWithVotes(r.Context(), pollID)
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// VotingDetails handles GET /api/polls/{id}/votes (admin)
func (h *VotingHandler) VotingDetails(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	votes, err := h.store.PollVotes(r.Context(), middleware.IdentityFrom(r), pollID)
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, votes)
}
