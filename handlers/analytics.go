package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/Manojmaturi07/voteanalytics/analytics"
	"github.com/Manojmaturi07/voteanalytics/cliparse"
	"github.com/Manojmaturi07/voteanalytics/middleware"
	"github.com/Manojmaturi07/voteanalytics/models"
	"github.com/Manojmaturi07/voteanalytics/store"
)

type AnalyticsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAnalyticsHandler(db *sql.DB, cfg cliparse.Config) *AnalyticsHandler {
	return &AnalyticsHandler{store: store.New(db), cfg: cfg}
}

// Popular handles GET /api/analytics/popular?limit=N
func (h *AnalyticsHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	polls, err := h.store.ListPolls(r.Context(), middleware.IdentityFrom(r))
	if err != nil {
		storeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PopularPollsResponse{
		Polls: analytics.PopularPolls(polls, limit),
	})
}

// Categories handles GET /api/analytics/categories
func (h *AnalyticsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListPolls(r.Context(), middleware.IdentityFrom(r))
	if err != nil {
		storeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CategoryHistogramResponse{
		Categories: analytics.CategoryHistogram(polls),
	})
}

// Voters handles GET /api/analytics/voters (admin)
func (h *AnalyticsHandler) Voters(w http.ResponseWriter, r *http.Request) {
	votes, err := h.store.AllVotes(r.Context(), middleware.IdentityFrom(r))
	if err != nil {
		storeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotersResponse{
		Voters: analytics.VotesByUser(votes),
	})
}
