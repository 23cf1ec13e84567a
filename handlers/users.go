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

type UserHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: store.New(db), cfg: cfg}
}

// UpdateProfile handles PUT /api/users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.store.UpdateProfile(r.Context(), middleware.IdentityFrom(r), req)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("profile updated", "user_id", user.ID)
	middleware.JSONResponse(w, http.StatusOK, user)
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context(), middleware.IdentityFrom(r))
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, users)
}

// Toggle handles POST /api/users/{id}/toggle
func (h *UserHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	user, err := h.store.ToggleUserStatus(r.Context(), middleware.IdentityFrom(r), userID)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("user status toggled", "user_id", user.ID, "is_active", user.IsActive)
	middleware.JSONResponse(w, http.StatusOK, user)
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	if err := h.store.DeleteUser(r.Context(), middleware.IdentityFrom(r), userID); err != nil {
		storeError(w, err)
		return
	}

	slog.Info("user deleted", "user_id", userID)
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Success: true})
}
