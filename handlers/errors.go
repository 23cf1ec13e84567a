package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Manojmaturi07/voteanalytics/middleware"
	"github.com/Manojmaturi07/voteanalytics/store"
)

// storeError maps domain errors onto HTTP statuses. Integrity states
// (already voted, locked, expired) are 409s: expected, recoverable, and
// user-facing. Anything unrecognized is logged and becomes a plain 500.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case store.IsValidation(err):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrInvalidCredentials),
		errors.Is(err, store.ErrNotAuthenticated):
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, store.ErrAccountDisabled),
		errors.Is(err, store.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, store.ErrPollNotFound),
		errors.Is(err, store.ErrUserNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrAlreadyVoted),
		errors.Is(err, store.ErrPollLocked),
		errors.Is(err, store.ErrPollExpired),
		errors.Is(err, store.ErrInvalidOption),
		errors.Is(err, store.ErrUsernameTaken),
		errors.Is(err, store.ErrEmailTaken):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
