package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Manojmaturi07/voteanalytics/auth"
	"github.com/Manojmaturi07/voteanalytics/cliparse"
	"github.com/Manojmaturi07/voteanalytics/middleware"
	"github.com/Manojmaturi07/voteanalytics/models"
	"github.com/Manojmaturi07/voteanalytics/store"
)

type AuthHandler struct {
	store   *store.Store
	cfg     cliparse.Config
	limiter *loginLimiter
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: store.New(db), cfg: cfg, limiter: newLoginLimiter()}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, models.RoleUser)
}

// AdminRegister handles POST /api/auth/admin/register
func (h *AuthHandler) AdminRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, models.RoleAdmin)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, role string) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.store.Register(r.Context(), req, role)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username, "role", user.Role)
	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{User: user})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	if h.limiter.blocked(req.Username) {
		middleware.ErrorResponse(w, http.StatusTooManyRequests, "Too many login attempts, try again later")
		return
	}

	user, err := h.store.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.limiter.fail(req.Username)
		storeError(w, err)
		return
	}
	h.limiter.reset(req.Username)

	token, err := auth.IssueToken([]byte(h.cfg.JWTSecret), user.ID, user.Username, user.Name, user.Role, h.cfg.SessionTTL)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "role", user.Role)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// Logout handles POST /api/auth/logout. Sessions are stateless tokens,
// so this only acknowledges; the client discards its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	slog.Info("user logged out", "user_id", middleware.IdentityFrom(r).UserID)
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Success: true})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r)

	user, err := h.store.GetUser(r.Context(), ident.UserID)
	if err != nil {
		storeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}
