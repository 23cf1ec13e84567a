package router

import (
	"database/sql"
	"net/http"

	"github.com/Manojmaturi07/voteanalytics/cliparse"
	"github.com/Manojmaturi07/voteanalytics/handlers"
	"github.com/Manojmaturi07/voteanalytics/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	analyticsHandler := handlers.NewAnalyticsHandler(db, cfg)
	bookmarkHandler := handlers.NewBookmarkHandler(db, cfg)
	commentHandler := handlers.NewCommentHandler(db, cfg)

	secret := []byte(cfg.JWTSecret)

	// Every route resolves the caller's identity, then logs the request.
	open := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithIdentity(secret, h))
	}
	user := func(h http.HandlerFunc) http.HandlerFunc {
		return open(middleware.RequireUser(h))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return open(middleware.RequireAdmin(h))
	}
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return open(middleware.RequireAuthenticated(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /api/auth/register", open(authHandler.Register))
	mux.HandleFunc("POST /api/auth/admin/register", open(authHandler.AdminRegister))
	mux.HandleFunc("POST /api/auth/login", open(authHandler.Login))
	mux.HandleFunc("POST /api/auth/logout", authed(authHandler.Logout))
	mux.HandleFunc("GET /api/auth/me", authed(authHandler.Me))

	// User management
	mux.HandleFunc("PUT /api/users/me", authed(userHandler.UpdateProfile))
	mux.HandleFunc("GET /api/users", admin(userHandler.List))
	mux.HandleFunc("POST /api/users/{id}/toggle", admin(userHandler.Toggle))
	mux.HandleFunc("DELETE /api/users/{id}", admin(userHandler.Delete))

	// Poll lifecycle
	mux.HandleFunc("GET /api/polls", open(pollHandler.List))
	mux.HandleFunc("POST /api/polls", admin(pollHandler.Create))
	mux.HandleFunc("GET /api/polls/{id}", open(pollHandler.Get))
	mux.HandleFunc("PUT /api/polls/{id}", admin(pollHandler.Update))
	mux.HandleFunc("DELETE /api/polls/{id}", admin(pollHandler.Delete))
	mux.HandleFunc("POST /api/polls/{id}/publish", admin(pollHandler.Publish))

	// Voting
	mux.HandleFunc("POST /api/polls/{id}/vote", user(votingHandler.Vote))
	mux.HandleFunc("GET /api/polls/{id}/has-voted", open(votingHandler.HasVoted))
	mux.HandleFunc("GET /api/polls/{id}/results", open(votingHandler.Results))
	mux.HandleFunc("GET /api/polls/{id}/votes", admin(votingHandler.VotingDetails))

	// Analytics
	mux.HandleFunc("GET /api/analytics/popular", open(analyticsHandler.Popular))
	mux.HandleFunc("GET /api/analytics/categories", open(analyticsHandler.Categories))
	mux.HandleFunc("GET /api/analytics/voters", admin(analyticsHandler.Voters))

	// Bookmarks
	mux.HandleFunc("GET /api/bookmarks", user(bookmarkHandler.List))
	mux.HandleFunc("PUT /api/bookmarks/{pollId}", user(bookmarkHandler.Add))
	mux.HandleFunc("DELETE /api/bookmarks/{pollId}", user(bookmarkHandler.Remove))

	// Comments
	mux.HandleFunc("GET /api/polls/{id}/comments", open(commentHandler.List))
	mux.HandleFunc("POST /api/polls/{id}/comments", user(commentHandler.Add))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("voteanalytics API v1"))
	})

	return mux
}
