/*
Package middleware provides HTTP plumbing shared by all handlers.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ParseJSONBody(r, &req)

# Identity Resolution

WithIdentity parses an optional Bearer token and puts the resulting
models.Identity into the request context. Handlers read it back with
IdentityFrom(r); anonymous callers get the zero Identity. A malformed
or expired token is a 401, never a silent downgrade to anonymous.

RequireUser, RequireAdmin, and RequireAuthenticated gate handlers by
role and fail closed.

# Logging and CORS

WithLogging logs request start/completion with method, path, and
duration via log/slog. CORS answers preflight requests and mirrors the
Origin header.
*/
package middleware
