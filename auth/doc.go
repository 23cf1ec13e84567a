/*
Package auth provides password hashing and session token utilities.

# Passwords

Passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword(plaintext)
	ok := auth.CheckPassword(hash, plaintext)

Hashing and comparison run only on the server. Plaintext passwords are
never stored and hashes are never serialized into responses.

# Session Tokens

Sessions are stateless HS256 JWTs:

	token, err := auth.IssueToken(secret, userID, username, name, role, ttl)
	claims, err := auth.ParseToken(secret, token)

A token carries exactly one role context ("user" or "admin") plus the
user ID in the subject claim. Logging in again issues a fresh token and
implicitly discards the old context on the client. Logout is a
client-side token discard; the server keeps no session state.

ParseToken returns ErrTokenExpired for expired tokens and ErrInvalidToken
for anything else that fails validation.
*/
package auth
