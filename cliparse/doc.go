/*
Package cliparse handles server configuration from CLI flags and
environment variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

CLI flags take precedence over environment variables:

  - -p / PORT: server port (default: 3330)
  - -d / DATABASE_URL: database connection string (required)
  - -t / DATABASE_TYPE: "sqlite" or "postgres" (default: sqlite)
  - -jwt-secret / JWT_SECRET: session token signing secret (required)
  - -session-ttl / SESSION_TTL: token lifetime as a Go duration (default: 1h)

Secrets should come from the environment in production; the CLI flags
exist for local development convenience.
*/
package cliparse
