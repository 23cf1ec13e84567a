package cliparse

import (
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.SessionTTL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "./app.db")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3330 {
		t.Errorf("expected default port 3330, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected default TTL 1h, got %v", cfg.SessionTTL)
	}
}

func TestParseFlags_MissingRequired(t *testing.T) {
	// Blank out any ambient configuration so fallbacks cannot rescue the
	// cases below.
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "JWT_SECRET", "SESSION_TTL"} {
		t.Setenv(key, "")
	}

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no database URL",
			args: []string{"-jwt-secret", "s"},
		},
		{
			name: "no JWT secret",
			args: []string{"-d", "./app.db"},
		},
		{
			name: "bad database type",
			args: []string{"-d", "./app.db", "-jwt-secret", "s", "-t", "mysql"},
		},
		{
			name: "bad session TTL",
			args: []string{"-d", "./app.db", "-jwt-secret", "s", "-session-ttl", "soon"},
		},
		{
			name: "negative session TTL",
			args: []string{"-d", "./app.db", "-jwt-secret", "s", "-session-ttl", "-5m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
