package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Manojmaturi07/voteanalytics/auth"
	"github.com/Manojmaturi07/voteanalytics/middleware"
	"github.com/Manojmaturi07/voteanalytics/models"
	"github.com/Manojmaturi07/voteanalytics/testutil"
)

// withIdentity wires the token-resolving middleware around a handler the
// way the router does.
func withIdentity(h http.HandlerFunc) http.HandlerFunc {
	return middleware.WithIdentity([]byte(testutil.TestJWTSecret), h)
}

func TestRegister(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name: "valid registration",
			body: models.RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "password123",
				Name:     "Alice Smith",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate username",
			body: models.RegisterRequest{
				Username: "alice",
				Email:    "alice2@example.com",
				Password: "password123",
				Name:     "Alice Clone",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "invalid email",
			body: models.RegisterRequest{
				Username: "bob",
				Email:    "not-an-email",
				Password: "password123",
				Name:     "Bob Jones",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "short password",
			body: models.RegisterRequest{
				Username: "bob",
				Email:    "bob@example.com",
				Password: "short",
				Name:     "Bob Jones",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/auth/register", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.RegisterResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.User.ID == "" {
					t.Error("Expected a user ID in the response")
				}
				if resp.User.Role != models.RoleUser {
					t.Errorf("Expected role user, got %s", resp.User.Role)
				}
			}
		})
	}
}

func TestAdminRegister(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewAuthHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/auth/admin/register", models.RegisterRequest{
		Username: "root",
		Email:    "root@example.com",
		Password: "password123",
		Name:     "Root Admin",
	}, nil)
	w := httptest.NewRecorder()

	handler.AdminRegister(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RegisterResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.User.Role != models.RoleAdmin {
		t.Errorf("Expected role admin, got %s", resp.User.Role)
	}
}

func TestLogin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)
	user := testutil.CreateTestUser(t, conn, "carol", models.RoleUser)

	t.Run("valid credentials", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
			Username: "carol",
			Password: testutil.TestPassword,
		}, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.LoginResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Token == "" {
			t.Fatal("Expected a session token")
		}
		if resp.User.ID != user.ID {
			t.Errorf("Expected user %s, got %s", user.ID, resp.User.ID)
		}

		// The token must parse with the configured secret
		claims, err := auth.ParseToken([]byte(cfg.JWTSecret), resp.Token)
		if err != nil {
			t.Fatalf("Token did not parse: %v", err)
		}
		if claims.Subject != user.ID {
			t.Errorf("Expected subject %s, got %s", user.ID, claims.Subject)
		}
		if claims.Role != models.RoleUser {
			t.Errorf("Expected role user, got %s", claims.Role)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
			Username: "carol",
			Password: "wrongpassword",
		}, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("unknown user gives the same 401", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
			Username: "nobody",
			Password: testutil.TestPassword,
		}, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("missing fields", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{Username: "carol"}, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("disabled account", func(t *testing.T) {
		disabled := testutil.CreateTestUser(t, conn, "gone", models.RoleUser)
		if _, err := conn.Exec(`UPDATE users SET is_active = FALSE WHERE id = $1`, disabled.ID); err != nil {
			t.Fatal(err)
		}

		req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
			Username: "gone",
			Password: testutil.TestPassword,
		}, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)

		testutil.AssertStatus(t, w, http.StatusForbidden)
	})
}

func TestLogin_RateLimited(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewAuthHandler(conn, testutil.GetTestConfig())
	testutil.CreateTestUser(t, conn, "target", models.RoleUser)

	// Burn through the attempt budget with bad passwords
	for i := 0; i < maxLoginAttempts; i++ {
		req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
			Username: "target",
			Password: "wrongpassword",
		}, nil)
		w := httptest.NewRecorder()
		handler.Login(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	}

	// Even the correct password is now refused
	req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
		Username: "target",
		Password: testutil.TestPassword,
	}, nil)
	w := httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusTooManyRequests)

	// The counter is per-username, case-insensitively
	req = testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
		Username: "TARGET",
		Password: testutil.TestPassword,
	}, nil)
	w = httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusTooManyRequests)

	// Other usernames are unaffected
	testutil.CreateTestUser(t, conn, "bystander", models.RoleUser)
	req = testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
		Username: "bystander",
		Password: testutil.TestPassword,
	}, nil)
	w = httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestLogin_SuccessResetsLimiter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewAuthHandler(conn, testutil.GetTestConfig())
	testutil.CreateTestUser(t, conn, "flaky", models.RoleUser)

	// A few failures, then a success
	for i := 0; i < maxLoginAttempts-1; i++ {
		req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
			Username: "flaky",
			Password: "wrongpassword",
		}, nil)
		handler.Login(httptest.NewRecorder(), req)
	}

	req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
		Username: "flaky",
		Password: testutil.TestPassword,
	}, nil)
	w := httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// The budget is fresh again
	for i := 0; i < maxLoginAttempts-1; i++ {
		req := testutil.MakeRequest("POST", "/api/auth/login", models.LoginRequest{
			Username: "flaky",
			Password: "wrongpassword",
		}, nil)
		w := httptest.NewRecorder()
		handler.Login(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	}
}

func TestMe(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewAuthHandler(conn, testutil.GetTestConfig())
	user := testutil.CreateTestUser(t, conn, "whoami", models.RoleUser)

	req := testutil.MakeRequest("GET", "/api/auth/me", nil, testutil.AuthHeader(t, user))
	w := httptest.NewRecorder()

	withIdentity(handler.Me)(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.User
	testutil.AssertJSON(t, w, &got)
	if got.ID != user.ID {
		t.Errorf("Expected user %s, got %s", user.ID, got.ID)
	}
	if got.PasswordHash != "" {
		t.Error("Password hash must never appear in responses")
	}
}

func TestLogout(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewAuthHandler(conn, testutil.GetTestConfig())
	user := testutil.CreateTestUser(t, conn, "leaver", models.RoleUser)

	req := testutil.MakeRequest("POST", "/api/auth/logout", nil, testutil.AuthHeader(t, user))
	w := httptest.NewRecorder()

	withIdentity(handler.Logout)(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("Expected success acknowledgement")
	}
}
