package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Manojmaturi07/voteanalytics/models"
	"github.com/Manojmaturi07/voteanalytics/testutil"
)

func TestUpdateProfileHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewUserHandler(conn, testutil.GetTestConfig())
	user := testutil.CreateTestUser(t, conn, "dave", models.RoleUser)

	t.Run("update own name", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/api/users/me",
			models.UpdateProfileRequest{Name: "David Jones"}, testutil.AuthHeader(t, user))
		w := httptest.NewRecorder()

		withIdentity(handler.UpdateProfile)(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var got models.User
		testutil.AssertJSON(t, w, &got)
		if got.Name != "David Jones" {
			t.Errorf("Expected updated name, got %s", got.Name)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/api/users/me",
			models.UpdateProfileRequest{Email: "not-an-email"}, testutil.AuthHeader(t, user))
		w := httptest.NewRecorder()

		withIdentity(handler.UpdateProfile)(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/api/users/me",
			models.UpdateProfileRequest{Name: "Nobody"}, nil)
		w := httptest.NewRecorder()

		withIdentity(handler.UpdateProfile)(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestAdminUserHandlers(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewUserHandler(conn, testutil.GetTestConfig())
	admin := testutil.CreateTestUser(t, conn, "root", models.RoleAdmin)
	user := testutil.CreateTestUser(t, conn, "frank", models.RoleUser)

	t.Run("list users", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/users", nil, testutil.AuthHeader(t, admin))
		w := httptest.NewRecorder()

		withIdentity(handler.List)(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var users []models.User
		testutil.AssertJSON(t, w, &users)
		if len(users) != 2 {
			t.Errorf("Expected 2 users, got %d", len(users))
		}
	})

	t.Run("list is admin-only", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/users", nil, testutil.AuthHeader(t, user))
		w := httptest.NewRecorder()

		withIdentity(handler.List)(w, req)

		testutil.AssertStatus(t, w, http.StatusForbidden)
	})

	t.Run("toggle", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/users/"+user.ID+"/toggle", nil, testutil.AuthHeader(t, admin))
		req.SetPathValue("id", user.ID)
		w := httptest.NewRecorder()

		withIdentity(handler.Toggle)(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var got models.User
		testutil.AssertJSON(t, w, &got)
		if got.IsActive {
			t.Error("Expected account to be disabled")
		}
	})

	t.Run("delete", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/api/users/"+user.ID, nil, testutil.AuthHeader(t, admin))
		req.SetPathValue("id", user.ID)
		w := httptest.NewRecorder()

		withIdentity(handler.Delete)(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		req = testutil.MakeRequest("DELETE", "/api/users/"+user.ID, nil, testutil.AuthHeader(t, admin))
		req.SetPathValue("id", user.ID)
		w = httptest.NewRecorder()

		withIdentity(handler.Delete)(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
