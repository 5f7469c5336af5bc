package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukozhakova/Django2021-Endterm/internal/auth"
	"github.com/ukozhakova/Django2021-Endterm/internal/handlers"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
	"github.com/ukozhakova/Django2021-Endterm/internal/repos"
)

func TestSignup(t *testing.T) {
	router, testDB := setupTestRouter(t)

	t.Run("Creates the user with exactly one profile", func(t *testing.T) {
		reqBody := handlers.SignupRequest{
			Email:     "aliya@example.com",
			Username:  "aliya",
			Password:  "s3cret-pass",
			FirstName: "Aliya",
			LastName:  "K",
		}
		recorder := performJSON(router, http.MethodPost, "/signup", reqBody, "")

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "s3cret-pass")
		assert.NotContains(t, recorder.Body.String(), "password")

		var publicUser models.PublicUser
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &publicUser))
		assert.Equal(t, "aliya", publicUser.Username)

		var profiles int64
		testDB.Model(&models.Profile{}).Where("user_id = ?", publicUser.ID).Count(&profiles)
		assert.Equal(t, int64(1), profiles)

		// subsequent saves must not provision another profile
		user, err := repos.UserByID(publicUser.ID)
		require.NoError(t, err)
		user.FirstName = "Aliyah"
		require.NoError(t, repos.SaveUser(&user))

		testDB.Model(&models.Profile{}).Where("user_id = ?", publicUser.ID).Count(&profiles)
		assert.Equal(t, int64(1), profiles)
	})

	t.Run("Rejects missing required fields with a field list", func(t *testing.T) {
		reqBody := handlers.SignupRequest{Username: "nobody"}
		recorder := performJSON(router, http.MethodPost, "/signup", reqBody, "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Contains(t, response.Errors, "email")
		assert.Contains(t, response.Errors, "password")
		assert.Contains(t, response.Errors, "first_name")
		assert.Contains(t, response.Errors, "last_name")
		assert.NotContains(t, response.Errors, "username")
	})
}

func TestLoginLogout(t *testing.T) {
	router, _ := setupTestRouter(t)

	createTestUser(t, "kana", false)

	login := func(t *testing.T) auth.TokenPair {
		reqBody := handlers.LoginRequest{Username: "kana", Password: "secret123"}
		recorder := performJSON(router, http.MethodPost, "/login", reqBody, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var pair auth.TokenPair
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &pair))
		require.NotEmpty(t, pair.Access)
		require.NotEmpty(t, pair.Refresh)
		return pair
	}

	t.Run("Login rejects bad credentials", func(t *testing.T) {
		reqBody := handlers.LoginRequest{Username: "kana", Password: "wrong"}
		recorder := performJSON(router, http.MethodPost, "/login", reqBody, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Logout succeeds once and fails on reuse", func(t *testing.T) {
		pair := login(t)

		reqBody := handlers.RefreshRequest{Refresh: pair.Refresh}
		recorder := performJSON(router, http.MethodPost, "/logout", reqBody, pair.Access)
		assert.Equal(t, http.StatusResetContent, recorder.Code)

		recorder = performJSON(router, http.MethodPost, "/logout", reqBody, pair.Access)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Token is invalid or expired")
	})

	t.Run("Logout rejects garbage tokens", func(t *testing.T) {
		pair := login(t)

		reqBody := handlers.RefreshRequest{Refresh: "not-a-token"}
		recorder := performJSON(router, http.MethodPost, "/logout", reqBody, pair.Access)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Refresh rotates the pair and burns the old token", func(t *testing.T) {
		pair := login(t)

		reqBody := handlers.RefreshRequest{Refresh: pair.Refresh}
		recorder := performJSON(router, http.MethodPost, "/login/refresh", reqBody, "")
		assert.Equal(t, http.StatusOK, recorder.Code)

		var rotated auth.TokenPair
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rotated))
		assert.NotEqual(t, pair.Refresh, rotated.Refresh)

		// old refresh token is blacklisted now
		recorder = performJSON(router, http.MethodPost, "/login/refresh", reqBody, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Access token does not pass as a refresh token", func(t *testing.T) {
		pair := login(t)

		reqBody := handlers.RefreshRequest{Refresh: pair.Access}
		recorder := performJSON(router, http.MethodPost, "/login/refresh", reqBody, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestUserEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	staff := createTestUser(t, "admin", true)
	regular := createTestUser(t, "regular", false)
	staffToken := accessTokenFor(t, staff.ID)
	regularToken := accessTokenFor(t, regular.ID)

	t.Run("User list is staff-only", func(t *testing.T) {
		recorder := performJSON(router, http.MethodGet, "/users", nil, regularToken)
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		recorder = performJSON(router, http.MethodGet, "/users", nil, staffToken)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var users []models.PublicUser
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &users))
		assert.Len(t, users, 2)
	})

	t.Run("Me returns the current principal", func(t *testing.T) {
		recorder := performJSON(router, http.MethodGet, "/users/me", nil, regularToken)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var me models.PublicUser
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &me))
		assert.Equal(t, "regular", me.Username)
	})

	t.Run("Anonymous principal is not an error on public endpoints", func(t *testing.T) {
		req := performJSON(router, http.MethodGet, "/categories", nil, "")
		assert.Equal(t, http.StatusOK, req.Code)

		// an expired or garbage bearer is treated as anonymous, not rejected
		recorder := performJSON(router, http.MethodGet, "/categories", nil, "garbage-token")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
