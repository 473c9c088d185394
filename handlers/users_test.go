package handlers

import (
	"net/http"
	"testing"

	"eventhub-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileSelfOrAdminGate(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.createUser(t, "Alice", "alice@example.com", "secret123", models.RoleUser)
	_, bobToken := env.createUser(t, "Bob", "bob@example.com", "secret123", models.RoleUser)
	_, adminToken := env.createUser(t, "Admin", "admin@example.com", "secret123", models.RoleAdmin)

	// Alice reads her own profile.
	w := env.do(t, http.MethodGet, "/api/users/1", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	decodeJSON(t, w, &user)
	assert.Equal(t, "Alice", user.Name)

	// Bob may not read Alice's profile; an admin may.
	w = env.do(t, http.MethodGet, "/api/users/1", bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, http.MethodGet, "/api/users/1", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "Alice", "alice@example.com", "secret123", models.RoleUser)

	w := env.do(t, http.MethodPut, "/api/users/1", token, UpdateProfileRequest{
		Name:   "Alice B",
		Bio:    "organizer of things",
		Avatar: "alice.png",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var user models.User
	decodeJSON(t, w, &user)
	assert.Equal(t, "Alice B", user.Name)
	assert.Equal(t, "organizer of things", user.Bio)
	assert.Equal(t, "alice.png", user.Avatar)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "Alice", "alice@example.com", "oldpass123", models.RoleUser)

	// Wrong current password is rejected.
	w := env.do(t, http.MethodPut, "/api/users/1/password", token, ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newpass123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/api/users/1/password", token, ChangePasswordRequest{
		CurrentPassword: "oldpass123",
		NewPassword:     "newpass123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works, the new one does.
	w = env.do(t, http.MethodPost, "/login", "", LoginRequest{Email: "alice@example.com", Password: "oldpass123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = env.do(t, http.MethodPost, "/login", "", LoginRequest{Email: "alice@example.com", Password: "newpass123"})
	assert.Equal(t, http.StatusOK, w.Code)
}
