package handlers

import (
	"net/http"
	"testing"

	"github.com/julianmr/helpdesk-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "julian", "julian123", "agent")

	w := env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "julian",
		"password": "julian123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	response := decodeJSON[dto.LoginResponse](t, w)
	require.NotEmpty(t, response.Token)
	require.Equal(t, "julian", response.User.Username)
	require.Equal(t, "julian Test", response.User.Name)
	require.Equal(t, "agent", response.User.Role)

	// The issued token must resolve back to the same user.
	subject, err := env.tokens.Validate(response.Token)
	require.NoError(t, err)
	require.Equal(t, "julian", subject)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "julian", "julian123", "agent")

	w := env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "julian",
		"password": "nope",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LoginUnknownUserIndistinguishable(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "julian", "julian123", "agent")

	wrongPassword := env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "julian",
		"password": "nope",
	})
	unknownUser := env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "ghost",
		"password": "nope",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String(),
		"unknown username and wrong password must be indistinguishable")
}

func TestAuthHandler_LoginLegacyHashFormats(t *testing.T) {
	env := setupTestEnv(t)

	// sha256("legacy123") and a plaintext development hash.
	env.db.Exec(
		"INSERT INTO users (username, full_name, password_hash, role, created_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)",
		"legacy", "Legacy User",
		"5880a09861771069857bb7b8c659dfe59e8f579bedd29deb98599b996e8463f3",
		"user",
	)
	env.db.Exec(
		"INSERT INTO users (username, full_name, password_hash, role, created_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)",
		"dev", "Dev User", "changeme", "user",
	)

	w := env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "legacy",
		"password": "legacy123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "dev",
		"password": "changeme",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "julian",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
