package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/julianmr/helpdesk-api/internal/auth"
	"github.com/julianmr/helpdesk-api/internal/models"
	"github.com/julianmr/helpdesk-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthMiddlewareTest(t *testing.T) (*gin.Engine, *gorm.DB, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	tokens := auth.NewTokenService("test-secret")
	users := repository.NewUserRepository(db)

	r := gin.New()
	r.GET("/whoami", RequireAuth(tokens, users), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	r.GET("/admin-only", RequireAuth(tokens, users), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r, db, tokens
}

func doAuthRequest(r *gin.Engine, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_HeaderForms(t *testing.T) {
	r, db, tokens := setupAuthMiddlewareTest(t)
	require.NoError(t, db.Create(&models.User{Username: "julian", PasswordHash: "x", Role: "user"}).Error)

	token, err := tokens.Issue("julian")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"raw token", token, http.StatusOK},
		{"bearer prefix", "Bearer " + token, http.StatusOK},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"wrongly signed", "Bearer " + mustIssue(t, "other-secret", "julian"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuthRequest(r, "/whoami", tt.header)
			require.Equal(t, tt.status, w.Code)
		})
	}
}

func mustIssue(t *testing.T, secret, username string) string {
	t.Helper()
	token, err := auth.NewTokenService(secret).Issue(username)
	require.NoError(t, err)
	return token
}

func TestRequireAuth_UnknownSubject(t *testing.T) {
	r, _, tokens := setupAuthMiddlewareTest(t)

	token, err := tokens.Issue("ghost")
	require.NoError(t, err)

	w := doAuthRequest(r, "/whoami", "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r, db, tokens := setupAuthMiddlewareTest(t)
	require.NoError(t, db.Create(&models.User{Username: "admin", PasswordHash: "x", Role: "ADMIN"}).Error)
	require.NoError(t, db.Create(&models.User{Username: "carla", PasswordHash: "x", Role: "user"}).Error)

	adminToken, err := tokens.Issue("admin")
	require.NoError(t, err)
	userToken, err := tokens.Issue("carla")
	require.NoError(t, err)

	w := doAuthRequest(r, "/admin-only", "Bearer "+adminToken)
	require.Equal(t, http.StatusOK, w.Code, "role check is case-insensitive")

	w = doAuthRequest(r, "/admin-only", "Bearer "+userToken)
	require.Equal(t, http.StatusForbidden, w.Code)
}
