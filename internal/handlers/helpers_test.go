package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/julianmr/helpdesk-api/internal/auth"
	"github.com/julianmr/helpdesk-api/internal/middleware"
	"github.com/julianmr/helpdesk-api/internal/models"
	"github.com/julianmr/helpdesk-api/internal/repository"
	"github.com/julianmr/helpdesk-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Ticket{},
		&models.Comment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	tokens := auth.NewTokenService(testSecret)
	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	authHandler := NewAuthHandler(services.NewAuthService(userRepo, tokens))
	ticketHandler := NewTicketHandler(services.NewTicketService(ticketRepo))
	userHandler := NewUserHandler(services.NewUserService(userRepo))

	r := gin.New()
	r.POST("/auth/login", authHandler.Login)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(tokens, userRepo))
	{
		authed.GET("/tickets", ticketHandler.ListTickets)
		authed.POST("/tickets", ticketHandler.CreateTicket)
		authed.PUT("/tickets/:id", ticketHandler.UpdateTicket)
		authed.DELETE("/tickets/:id", ticketHandler.DeleteTicket)
		authed.POST("/tickets/:id/comments", ticketHandler.AddComment)

		authed.GET("/users", middleware.RequireAdmin(), userHandler.ListUsers)
	}

	return testEnv{db: db, router: r, tokens: tokens}
}

// createUser inserts a user with a bcrypt-hashed password.
func (e testEnv) createUser(t *testing.T, username, password, role string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		FullName:     username + " Test",
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e testEnv) tokenFor(t *testing.T, username string) string {
	t.Helper()
	token, err := e.tokens.Issue(username)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional bearer token and JSON body.
func (e testEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
