package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhub-backend/middleware"
	"eventhub-backend/models"
	"eventhub-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	accounts *store.AccountDirectory
}

// newTestEnv builds a router with the full route table over a fresh
// in-memory database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Event{}, &models.Rsvp{}, &models.Comment{}))

	accounts := store.NewAccountDirectory(db)
	attendance := store.NewAttendanceStore(db)
	catalog := store.NewEventCatalog(db, attendance)
	comments := store.NewCommentStore(db)

	authHandler := NewAuthHandler(accounts, testSecret)
	eventHandler := NewEventHandler(catalog, attendance)
	rsvpHandler := NewRsvpHandler(attendance)
	commentHandler := NewCommentHandler(comments)
	userHandler := NewUserHandler(accounts)
	adminHandler := NewAdminHandler(accounts, catalog)

	r := gin.New()
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/events", eventHandler.List)
	r.GET("/events/:id", eventHandler.Get)
	r.GET("/events/:id/comments", commentHandler.List)

	authorized := r.Group("/api")
	authorized.Use(middleware.AuthMiddleware(testSecret))
	{
		authorized.POST("/events", eventHandler.Create)
		authorized.PUT("/events/:id", eventHandler.Update)
		authorized.DELETE("/events/:id", eventHandler.Delete)
		authorized.GET("/events/:id/attendees", eventHandler.Attendees)
		authorized.POST("/events/:id/rsvp", rsvpHandler.Join)
		authorized.DELETE("/events/:id/rsvp", rsvpHandler.Cancel)
		authorized.POST("/events/:id/comments", commentHandler.Add)
		authorized.GET("/users/:id", userHandler.Get)
		authorized.PUT("/users/:id", userHandler.Update)
		authorized.PUT("/users/:id/password", userHandler.ChangePassword)

		admin := authorized.Group("/admin")
		admin.Use(middleware.AdminMiddleware(accounts))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id/block", adminHandler.ToggleBlockUser)
			admin.GET("/events", adminHandler.ListEvents)
			admin.PUT("/events/:id/approve", adminHandler.ApproveEvent)
			admin.PUT("/events/:id/reject", adminHandler.RejectEvent)
			admin.DELETE("/events/:id", adminHandler.DeleteEvent)
			admin.GET("/stats", adminHandler.Stats)
		}
	}

	return &testEnv{router: r, db: db, accounts: accounts}
}

// do performs a request, JSON-encoding the body when present.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// createUser inserts a user directly and returns a signed token for them.
func (e *testEnv) createUser(t *testing.T, name, email, password, role string) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       models.StatusActive,
	}
	require.NoError(t, e.db.Create(&user).Error)

	token, err := GenerateToken(user.ID, user.Role, testSecret)
	require.NoError(t, err)
	return &user, token
}

// createEvent posts an event through the API as the given token's user.
func (e *testEnv) createEvent(t *testing.T, token, title string, capacity int) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/events", token, CreateEventRequest{
		Title:       title,
		Description: "desc",
		Location:    "somewhere",
		Date:        "2026-10-01",
		Time:        "18:00",
		Category:    "general",
		Capacity:    capacity,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var event models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	return event.ID
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
