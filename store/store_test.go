package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"eventhub-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database per test. The shared-cache name
// is derived from the test name so parallel tests never see each other's
// data.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Event{}, &models.Rsvp{}, &models.Comment{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleUser,
		Status:       models.StatusActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedEvent(t *testing.T, db *gorm.DB, ownerID uint, title string, capacity int) *models.Event {
	t.Helper()
	event := models.Event{
		Title:       title,
		Description: "desc",
		Location:    "somewhere",
		Date:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Time:        "18:00",
		Category:    "general",
		Capacity:    capacity,
		CreatedBy:   ownerID,
		Status:      models.EventApproved,
	}
	require.NoError(t, db.Create(&event).Error)
	return &event
}
