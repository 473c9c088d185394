package database

import (
	"fmt"

	"eventhub-backend/config"
	"eventhub-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database, runs migrations and seeds the default admin
// when configured. The driver is chosen by config: postgres for deployment,
// sqlite for local development and tests.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Event{}, &models.Rsvp{}, &models.Comment{}); err != nil {
		return nil, err
	}

	if err := createDefaultAdmin(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// createDefaultAdmin seeds one admin account from environment configuration.
// It does nothing unless CREATE_ADMIN=true and an admin password is set, and
// never creates a second admin.
func createDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
