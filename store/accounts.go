package store

import (
	"context"
	"errors"
	"strings"

	"eventhub-backend/models"

	"gorm.io/gorm"
)

// AccountDirectory handles user persistence. Emails are lowercased before
// every store and lookup; uniqueness is backed by an index on the column.
type AccountDirectory struct {
	db *gorm.DB
}

func NewAccountDirectory(db *gorm.DB) *AccountDirectory {
	return &AccountDirectory{db: db}
}

// Create registers a new user. Fails with ErrConflict when the email is
// already registered (case-insensitive).
func (d *AccountDirectory) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, validationf("name is required")
	}
	if email == "" {
		return nil, validationf("email is required")
	}
	if passwordHash == "" {
		return nil, validationf("password is required")
	}

	var existing models.User
	err := d.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		Status:       models.StatusActive,
	}
	if err := d.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The unique index catches the race two concurrent signups lose.
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &user, nil
}

func (d *AccountDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := d.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *AccountDirectory) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := d.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SetBlocked toggles the moderation status of an account. A blocked user's
// next login fails; existing tokens are not revoked here.
func (d *AccountDirectory) SetBlocked(ctx context.Context, id uint, blocked bool) (*models.User, error) {
	status := models.StatusActive
	if blocked {
		status = models.StatusBlocked
	}
	res := d.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return d.FindByID(ctx, id)
}

func (d *AccountDirectory) UpdatePasswordHash(ctx context.Context, id uint, newHash string) error {
	if newHash == "" {
		return validationf("password is required")
	}
	res := d.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password_hash", newHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile updates the mutable profile fields in one scoped write.
func (d *AccountDirectory) UpdateProfile(ctx context.Context, id uint, name, bio, avatar string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("name is required")
	}
	updates := map[string]interface{}{
		"name":   name,
		"bio":    bio,
		"avatar": avatar,
	}
	res := d.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return d.FindByID(ctx, id)
}

// ListAll returns every account, newest first, for the moderation panel.
func (d *AccountDirectory) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := d.db.WithContext(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (d *AccountDirectory) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

// isUniqueViolation matches the duplicate-key errors the sqlite and postgres
// drivers report.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
