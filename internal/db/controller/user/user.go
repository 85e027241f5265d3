// Package user manages staff accounts: registration, credential checks and
// lookups for token issuance.
package user

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned when the username/password pair does
	// not match a stored account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Register creates a new account with the given plaintext password.
// Role defaults to Staff when empty.
func Register(db *gorm.DB, username, password, fullName, role string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	username = strings.TrimSpace(username)

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}

	if count > 0 {
		return nil, ErrUsernameTaken
	}

	if role == "" {
		role = models.RoleStaff
	}

	u := models.User{
		Username:     username,
		PasswordHash: models.HashPassword(password),
		FullName:     fullName,
		Role:         role,
	}

	if err := db.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

// Authenticate verifies the username/password pair and returns the matching
// account. A missing user and a wrong password both surface as
// ErrInvalidCredentials so callers never reveal which half failed.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User

	result := db.Where("username = ?", strings.TrimSpace(username)).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, result.Error
	}

	if !u.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return &u, nil
}

// GetByID retrieves a user by id.
func GetByID(db *gorm.DB, id uint64) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User

	result := db.First(&u, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &u, nil
}

// Count reports how many accounts exist. The daemon uses it to decide
// whether to seed the initial administrator.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
