package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

const (
	// RoleStaff is the default role assigned to newly registered users.
	RoleStaff = "Staff"
	// RoleAdmin is the role of the seeded administrator account.
	RoleAdmin = "Admin"
)

// User represents a staff account that may authenticate against the system.
// Users authenticate with a local username and password and receive a signed
// bearer token carrying their identity claim.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the unique username for login.
	Username string `gorm:"unique;size:100;not null" json:"username"`
	// PasswordHash is the Argon2id hashed password. Never serialized.
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	// FullName is the user's display name.
	FullName string `gorm:"size:255;not null" json:"full_name"`
	// Role is a free-form role label ("Admin", "Staff"). It carries no
	// authorization semantics beyond presentation.
	Role string `gorm:"size:50;not null;default:'Staff'" json:"role"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.PasswordHash)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
