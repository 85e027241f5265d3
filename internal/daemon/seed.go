package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/controller/user"
	"github.com/barangay-is/barangay-is/internal/db/models"
)

// seed creates the initial administrator account when the users table is
// empty, so a fresh deployment can log in.
func seed(_ *config.Config, db *gorm.DB) {
	count, err := user.Count(db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users during seeding")
		return
	}

	if count > 0 {
		return
	}

	if _, err := user.Register(db, "admin", "changeme", "Administrator", models.RoleAdmin); err != nil {
		log.Error().Err(err).Msg("failed to seed admin user")
		return
	}

	log.Info().Msg("seeded initial admin user (username: admin) - change the password")
}
