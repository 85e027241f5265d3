// Package daemon boots the application: database, migrations, seed data,
// upload store, token signer and the web service.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/dsn"
	"github.com/barangay-is/barangay-is/internal/db/models"
	"github.com/barangay-is/barangay-is/internal/token"
	"github.com/barangay-is/barangay-is/internal/uniuri"
	"github.com/barangay-is/barangay-is/internal/upload"
	"github.com/barangay-is/barangay-is/internal/web"
)

// ErrUnknownGormEngine is returned for an unsupported DB.GormEngine value.
var ErrUnknownGormEngine = errors.New("unknown gorm engine")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start listens on the configured port and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Resident{},
		&models.Household{},
		&models.HouseholdMember{},
		&models.Incident{},
		&models.Service{},
		&models.ServiceBeneficiary{},
		&models.Official{},
		&models.CompanySettings{},
		&models.BarangayProfile{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	seed(cfg, db)

	store, err := upload.NewStore(cfg.Uploads)
	if err != nil {
		return nil, err
	}

	secret := cfg.Auth.TokenSecret
	if secret == "" {
		secret = uniuri.NewLen(uniuri.SecretLen)

		log.Warn().Msg("no token secret configured: generated a random one, sessions will not survive a restart")
	}

	signer, err := token.NewSigner(secret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, store, signer),
	}, nil
}

// openDialector selects the gorm driver from DB.GormEngine.
func openDialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case "mysql":
		return gormmysql.Open(dsn.Create(cfg)), nil
	case "postgres":
		return gormpostgres.Open(dsn.CreatePostgres(cfg)), nil
	case "sqlite":
		return sqlite.Open(cfg.DB.SQLitePath), nil
	default:
		return nil, errors.Wrap(ErrUnknownGormEngine, cfg.DB.GormEngine)
	}
}
