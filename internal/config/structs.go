package config

import (
	"time"

	"github.com/barangay-is/barangay-is/internal/logger"
)

// DefaultTokenTTL is the validity period of issued bearer tokens.
const DefaultTokenTTL = 8 * time.Hour

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Uploads   Uploads
	Auth      Auth
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string // domain name for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
}

// Uploads holds the uploaded-file storage settings.
type Uploads struct {
	Dir       string // base directory for uploaded files on disk
	URLPrefix string // public path prefix the files are served under
}

// Auth holds the bearer-token settings.
type Auth struct {
	// TokenSecret signs issued tokens. When empty, a random secret is
	// generated at startup and sessions do not survive a restart.
	TokenSecret string
	// TokenTTL is the validity period of issued tokens.
	TokenTTL time.Duration
}
