// Package main provides the entry point for the Barangay Information System.
// It initializes and runs a web server using the Fiber framework that exposes
// a REST API for managing residents, household composition, incident reports,
// community services, the official roster and configurable branding settings.
// The application uses gorm for data persistence and serves uploaded assets
// (logos, signatures, profile pictures) statically.
package main
