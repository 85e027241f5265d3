// Package settings provides the branding-configuration endpoints: a public
// read that always answers (defaults when nothing was saved yet) and a
// multipart write with optional logo and background uploads.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/controller/settings"
	"github.com/barangay-is/barangay-is/internal/upload"
	"github.com/barangay-is/barangay-is/internal/web/handler"
)

const (
	// Path is the base path for the settings endpoints.
	Path = handler.APIPath + "/settings"

	// MsgSaved is returned after a successful write.
	MsgSaved = "Settings saved successfully"
	// MsgUnsupportedFile is returned when an upload has a disallowed extension.
	MsgUnsupportedFile = "Unsupported file type"
)

// Service provides the settings endpoints.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	store *upload.Store
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store *upload.Store, protect fiber.Handler) {
	if app == nil || cfg == nil || db == nil || store == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.store = store

	app.Get(Path, s.Get)
	app.Post(Path, protect, s.Save)
}

// Get returns the stored settings, or the defaults when nothing was saved.
func (s *Service) Get(c *fiber.Ctx) error {
	row, err := settings.Get(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(row)
}

// Save upserts the settings from a multipart form. The logo and bg_image
// files are optional; a superseded upload is retired in the background.
func (s *Service) Save(c *fiber.Ctx) error {
	fields := settings.Fields{
		CompanyName:        c.FormValue("company_name"),
		Address:            c.FormValue("address"),
		HeaderColor:        c.FormValue("header_color"),
		FooterText:         c.FormValue("footer_text"),
		FooterColor:        c.FormValue("footer_color"),
		MainButtonColor:    c.FormValue("main_button_color"),
		SidebarButtonColor: c.FormValue("sidebar_button_color"),
	}

	var files settings.FileRefs

	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		path, err := s.store.SaveLogo(fh)
		if err != nil {
			if errors.Is(err, upload.ErrUnsupportedType) {
				return handler.Message(c, fiber.StatusBadRequest, MsgUnsupportedFile)
			}

			log.Error().Err(err).Msg("failed to store logo upload")

			return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
		}

		files.LogoURL = &path
	}

	if fh, err := c.FormFile("bg_image"); err == nil && fh != nil {
		path, err := s.store.SaveBackground(fh)
		if err != nil {
			if errors.Is(err, upload.ErrUnsupportedType) {
				return handler.Message(c, fiber.StatusBadRequest, MsgUnsupportedFile)
			}

			log.Error().Err(err).Msg("failed to store background upload")

			return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
		}

		files.BgImage = &path
	}

	_, stale, err := settings.Save(s.db, fields, files)
	if err != nil {
		log.Error().Err(err).Msg("failed to save settings")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	for _, path := range stale {
		s.store.Retire(path)
	}

	return c.JSON(fiber.Map{"success": true, "message": MsgSaved})
}
