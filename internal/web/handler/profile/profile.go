// Package profile provides the barangay-identity endpoints.
package profile

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/controller/profile"
	"github.com/barangay-is/barangay-is/internal/db/models"
	"github.com/barangay-is/barangay-is/internal/web/handler"
)

const (
	// Path is the base path for the barangay-profile endpoints.
	Path = handler.APIPath + "/barangay-profile"
)

// Service provides the barangay-profile endpoints.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, protect fiber.Handler) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Get(Path, s.Get)
	app.Put(Path, protect, s.Save)
}

type profileInput struct {
	BarangayName string `json:"barangay_name" validate:"required"`
	Municipality string `json:"municipality" validate:"required"`
	Province     string `json:"province" validate:"required"`
	PlaceIssued  string `json:"place_issued"`
}

// Get returns the stored profile, or an empty default object.
func (s *Service) Get(c *fiber.Ctx) error {
	p, err := profile.Get(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to get barangay profile")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(p)
}

// Save upserts the profile.
func (s *Service) Save(c *fiber.Ctx) error {
	in := new(profileInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	p, err := profile.Save(s.db, models.BarangayProfile{
		BarangayName: in.BarangayName,
		Municipality: in.Municipality,
		Province:     in.Province,
		PlaceIssued:  in.PlaceIssued,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save barangay profile")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(p)
}
