// Package service provides the community-service endpoints, including
// beneficiary tracking.
package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/controller/service"
	"github.com/barangay-is/barangay-is/internal/db/models"
	"github.com/barangay-is/barangay-is/internal/web/handler"
)

const (
	// Path is the base path for the community-service endpoints.
	Path = handler.APIPath + "/services"

	// MsgNotFound is returned when the requested service does not exist.
	MsgNotFound = "Service not found"
)

// Service provides CRUD endpoints for community services.
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

	app.Get(Path, s.List)
	app.Post(Path, protect, s.Create)
	app.Put(Path+"/:id", protect, s.Update)
	app.Get(Path+"/:id/beneficiaries", s.Beneficiaries)
	app.Post(Path+"/:id/beneficiaries", protect, s.AddBeneficiary)
}

type serviceInput struct {
	ServiceName string `json:"service_name" validate:"required"`
	Description string `json:"description"`
	ServiceDate string `json:"service_date"`
	Location    string `json:"location"`
}

type beneficiaryInput struct {
	ResidentID uint   `json:"resident_id" validate:"required"`
	Notes      string `json:"notes"`
}

func (in *serviceInput) model() models.Service {
	return models.Service{
		ServiceName: in.ServiceName,
		Description: in.Description,
		ServiceDate: in.ServiceDate,
		Location:    in.Location,
	}
}

// List returns all services with their beneficiary counts.
func (s *Service) List(c *fiber.Ctx) error {
	rows, err := service.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list services")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(rows)
}

// Create inserts a new service.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(serviceInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	row, err := service.Create(s.db, in.model())
	if err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}

// Update overwrites a service.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	in := new(serviceInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	row, err := service.Update(s.db, id, in.model())
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to update service")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(row)
}

// Beneficiaries lists a service's beneficiaries with resident names.
func (s *Service) Beneficiaries(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := service.Beneficiaries(s.db, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to list service beneficiaries")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(rows)
}

// AddBeneficiary links a resident to a service.
func (s *Service) AddBeneficiary(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	in := new(beneficiaryInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	if _, err := service.GetByID(s.db, id); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to get service")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	row, err := service.AddBeneficiary(s.db, id, in.ResidentID, in.Notes)
	if err != nil {
		log.Error().Err(err).Msg("failed to add service beneficiary")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}
