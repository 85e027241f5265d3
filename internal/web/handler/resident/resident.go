// Package resident provides the resident registry endpoints.
package resident

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/controller/resident"
	"github.com/barangay-is/barangay-is/internal/db/models"
	"github.com/barangay-is/barangay-is/internal/web/handler"
)

const (
	// Path is the base path for the resident endpoints.
	Path = handler.APIPath + "/residents"

	// MsgNotFound is returned when the requested resident does not exist.
	MsgNotFound = "Resident not found"
)

// Service provides CRUD endpoints for residents.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes. Reads are public, writes sit behind the bearer
// middleware passed in by the caller.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, protect fiber.Handler) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, protect, s.Create)
	app.Put(Path+"/:id", protect, s.Update)
}

type residentInput struct {
	LastName    string `json:"last_name" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	MiddleName  string `json:"middle_name"`
	Suffix      string `json:"suffix"`
	Sex         string `json:"sex" validate:"required"`
	Birthdate   string `json:"birthdate"`
	CivilStatus string `json:"civil_status"`
	ContactNo   string `json:"contact_no"`
	Address     string `json:"address"`
}

func (in *residentInput) model() models.Resident {
	return models.Resident{
		LastName:    in.LastName,
		FirstName:   in.FirstName,
		MiddleName:  in.MiddleName,
		Suffix:      in.Suffix,
		Sex:         in.Sex,
		Birthdate:   in.Birthdate,
		CivilStatus: in.CivilStatus,
		ContactNo:   in.ContactNo,
		Address:     in.Address,
	}
}

// List returns all residents ordered by name.
func (s *Service) List(c *fiber.Ctx) error {
	residents, err := resident.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list residents")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(residents)
}

// Get returns a single resident.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	r, err := resident.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, resident.ErrResidentNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to get resident")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(r)
}

// Create inserts a new resident.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(residentInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	r, err := resident.Create(s.db, in.model())
	if err != nil {
		log.Error().Err(err).Msg("failed to create resident")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(r)
}

// Update overwrites a resident.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	in := new(residentInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	r, err := resident.Update(s.db, id, in.model())
	if err != nil {
		if errors.Is(err, resident.ErrResidentNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to update resident")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(r)
}
