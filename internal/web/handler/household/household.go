// Package household provides the household endpoints, including member
// composition.
package household

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/controller/household"
	"github.com/barangay-is/barangay-is/internal/db/models"
	"github.com/barangay-is/barangay-is/internal/web/handler"
)

const (
	// Path is the base path for the household endpoints.
	Path = handler.APIPath + "/households"

	// MsgNotFound is returned when the requested household does not exist.
	MsgNotFound = "Household not found"
)

// Service provides CRUD endpoints for households and their members.
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
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, protect, s.Create)
	app.Put(Path+"/:id", protect, s.Update)
	app.Get(Path+"/:id/members", s.Members)
	app.Post(Path+"/:id/members", protect, s.AddMember)
}

type householdInput struct {
	HouseholdName string `json:"household_name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Purok         string `json:"purok"`
}

type memberInput struct {
	ResidentID     uint   `json:"resident_id" validate:"required"`
	RelationToHead string `json:"relation_to_head"`
}

// List returns all households with their member counts.
func (s *Service) List(c *fiber.Ctx) error {
	rows, err := household.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list households")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(rows)
}

// Get returns a single household with its member count.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	row, err := household.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, household.ErrHouseholdNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to get household")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(row)
}

// Create inserts a new household.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(householdInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	row, err := household.Create(s.db, models.Household{
		HouseholdName: in.HouseholdName,
		Address:       in.Address,
		Purok:         in.Purok,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create household")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}

// Update overwrites a household.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	in := new(householdInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	row, err := household.Update(s.db, id, models.Household{
		HouseholdName: in.HouseholdName,
		Address:       in.Address,
		Purok:         in.Purok,
	})
	if err != nil {
		if errors.Is(err, household.ErrHouseholdNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to update household")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(row)
}

// Members lists a household's members with resident names.
func (s *Service) Members(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := household.Members(s.db, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to list household members")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(rows)
}

// AddMember links a resident to a household.
func (s *Service) AddMember(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	in := new(memberInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	if _, err := household.GetByID(s.db, id); err != nil {
		if errors.Is(err, household.ErrHouseholdNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to get household")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	row, err := household.AddMember(s.db, id, in.ResidentID, in.RelationToHead)
	if err != nil {
		log.Error().Err(err).Msg("failed to add household member")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}
