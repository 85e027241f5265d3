// Package incident provides the blotter endpoints.
package incident

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/controller/incident"
	"github.com/barangay-is/barangay-is/internal/db/models"
	"github.com/barangay-is/barangay-is/internal/web/handler"
)

const (
	// Path is the base path for the incident endpoints.
	Path = handler.APIPath + "/incidents"

	// MsgNotFound is returned when the requested incident does not exist.
	MsgNotFound = "Incident not found"
)

// Service provides the blotter endpoints.
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
}

type incidentInput struct {
	IncidentDate  string `json:"incident_date" validate:"required"`
	IncidentType  string `json:"incident_type" validate:"required"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	ComplainantID *uint  `json:"complainant_id"`
	RespondentID  *uint  `json:"respondent_id"`
	Status        string `json:"status"`
}

func (in *incidentInput) model() models.Incident {
	return models.Incident{
		IncidentDate:  in.IncidentDate,
		IncidentType:  in.IncidentType,
		Location:      in.Location,
		Description:   in.Description,
		ComplainantID: in.ComplainantID,
		RespondentID:  in.RespondentID,
		Status:        in.Status,
	}
}

// List returns all incidents, newest first, joined with resident names.
func (s *Service) List(c *fiber.Ctx) error {
	rows, err := incident.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list incidents")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(rows)
}

// Create records a new incident.
func (s *Service) Create(c *fiber.Ctx) error {
	in := new(incidentInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	i, err := incident.Create(s.db, in.model())
	if err != nil {
		log.Error().Err(err).Msg("failed to create incident")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(i)
}

// Update overwrites an incident.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	in := new(incidentInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	i, err := incident.Update(s.db, id, in.model())
	if err != nil {
		if errors.Is(err, incident.ErrIncidentNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to update incident")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(i)
}
