// Package official provides the official-roster endpoints, including the
// multipart create/update forms with signature and profile uploads and the
// resolved captain/secretary view.
package official

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/controller/official"
	"github.com/barangay-is/barangay-is/internal/db/models"
	"github.com/barangay-is/barangay-is/internal/upload"
	"github.com/barangay-is/barangay-is/internal/web/handler"
)

const (
	// Path is the base path for the official-roster endpoints.
	Path = handler.APIPath + "/officials"

	// MsgNotFound is returned when the requested official does not exist.
	MsgNotFound = "Official not found"
	// MsgDeleted is returned after a successful delete.
	MsgDeleted = "Official deleted successfully"
	// MsgUnsupportedFile is returned when an upload has a disallowed extension.
	MsgUnsupportedFile = "Unsupported file type"
)

// Service provides CRUD endpoints for the official roster.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	store     *upload.Store
	validator *validator.Validate
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
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Get(Path+"/roles", s.Roles)
	app.Post(Path, protect, s.Create)
	app.Put(Path+"/:id", protect, s.Update)
	app.Delete(Path+"/:id", protect, s.Delete)
}

type officialInput struct {
	FullName string `validate:"required"`
	Position string `validate:"required"`
	OrderNo  int
	// nil flag means the caller left it to the position default
	IsCaptain   *bool
	IsSecretary *bool
}

// parseForm reads the multipart scalar fields. The role flags arrive as the
// strings "1"/"0" (or "true"/"false") and stay nil when absent.
func parseForm(c *fiber.Ctx) *officialInput {
	in := &officialInput{
		FullName: c.FormValue("full_name"),
		Position: c.FormValue("position"),
	}

	if v := c.FormValue("order_no"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.OrderNo = n
		}
	}

	in.IsCaptain = parseFlag(c.FormValue("is_captain"))
	in.IsSecretary = parseFlag(c.FormValue("is_secretary"))

	return in
}

func parseFlag(v string) *bool {
	switch v {
	case "1", "true":
		t := true
		return &t
	case "0", "false":
		f := false
		return &f
	default:
		return nil
	}
}

// model applies the position defaults for flags the caller did not supply.
func (in *officialInput) model() models.Official {
	o := models.Official{
		FullName: in.FullName,
		Position: in.Position,
		OrderNo:  in.OrderNo,
	}

	if in.IsCaptain != nil {
		o.IsCaptain = *in.IsCaptain
	} else {
		o.IsCaptain = in.Position == models.PositionCaptain
	}

	if in.IsSecretary != nil {
		o.IsSecretary = *in.IsSecretary
	} else {
		o.IsSecretary = in.Position == models.PositionSecretary
	}

	return o
}

// saveFiles stores whichever uploads the form carried and returns their
// public paths, nil for fields without a file.
func (s *Service) saveFiles(c *fiber.Ctx) (official.FileRefs, error) {
	var refs official.FileRefs

	if fh, err := c.FormFile("signature"); err == nil && fh != nil {
		path, err := s.store.SaveSignature(fh)
		if err != nil {
			return refs, err
		}

		refs.SignaturePath = &path
	}

	if fh, err := c.FormFile("profile_img"); err == nil && fh != nil {
		path, err := s.store.SaveProfileImage(fh)
		if err != nil {
			return refs, err
		}

		refs.ProfileImg = &path
	}

	return refs, nil
}

// List returns the roster ordered by rank.
func (s *Service) List(c *fiber.Ctx) error {
	officials, err := official.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list officials")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(officials)
}

// Roles returns the resolved captain and secretary, null when no candidate
// exists.
func (s *Service) Roles(c *fiber.Ctx) error {
	captain, err := official.Captain(s.db)
	if err != nil && !errors.Is(err, official.ErrOfficialNotFound) {
		log.Error().Err(err).Msg("failed to resolve captain")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	secretary, err := official.Secretary(s.db)
	if err != nil && !errors.Is(err, official.ErrOfficialNotFound) {
		log.Error().Err(err).Msg("failed to resolve secretary")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(fiber.Map{
		"captain":   captain,
		"secretary": secretary,
	})
}

// Create adds an official from a multipart form.
func (s *Service) Create(c *fiber.Ctx) error {
	in := parseForm(c)
	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	refs, err := s.saveFiles(c)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) {
			return handler.Message(c, fiber.StatusBadRequest, MsgUnsupportedFile)
		}

		log.Error().Err(err).Msg("failed to store official upload")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	o := in.model()
	o.SignaturePath = refs.SignaturePath
	o.ProfileImg = refs.ProfileImg

	created, err := official.Create(s.db, o)
	if err != nil {
		log.Error().Err(err).Msg("failed to create official")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update overwrites an official from a multipart form. File columns are only
// written when the form carried a replacement upload; superseded files are
// retired in the background.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	in := parseForm(c)
	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	refs, err := s.saveFiles(c)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) {
			return handler.Message(c, fiber.StatusBadRequest, MsgUnsupportedFile)
		}

		log.Error().Err(err).Msg("failed to store official upload")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	updated, stale, err := official.Update(s.db, id, in.model(), refs)
	if err != nil {
		if errors.Is(err, official.ErrOfficialNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to update official")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	for _, path := range stale {
		s.store.Retire(path)
	}

	return c.JSON(updated)
}

// Delete removes an official and retires its stored files.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, err.Error())
	}

	orphaned, err := official.Delete(s.db, id)
	if err != nil {
		if errors.Is(err, official.ErrOfficialNotFound) {
			return handler.Message(c, fiber.StatusNotFound, MsgNotFound)
		}

		log.Error().Err(err).Msg("failed to delete official")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	for _, path := range orphaned {
		s.store.Retire(path)
	}

	return handler.Message(c, fiber.StatusOK, MsgDeleted)
}
