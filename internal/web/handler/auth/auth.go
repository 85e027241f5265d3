// Package auth provides the account endpoints: register, login and the
// current-identity echo.
package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/config"
	"github.com/barangay-is/barangay-is/internal/db/controller/user"
	"github.com/barangay-is/barangay-is/internal/token"
	"github.com/barangay-is/barangay-is/internal/web/handler"
	authmw "github.com/barangay-is/barangay-is/internal/web/middleware/auth"
)

const (
	// Path is the base path for the account endpoints.
	Path = handler.APIPath + "/auth"

	// MsgInvalidCredentials is returned on a failed login.
	MsgInvalidCredentials = "Invalid credentials"
	// MsgUsernameTaken is returned when registering an existing username.
	MsgUsernameTaken = "Username already exists"
)

// Service provides the account endpoints.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	signer    *token.Signer
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, signer *token.Signer) {
	if app == nil || cfg == nil || db == nil || signer == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.signer = signer
	s.validator = validator.New()

	app.Post(Path+"/register", s.Register)
	app.Post(Path+"/login", s.Login)
	app.Get(Path+"/me", authmw.New(signer), s.Me)
}

type registerInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role"`
}

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new staff account.
func (s *Service) Register(c *fiber.Ctx) error {
	in := new(registerInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	u, err := user.Register(s.db, in.Username, in.Password, in.FullName, in.Role)
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return handler.Message(c, fiber.StatusBadRequest, MsgUsernameTaken)
		}

		log.Error().Err(err).Msg("failed to register user")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        u.ID,
		"username":  u.Username,
		"full_name": u.FullName,
		"role":      u.Role,
	})
}

// Login verifies credentials and issues a bearer token.
func (s *Service) Login(c *fiber.Ctx) error {
	in := new(loginInput)
	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, handler.MsgInvalidRequestBody)
	}

	if err := s.validator.Struct(in); err != nil {
		return handler.ValidationMessage(c, err)
	}

	u, err := user.Authenticate(s.db, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return handler.Message(c, fiber.StatusUnauthorized, MsgInvalidCredentials)
		}

		log.Error().Err(err).Msg("failed to authenticate user")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	tokenString, err := s.signer.Issue(u)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue token")

		return handler.Message(c, fiber.StatusInternalServerError, handler.MsgInternalServerError)
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
		"user": fiber.Map{
			"id":        u.ID,
			"username":  u.Username,
			"full_name": u.FullName,
			"role":      u.Role,
		},
	})
}

// Me echoes the identity carried by the bearer token.
func (s *Service) Me(c *fiber.Ctx) error {
	claims := authmw.Claims(c)

	return c.JSON(fiber.Map{
		"id":        claims.ID,
		"username":  claims.Username,
		"full_name": claims.FullName,
		"role":      claims.Role,
	})
}
