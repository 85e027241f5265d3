package handler

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// ErrInvalidID is returned when a path id parameter is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// Message writes the API message envelope with the given status.
func Message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// ValidationMessage writes a 400 with a readable description of the first
// failed field.
func ValidationMessage(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return Message(c, fiber.StatusBadRequest, verrs[0].Field()+" failed on the '"+verrs[0].Tag()+"' rule")
	}

	return Message(c, fiber.StatusBadRequest, err.Error())
}

// ParseID reads the :id path parameter.
func ParseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}

	return uint(id), nil
}
