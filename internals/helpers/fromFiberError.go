package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ValidationError carries already translated field messages up to the error handler.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string { return e.Message }

// FromFiberError renders an error returned from a handler or a transaction.
// A *fiber.Error keeps its code and message; anything else becomes a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Message, ve.Fields)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "")
}

// ErrorHandler is the app-wide fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
