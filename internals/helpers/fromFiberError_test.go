package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Data not found")
	})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return fmt.Errorf("bind: %w", &ValidationError{
			Message: "Validation failed",
			Fields:  map[string][]string{"date_of_birth": {"too young"}},
		})
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("connection reset")
	})

	cases := []struct {
		path   string
		status int
		code   string
		msg    string
	}{
		{"/fiber", fiber.StatusNotFound, "NOT_FOUND", "Data not found"},
		{"/validation", fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed"},
		{"/plain", fiber.StatusInternalServerError, "INTERNAL_ERROR", fiber.ErrInternalServerError.Message},
		{"/missing-route", fiber.StatusNotFound, "NOT_FOUND", ""},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.ErrorCode)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, body.Message)
			}
		})
	}
}
