package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
	"locallibrary_backend/internals/helpers/urls"
)

func TestMissingIDs(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	assert.Empty(t, MissingIDs([]uuid.UUID{a, b}, []uuid.UUID{b, a}))
	assert.Equal(t, []uuid.UUID{c}, MissingIDs([]uuid.UUID{a, c, b, c}, []uuid.UUID{a, b}))
	assert.Equal(t, []uuid.UUID{a, b}, MissingIDs([]uuid.UUID{a, b}, nil))
	assert.Empty(t, MissingIDs(nil, []uuid.UUID{a}))
}

// Requests rejected before any query never touch the database.
func newApp(t *testing.T) *fiber.App {
	t.Helper()
	cat, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	ctl := NewBookController(nil, cat, urls.NewRegistry())
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Post("/books", ctl.Create)
	app.Get("/books/:id", ctl.GetByID)
	app.Delete("/books/:id", ctl.Delete)
	return app
}

func decode(t *testing.T, body io.Reader) helper.ErrorResponse {
	t.Helper()
	var out helper.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestCreate_ValidationErrors(t *testing.T) {
	app := newApp(t)

	payload := `{"book_title":"","book_summary":"s","book_isbn":"12345678901234"}`
	req := httptest.NewRequest(fiber.MethodPost, "/books", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.ErrorCode)
	assert.Contains(t, body.Errors, "book_title")
	assert.Contains(t, body.Errors, "book_isbn")
	assert.NotContains(t, body.Errors, "book_summary")
}

func TestCreate_MalformedJSON(t *testing.T) {
	app := newApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/books", strings.NewReader(`{"book_title":`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid payload", decode(t, resp.Body).Message)
}

func TestInvalidIDs(t *testing.T) {
	app := newApp(t)

	for _, method := range []string{fiber.MethodGet, fiber.MethodDelete} {
		resp, err := app.Test(httptest.NewRequest(method, "/books/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, method)
		assert.Equal(t, "Invalid ID", decode(t, resp.Body).Message)
	}
}
