package urls

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	reg := NewRegistry()
	reg.Add(BookDetail, "/api/public/catalog/books/:id")

	got, err := reg.Reverse(BookDetail, "7b0d5b3c-5e0c-4c1e-9a57-1f0d2f8a6d11")
	require.NoError(t, err)
	assert.Equal(t, "/api/public/catalog/books/7b0d5b3c-5e0c-4c1e-9a57-1f0d2f8a6d11", got)
}

func TestReverse_Errors(t *testing.T) {
	reg := NewRegistry()
	reg.Add(AuthorDetail, "/authors/:id")

	_, err := reg.Reverse("missing", "1")
	assert.Error(t, err)

	_, err = reg.Reverse(AuthorDetail)
	assert.Error(t, err)

	_, err = reg.Reverse(AuthorDetail, "1", "2")
	assert.Error(t, err)
}

func TestReverse_EscapesArgs(t *testing.T) {
	reg := NewRegistry()
	reg.Add("search", "/search/:q")

	got, err := reg.Reverse("search", "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "/search/a%20b%2Fc", got)
}

func TestLoad_FromMountedRoutes(t *testing.T) {
	app := fiber.New()
	public := app.Group("/api/public/catalog")
	books := public.Group("/books")
	books.Get("/list", func(c *fiber.Ctx) error { return nil })
	books.Get("/:id", func(c *fiber.Ctx) error { return nil }).Name(BookDetail)

	reg := NewRegistry()
	require.NoError(t, reg.Load(app, BookDetail))

	got, err := reg.Reverse(BookDetail, "42")
	require.NoError(t, err)
	assert.Equal(t, "/api/public/catalog/books/42", got)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, got, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLoad_MissingName(t *testing.T) {
	app := fiber.New()
	app.Get("/authors/:id", func(c *fiber.Ctx) error { return nil })

	err := NewRegistry().Load(app, AuthorDetail)
	assert.Error(t, err)
}
