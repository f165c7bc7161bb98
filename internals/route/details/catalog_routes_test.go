package details

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary_backend/internals/helpers/i18n"
	"locallibrary_backend/internals/helpers/urls"
)

func TestCatalogPublicRoutes_NameDetailRoutes(t *testing.T) {
	cat, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	app := fiber.New()
	reg := urls.NewRegistry()
	CatalogPublicRoutes(app.Group(CatalogPublicPrefix), nil, cat, reg)

	require.NoError(t, reg.Load(app, CatalogURLNames...))

	book, err := reg.Reverse(urls.BookDetail, "b1")
	require.NoError(t, err)
	assert.Equal(t, "/api/public/catalog/books/b1", book)

	author, err := reg.Reverse(urls.AuthorDetail, "a1")
	require.NoError(t, err)
	assert.Equal(t, "/api/public/catalog/authors/a1", author)
}
