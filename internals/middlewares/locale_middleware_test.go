package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary_backend/internals/helpers/i18n"
)

func TestLocaleMiddleware(t *testing.T) {
	cat, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	app := fiber.New()
	app.Use(LocaleMiddleware(cat))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(cat.TC(c, "status.o"))
	})

	cases := []struct {
		name       string
		query      string
		acceptLang string
		want       string
	}{
		{"default", "", "", "en"},
		{"accept-language", "", "ru", "ru"},
		{"query wins", "?lang=en", "ru", "en"},
		{"unsupported query ignored", "?lang=de", "ru", "ru"},
		{"unsupported header", "", "fr", "en"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/"+tc.query, nil)
			if tc.acceptLang != "" {
				req.Header.Set(fiber.HeaderAcceptLanguage, tc.acceptLang)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.Header.Get(fiber.HeaderContentLanguage))
		})
	}
}
