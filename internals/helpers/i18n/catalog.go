// Package i18n holds every user-facing string of the API, keyed by message id.
package i18n

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ru"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	ruTranslations "github.com/go-playground/validator/v10/translations/ru"
	"github.com/gofiber/fiber/v2"

	helper "locallibrary_backend/internals/helpers"
)

// LocLocale is the fiber Locals key set by the locale middleware.
const LocLocale = "locale"

var catalogs = map[string]map[string]string{
	"en": messagesEN,
	"ru": messagesRU,
}

type Catalog struct {
	uni           *ut.UniversalTranslator
	validate      *validator.Validate
	defaultLocale string
}

func NewCatalog(defaultLocale string) (*Catalog, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, ru.New())

	if _, ok := catalogs[defaultLocale]; !ok {
		defaultLocale = "en"
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	for locale, messages := range catalogs {
		trans, found := uni.GetTranslator(locale)
		if !found {
			return nil, fmt.Errorf("i18n: locale %q not supported by translator", locale)
		}
		for key, text := range messages {
			if err := trans.Add(key, text, true); err != nil {
				return nil, fmt.Errorf("i18n: add %s/%s: %w", locale, key, err)
			}
		}
		var err error
		switch locale {
		case "en":
			err = enTranslations.RegisterDefaultTranslations(v, trans)
		case "ru":
			err = ruTranslations.RegisterDefaultTranslations(v, trans)
		}
		if err != nil {
			return nil, fmt.Errorf("i18n: validator translations %s: %w", locale, err)
		}
	}

	return &Catalog{uni: uni, validate: v, defaultLocale: defaultLocale}, nil
}

func (cat *Catalog) Supported() []string { return []string{"en", "ru"} }

func (cat *Catalog) DefaultLocale() string { return cat.defaultLocale }

func (cat *Catalog) translator(locale string) ut.Translator {
	if trans, found := cat.uni.GetTranslator(locale); found {
		return trans
	}
	trans, _ := cat.uni.GetTranslator(cat.defaultLocale)
	return trans
}

// T translates key, falling back to the default locale and then to the key itself.
func (cat *Catalog) T(locale, key string, params ...string) string {
	if s, err := cat.translator(locale).T(key, params...); err == nil {
		return s
	}
	if s, err := cat.translator(cat.defaultLocale).T(key, params...); err == nil {
		return s
	}
	return key
}

// ValidateStruct runs the struct validator; nil means valid.
func (cat *Catalog) ValidateStruct(locale string, s interface{}) map[string][]string {
	err := cat.validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string][]string{"_": {err.Error()}}
	}
	trans := cat.translator(locale)
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fe.Translate(trans))
	}
	return out
}

func (cat *Catalog) RenderFieldErrors(locale string, fe helper.FieldErrors) map[string][]string {
	return fe.Render(func(key string, params ...string) string {
		return cat.T(locale, key, params...)
	})
}

/* ===== fiber helpers ===== */

func (cat *Catalog) LocaleOf(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocLocale).(string); ok && v != "" {
		return v
	}
	return cat.defaultLocale
}

// TC translates key for the locale of the current request.
func (cat *Catalog) TC(c *fiber.Ctx, key string, params ...string) string {
	return cat.T(cat.LocaleOf(c), key, params...)
}

// Error writes a JSON error whose message is the translated key.
func (cat *Catalog) Error(c *fiber.Ctx, status int, key string, params ...string) error {
	return helper.JsonError(c, status, cat.TC(c, key, params...))
}

// Invalid writes a 422 with translated field errors.
func (cat *Catalog) Invalid(c *fiber.Ctx, fields map[string][]string) error {
	return helper.JsonValidationError(c, cat.TC(c, "msg.validation_failed"), fields)
}

// DBError maps a persistence error to a translated response.
func (cat *Catalog) DBError(c *fiber.Ctx, err error) error {
	status, key := helper.MapPGError(err)
	return cat.Error(c, status, key)
}

// SaveError renders model validation failures as 422 and everything else as a DB error.
func (cat *Catalog) SaveError(c *fiber.Ctx, err error) error {
	return helper.FromFiberError(c, cat.WrapSaveError(c, err))
}

// NewError builds a *fiber.Error with the translated key, for handlers that
// return errors up to the app ErrorHandler.
func (cat *Catalog) NewError(c *fiber.Ctx, status int, key string, params ...string) *fiber.Error {
	return fiber.NewError(status, cat.TC(c, key, params...))
}

// InvalidError is Invalid as a returned error.
func (cat *Catalog) InvalidError(c *fiber.Ctx, fields map[string][]string) error {
	return &helper.ValidationError{Message: cat.TC(c, "msg.validation_failed"), Fields: fields}
}

// WrapSaveError turns a write failure into an error the app ErrorHandler can render:
// helper.FieldErrors become a 422, database errors a mapped *fiber.Error.
func (cat *Catalog) WrapSaveError(c *fiber.Ctx, err error) error {
	var fe helper.FieldErrors
	if errors.As(err, &fe) {
		return cat.InvalidError(c, cat.RenderFieldErrors(cat.LocaleOf(c), fe))
	}
	var already *fiber.Error
	if errors.As(err, &already) {
		return already
	}
	var invalid *helper.ValidationError
	if errors.As(err, &invalid) {
		return invalid
	}
	status, key := helper.MapPGError(err)
	return cat.NewError(c, status, key)
}
