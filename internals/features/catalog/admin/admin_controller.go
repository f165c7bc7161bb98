package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
)

type SchemaController struct {
	Registry *Registry
	I18n     *i18n.Catalog
}

func NewSchemaController(reg *Registry, cat *i18n.Catalog) *SchemaController {
	return &SchemaController{Registry: reg, I18n: cat}
}

func (ctl *SchemaController) translator(c *fiber.Ctx) func(string, ...string) string {
	return func(key string, params ...string) string {
		return ctl.I18n.TC(c, key, params...)
	}
}

// GET /schema
func (ctl *SchemaController) List(c *fiber.Ctx) error {
	return helper.JsonOK(c, ctl.I18n.TC(c, "msg.ok"), ctl.Registry.All(ctl.translator(c)))
}

// GET /schema/:entity
func (ctl *SchemaController) Get(c *fiber.Ctx) error {
	name := strings.ToLower(strings.TrimSpace(c.Params("entity")))
	meta, ok := ctl.Registry.Entity(name, ctl.translator(c))
	if !ok {
		return ctl.I18n.NewError(c, fiber.StatusNotFound, "msg.unknown_entity", name)
	}
	return helper.JsonOK(c, ctl.I18n.TC(c, "msg.ok"), meta)
}

// SchemaRoutes mounts the metadata endpoints. Base: /api/a/catalog
func SchemaRoutes(r fiber.Router, cat *i18n.Catalog) {
	ctl := NewSchemaController(NewRegistry(), cat)

	r.Get("/schema", ctl.List)
	r.Get("/schema/:entity", ctl.Get)
}
