package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "locallibrary_backend/internals/helpers"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog("en")
	require.NoError(t, err)
	return cat
}

func TestCatalogs_HaveSameKeys(t *testing.T) {
	for key := range messagesEN {
		_, ok := messagesRU[key]
		assert.True(t, ok, "ru is missing %s", key)
	}
	for key := range messagesRU {
		_, ok := messagesEN[key]
		assert.True(t, ok, "en is missing %s", key)
	}
}

func TestT(t *testing.T) {
	cat := newCatalog(t)

	assert.Equal(t, "Author must be at least 18 years old.", cat.T("en", "author.date_of_birth.too_young"))
	assert.Equal(t, "Автор должен быть старше 18 лет.", cat.T("ru", "author.date_of_birth.too_young"))
	assert.Equal(t, "Invalid date - renewal more than 4 weeks ahead.", cat.T("en", "book_instance.due_back.too_far", "4"))

	// unsupported locale uses the default one, unknown keys echo back
	assert.Equal(t, "On loan", cat.T("de", "status.o"))
	assert.Equal(t, "no.such.key", cat.T("en", "no.such.key"))
}

func TestNewCatalog_UnknownDefaultLocale(t *testing.T) {
	cat, err := NewCatalog("fr")
	require.NoError(t, err)
	assert.Equal(t, "en", cat.DefaultLocale())
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	cat := newCatalog(t)

	type payload struct {
		FirstName string `json:"first_name" validate:"required,max=100"`
		Status    string `json:"status" validate:"omitempty,oneof=m o a r"`
	}

	assert.Nil(t, cat.ValidateStruct("en", &payload{FirstName: "Ursula", Status: "o"}))

	errs := cat.ValidateStruct("en", &payload{Status: "x"})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "first_name")
	assert.Contains(t, errs, "status")
	assert.NotEmpty(t, errs["first_name"][0])
}

func TestRenderFieldErrors(t *testing.T) {
	cat := newCatalog(t)

	var fe helper.FieldErrors
	fe.Add("date_of_birth", "author.date_of_birth.too_young")
	fe.Add("date_of_death", "author.date_of_death.not_past")

	out := cat.RenderFieldErrors("ru", fe)

	assert.Equal(t, []string{"Автор должен быть старше 18 лет."}, out["date_of_birth"])
	assert.Equal(t, []string{"Дата смерти не может быть позднее чем вчера."}, out["date_of_death"])
}
