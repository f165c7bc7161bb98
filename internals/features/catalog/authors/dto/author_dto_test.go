package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary_backend/internals/features/catalog/authors/model"
	helper "locallibrary_backend/internals/helpers"
)

func strPtr(s string) *string { return &s }

func TestAuthorRequest_NormalizeAndToModel(t *testing.T) {
	req := AuthorRequest{
		AuthorFirstName:   "  Mary ",
		AuthorLastName:    " Shelley",
		AuthorDateOfBirth: strPtr(" 1797-08-30 "),
		AuthorDateOfDeath: strPtr(""),
	}
	req.Normalize()

	m, err := req.ToModel()

	require.NoError(t, err)
	assert.Equal(t, "Mary", m.AuthorFirstName)
	assert.Equal(t, "Shelley", m.AuthorLastName)
	require.NotNil(t, m.AuthorDateOfBirth)
	assert.Nil(t, m.AuthorDateOfDeath)
	assert.Equal(t, "Shelley, Mary", FromModel(m).Display)
	assert.Equal(t, "1797-08-30", *FromModel(m).AuthorDateOfBirth)
}

func TestAuthorRequest_ApplyToModelBadDates(t *testing.T) {
	existing := model.AuthorModel{AuthorID: uuid.New(), AuthorFirstName: "Old"}
	req := AuthorRequest{
		AuthorFirstName:   "New",
		AuthorLastName:    "Name",
		AuthorDateOfBirth: strPtr("1990-13-01"),
		AuthorDateOfDeath: strPtr("yesterday"),
	}

	err := req.ApplyToModel(&existing)

	var fe helper.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Has("author_date_of_birth"))
	assert.True(t, fe.Has("author_date_of_death"))
	assert.Equal(t, "Old", existing.AuthorFirstName)
}

func TestAuthorRequest_ClearsDatesOnUpdate(t *testing.T) {
	var existing model.AuthorModel
	require.NoError(t, (&AuthorRequest{AuthorFirstName: "A", AuthorLastName: "B", AuthorDateOfBirth: strPtr("1950-01-01")}).ApplyToModel(&existing))
	require.NotNil(t, existing.AuthorDateOfBirth)

	require.NoError(t, (&AuthorRequest{AuthorFirstName: "A", AuthorLastName: "B"}).ApplyToModel(&existing))
	assert.Nil(t, existing.AuthorDateOfBirth)
}
