package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/dbtime"
	"locallibrary_backend/internals/helpers/urls"
)

var today = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *datatypes.Date {
	d := dbtime.ToDate(t)
	return &d
}

func fieldErrors(t *testing.T, err error) helper.FieldErrors {
	t.Helper()
	var fe helper.FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %v", err)
	return fe
}

func TestValidateOn_BirthDate(t *testing.T) {
	cases := []struct {
		name    string
		dob     time.Time
		wantErr bool
	}{
		{"one day short of 18", today.AddDate(-18, 0, 1), true},
		{"exactly 18", today.AddDate(-18, 0, 0), false},
		{"older", today.AddDate(-60, -2, 0), false},
		{"born today", today, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := AuthorModel{AuthorFirstName: "Ursula", AuthorLastName: "Le Guin", AuthorDateOfBirth: datePtr(tc.dob)}
			err := a.ValidateOn(today)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			fe := fieldErrors(t, err)
			assert.True(t, fe.Has("date_of_birth"))
			assert.False(t, fe.Has("date_of_death"))
		})
	}
}

func TestValidateOn_LeapDayBirth(t *testing.T) {
	a := AuthorModel{AuthorDateOfBirth: datePtr(time.Date(2004, 2, 29, 0, 0, 0, 0, time.UTC))}

	assert.Error(t, a.ValidateOn(time.Date(2022, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.NoError(t, a.ValidateOn(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestValidateOn_DeathDate(t *testing.T) {
	cases := []struct {
		name    string
		dod     time.Time
		wantErr bool
	}{
		{"today", today, true},
		{"tomorrow", today.AddDate(0, 0, 1), true},
		{"next year", today.AddDate(1, 0, 0), true},
		{"yesterday", today.AddDate(0, 0, -1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := AuthorModel{AuthorDateOfDeath: datePtr(tc.dod)}
			err := a.ValidateOn(today)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			fe := fieldErrors(t, err)
			assert.True(t, fe.Has("date_of_death"))
			assert.False(t, fe.Has("date_of_birth"))
		})
	}
}

func TestValidateOn_BothRulesReportTogether(t *testing.T) {
	a := AuthorModel{
		AuthorDateOfBirth: datePtr(today.AddDate(-10, 0, 0)),
		AuthorDateOfDeath: datePtr(today.AddDate(0, 0, 3)),
	}

	fe := fieldErrors(t, a.ValidateOn(today))

	assert.Len(t, fe, 2)
	assert.True(t, fe.Has("date_of_birth"))
	assert.True(t, fe.Has("date_of_death"))
}

func TestValidateOn_NullDatesSkipChecks(t *testing.T) {
	a := AuthorModel{AuthorFirstName: "Anon", AuthorLastName: "Ymous"}
	assert.NoError(t, a.ValidateOn(today))
}

func TestValidateOn_IgnoresClockOfToday(t *testing.T) {
	a := AuthorModel{AuthorDateOfDeath: datePtr(today)}
	lateEvening := time.Date(2024, 3, 15, 23, 30, 0, 0, time.UTC)

	assert.Error(t, a.ValidateOn(lateEvening))
}

func TestAuthorString(t *testing.T) {
	a := AuthorModel{AuthorFirstName: "Isaac", AuthorLastName: "Asimov"}
	assert.Equal(t, "Asimov, Isaac", a.String())
}

func TestAuthorAbsoluteURL(t *testing.T) {
	reg := urls.NewRegistry()
	reg.Add(urls.AuthorDetail, "/api/public/catalog/authors/:id")
	id := uuid.MustParse("9a1f6b52-3d7e-4c7e-8c1a-5f0f0b2c9e01")

	got, err := AuthorModel{AuthorID: id}.AbsoluteURL(reg)

	require.NoError(t, err)
	assert.Equal(t, "/api/public/catalog/authors/9a1f6b52-3d7e-4c7e-8c1a-5f0f0b2c9e01", got)
}
