package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary_backend/internals/helpers/i18n"
)

func TestBuildUser(t *testing.T) {
	cat, err := i18n.NewCatalog("en")
	require.NoError(t, err)

	u, errs := buildUser(cat, UserSeed{UserName: "reader", Email: "reader@library.test", Password: "s3cret-pass"})
	assert.Nil(t, errs)
	assert.Equal(t, "user", u.Role)
	assert.Equal(t, "s3cret-pass", u.Password)

	_, errs = buildUser(cat, UserSeed{UserName: "ab", Email: "nope", Password: "short", Role: "owner"})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "user_name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "role")
	assert.Equal(t, []string{"Password must be at least 8 characters in length"}, errs["Password"])
}

func TestBuildUser_DefaultLocaleMessages(t *testing.T) {
	en, err := i18n.NewCatalog("en")
	require.NoError(t, err)
	ru, err := i18n.NewCatalog("ru")
	require.NoError(t, err)

	seed := UserSeed{UserName: "reader", Email: "reader@library.test", Password: "short"}
	_, enErrs := buildUser(en, seed)
	_, ruErrs := buildUser(ru, seed)

	require.Len(t, ruErrs["Password"], 1)
	assert.NotEqual(t, enErrs["Password"], ruErrs["Password"])
}
