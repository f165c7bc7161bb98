package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary_backend/internals/configs"
	userModel "locallibrary_backend/internals/features/users/user/model"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := configs.JWTSecret
	configs.JWTSecret = secret
	t.Cleanup(func() { configs.JWTSecret = prev })
}

func TestIssueAccessToken(t *testing.T) {
	withSecret(t, "test-secret")
	user := userModel.UserModel{
		ID:       uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		UserName: "librarian",
		Email:    "librarian@locallibrary.local",
		Role:     "librarian",
	}
	now := time.Now().UTC().Truncate(time.Second)

	resp, err := IssueAccessToken(user, []string{"can_mark_returned"}, now)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, now.Add(accessTTLDefault), resp.ExpiresAt)
	assert.Equal(t, []string{"can_mark_returned"}, resp.User.Permissions)

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), tok.Method.Alg())
	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, "librarian", claims["role"])
	assert.Equal(t, []interface{}{"can_mark_returned"}, claims["permissions"])
	assert.Equal(t, float64(now.Add(accessTTLDefault).Unix()), claims["exp"])
}

func TestIssueAccessToken_NilPermissionsAndMissingSecret(t *testing.T) {
	withSecret(t, "test-secret")
	resp, err := IssueAccessToken(userModel.UserModel{ID: uuid.New()}, nil, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, resp.User.Permissions)
	assert.Empty(t, resp.User.Permissions)

	withSecret(t, "  ")
	_, err = IssueAccessToken(userModel.UserModel{ID: uuid.New()}, nil, time.Now())
	assert.Error(t, err)
}

func TestResolveBlacklistTTL(t *testing.T) {
	withSecret(t, "test-secret")

	resp, err := IssueAccessToken(userModel.UserModel{ID: uuid.New()}, nil, time.Now().UTC())
	require.NoError(t, err)
	ttl := resolveBlacklistTTL(resp.AccessToken)
	assert.Greater(t, ttl, accessTTLDefault-time.Minute)
	assert.LessOrEqual(t, ttl, accessTTLDefault+time.Minute)

	assert.Equal(t, 2*time.Minute, resolveBlacklistTTL("not-a-jwt"))
}

func TestPasswordHash(t *testing.T) {
	hashed, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hashed)
	assert.NoError(t, CheckPasswordHash(hashed, "correct horse"))
	assert.Error(t, CheckPasswordHash(hashed, "battery staple"))
}
