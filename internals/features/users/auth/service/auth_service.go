package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"locallibrary_backend/internals/configs"
	authRepo "locallibrary_backend/internals/features/users/auth/repository"
	userModel "locallibrary_backend/internals/features/users/user/model"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
)

/* ==========================
   Const & Types
========================== */

const accessTTLDefault = 24 * time.Hour

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type LoginUser struct {
	ID          string   `json:"id"`
	UserName    string   `json:"user_name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        LoginUser `json:"user"`
}

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return secret, nil
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, cat *i18n.Catalog, c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return cat.NewError(c, fiber.StatusBadRequest, "msg.invalid_payload")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)
	if errs := cat.ValidateStruct(cat.LocaleOf(c), &input); errs != nil {
		return cat.InvalidError(c, errs)
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, input.Identifier)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] login lookup: %v", err)
		}
		return cat.NewError(c, fiber.StatusUnauthorized, "msg.login.invalid")
	}
	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return cat.NewError(c, fiber.StatusUnauthorized, "msg.login.invalid")
	}
	if !user.IsActive {
		return cat.NewError(c, fiber.StatusForbidden, "msg.login.inactive")
	}

	perms, err := authRepo.PermissionCodenames(db, user.ID)
	if err != nil {
		log.Printf("[ERROR] load permissions for %s: %v", user.ID, err)
		return cat.NewError(c, fiber.StatusInternalServerError, "msg.db.error")
	}

	resp, err := IssueAccessToken(*user, perms, nowUTC())
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	log.Printf("[INFO] user %s logged in", user.ID)
	return helper.JsonOK(c, cat.TC(c, "msg.login.ok"), resp)
}

// IssueAccessToken signs an HS256 access token for the user.
func IssueAccessToken(user userModel.UserModel, permissions []string, now time.Time) (LoginResponse, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return LoginResponse{}, err
	}
	if permissions == nil {
		permissions = []string{}
	}
	claims := buildAccessClaims(user, permissions, now)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   now.Add(accessTTLDefault),
		User: LoginUser{
			ID:          user.ID.String(),
			UserName:    user.UserName,
			Email:       user.Email,
			Role:        user.Role,
			Permissions: permissions,
		},
	}, nil
}

func buildAccessClaims(user userModel.UserModel, permissions []string, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":         "access",
		"sub":         user.ID.String(),
		"id":          user.ID.String(),
		"user_name":   user.UserName,
		"role":        user.Role,
		"permissions": permissions,
		"iat":         now.Unix(),
		"exp":         now.Add(accessTTLDefault).Unix(),
	}
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, cat *i18n.Catalog, c *fiber.Ctx) error {
	accessToken := helper.GetRawAccessToken(c)
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, resolveBlacklistTTL(accessToken)); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] logout without access token")
	}
	return helper.JsonOK(c, cat.TC(c, "msg.logout.ok"), nil)
}

// resolveBlacklistTTL keeps a revoked token until shortly after its own expiry.
func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	secret, err := getJWTSecret()
	if err != nil || accessToken == "" {
		return ttl
	}
	tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return ttl
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ttl
	}
	if exp, ok := claims["exp"].(float64); ok {
		until := time.Until(time.Unix(int64(exp), 0))
		if until > 0 {
			return until + 60*time.Second
		}
		return time.Minute
	}
	return ttl
}
