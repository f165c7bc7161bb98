package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"locallibrary_backend/internals/configs"
	authRepo "locallibrary_backend/internals/features/users/auth/repository"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
)

// AuthMiddleware verifies the bearer JWT and stores its claims in Locals.
func AuthMiddleware(db *gorm.DB, cat *i18n.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Authorization header or cookie
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return cat.NewError(c, fiber.StatusUnauthorized, "msg.unauthorized")
		}

		// 2) Blacklist (once per request)
		if c.Locals("token_checked") == nil {
			revoked, err := authRepo.IsTokenBlacklisted(db, tokenString)
			if err != nil {
				log.Println("[ERROR] blacklist lookup:", err)
				return cat.NewError(c, fiber.StatusInternalServerError, "msg.db.error")
			}
			if revoked {
				log.Println("[WARNING] blacklisted token used")
				return cat.NewError(c, fiber.StatusUnauthorized, "msg.unauthorized")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verify signature
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{
			ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
			SkipClaimsValidation: true,
		}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] token parse:", err)
			return cat.NewError(c, fiber.StatusUnauthorized, "msg.unauthorized")
		}

		// 4) exp with a little clock skew
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] exp validation:", err)
			return cat.NewError(c, fiber.StatusUnauthorized, "msg.unauthorized")
		}

		// 5) user id & active account
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return cat.NewError(c, fiber.StatusUnauthorized, "msg.unauthorized")
		}
		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return cat.NewError(c, fiber.StatusUnauthorized, "msg.unauthorized")
			}
			if errors.Is(err, errUserInactive) {
				return cat.NewError(c, fiber.StatusForbidden, "msg.login.inactive")
			}
			log.Println("[ERROR] ensureUserActive:", err)
			return cat.NewError(c, fiber.StatusInternalServerError, "msg.db.error")
		}

		c.Locals("user_id", userID.String())
		helper.SetRawAccessToken(c, tokenString)
		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}
