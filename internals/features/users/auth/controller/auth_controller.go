package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "locallibrary_backend/internals/features/users/auth/repository"
	"locallibrary_backend/internals/features/users/auth/service"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
)

type AuthController struct {
	DB   *gorm.DB
	I18n *i18n.Catalog
}

func NewAuthController(db *gorm.DB, cat *i18n.Catalog) *AuthController {
	return &AuthController{DB: db, I18n: cat}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, ac.I18n, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, ac.I18n, c)
}

// Me returns the caller's account and permissions.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(ac.DB, userID)
	if err != nil {
		return ac.I18n.NewError(c, fiber.StatusNotFound, "msg.not_found")
	}
	perms, err := authRepo.PermissionCodenames(ac.DB, userID)
	if err != nil {
		return ac.I18n.DBError(c, err)
	}
	if perms == nil {
		perms = []string{}
	}
	return helper.JsonOK(c, ac.I18n.TC(c, "msg.ok"), service.LoginUser{
		ID:          user.ID.String(),
		UserName:    user.UserName,
		Email:       user.Email,
		Role:        user.Role,
		Permissions: perms,
	})
}
