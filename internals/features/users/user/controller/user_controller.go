package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "locallibrary_backend/internals/features/users/auth/repository"
	authService "locallibrary_backend/internals/features/users/auth/service"
	"locallibrary_backend/internals/features/users/user/dto"
	"locallibrary_backend/internals/features/users/user/model"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
)

type AdminUserController struct {
	DB   *gorm.DB
	I18n *i18n.Catalog
}

func NewAdminUserController(db *gorm.DB, cat *i18n.Catalog) *AdminUserController {
	return &AdminUserController{DB: db, I18n: cat}
}

// GET /users/list?q=
func (uc *AdminUserController) GetUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := uc.DB.Model(&model.UserModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("user_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return uc.I18n.DBError(c, err)
	}
	var users []model.UserModel
	if err := q.Order("user_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return uc.I18n.DBError(c, err)
	}
	return helper.JsonList(c, uc.I18n.TC(c, "msg.ok"), dto.FromModels(users), helper.BuildPagination(total, p))
}

// GET /users/:id
func (uc *AdminUserController) GetUserByID(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return err
	}
	return uc.respond(c, fiber.StatusOK, "msg.ok", *user)
}

// POST /users
func (uc *AdminUserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return uc.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_payload")
	}
	req.Normalize()
	if errs := uc.I18n.ValidateStruct(uc.I18n.LocaleOf(c), &req); errs != nil {
		return uc.I18n.InvalidError(c, errs)
	}

	user := req.ToModel()
	hashed, err := authService.HashPassword(user.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
	}
	user.Password = hashed

	if err := authRepo.CreateUser(uc.DB, user); err != nil {
		log.Println("[ERROR] create user:", err)
		return uc.I18n.WrapSaveError(c, err)
	}
	log.Printf("[SUCCESS] user %s created", user.ID)
	return uc.respond(c, fiber.StatusCreated, "msg.user.created", *user)
}

// PUT /users/:id
func (uc *AdminUserController) UpdateUser(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return uc.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_payload")
	}
	req.Normalize()
	if errs := uc.I18n.ValidateStruct(uc.I18n.LocaleOf(c), &req); errs != nil {
		return uc.I18n.InvalidError(c, errs)
	}

	hashed := ""
	if req.Password != nil {
		if hashed, err = authService.HashPassword(*req.Password); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
		}
	}
	req.ApplyToModel(user, hashed)
	if err := uc.DB.Save(user).Error; err != nil {
		log.Println("[ERROR] update user:", err)
		return uc.I18n.WrapSaveError(c, err)
	}
	return uc.respond(c, fiber.StatusOK, "msg.user.updated", *user)
}

// POST /users/:id/permissions/:codename
func (uc *AdminUserController) GrantPermission(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return err
	}
	codename := strings.TrimSpace(c.Params("codename"))
	if err := authRepo.GrantPermission(uc.DB, user.ID, codename); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uc.I18n.NewError(c, fiber.StatusNotFound, "msg.not_found")
		}
		return uc.I18n.WrapSaveError(c, err)
	}
	log.Printf("[INFO] permission %s granted to %s", codename, user.ID)
	return uc.respond(c, fiber.StatusOK, "msg.user.updated", *user)
}

// DELETE /users/:id/permissions/:codename
func (uc *AdminUserController) RevokePermission(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return err
	}
	codename := strings.TrimSpace(c.Params("codename"))
	if err := uc.DB.
		Where("user_id = ? AND permission_id IN (?)", user.ID,
			uc.DB.Model(&model.PermissionModel{}).Select("permission_id").Where("permission_codename = ?", codename)).
		Delete(&model.UserPermissionModel{}).Error; err != nil {
		return uc.I18n.DBError(c, err)
	}
	return uc.respond(c, fiber.StatusOK, "msg.user.updated", *user)
}

func (uc *AdminUserController) respond(c *fiber.Ctx, status int, key string, user model.UserModel) error {
	resp := dto.FromModel(user)
	perms, err := authRepo.PermissionCodenames(uc.DB, user.ID)
	if err != nil {
		return uc.I18n.DBError(c, err)
	}
	resp.Permissions = perms
	if status == fiber.StatusCreated {
		return helper.JsonCreated(c, uc.I18n.TC(c, key), resp)
	}
	return helper.JsonOK(c, uc.I18n.TC(c, key), resp)
}

func (uc *AdminUserController) find(c *fiber.Ctx) (*model.UserModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, uc.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_id")
	}
	user, err := authRepo.FindUserByID(uc.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uc.I18n.NewError(c, fiber.StatusNotFound, "msg.not_found")
		}
		return nil, uc.I18n.NewError(c, fiber.StatusInternalServerError, "msg.db.error")
	}
	return user, nil
}
