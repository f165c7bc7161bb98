package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "locallibrary_backend/internals/features/users/auth/model"
	userModel "locallibrary_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts every column so an explicit is_active=false is not
// replaced by the column default.
func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return db.Select("*").Create(user).Error
}

/* ====================== PERMISSIONS ====================== */

// PermissionCodenames lists the codenames granted to the user, sorted.
func PermissionCodenames(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var codenames []string
	err := db.Table("user_permissions AS up").
		Joins("JOIN permissions p ON p.permission_id = up.permission_id").
		Where("up.user_id = ?", userID).
		Order("p.permission_codename ASC").
		Pluck("p.permission_codename", &codenames).Error
	return codenames, err
}

// UserHasPermission reports whether codename is currently granted to the user.
func UserHasPermission(db *gorm.DB, userID uuid.UUID, codename string) (bool, error) {
	var n int64
	err := db.Table("user_permissions AS up").
		Joins("JOIN permissions p ON p.permission_id = up.permission_id").
		Where("up.user_id = ? AND p.permission_codename = ?", userID, codename).
		Count(&n).Error
	return n > 0, err
}

// GrantPermission attaches a permission by codename. Granting twice is a no-op.
func GrantPermission(db *gorm.DB, userID uuid.UUID, codename string) error {
	var perm userModel.PermissionModel
	if err := db.Where("permission_codename = ?", codename).First(&perm).Error; err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&userModel.UserPermissionModel{
		UserID:       userID,
		PermissionID: perm.PermissionID,
	}).Error
}

/* ====================== TOKEN BLACKLIST ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func IsTokenBlacklisted(db *gorm.DB, token string) (bool, error) {
	var row authModel.TokenBlacklistModel
	err := db.Select("id").Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PurgeExpiredTokens deletes blacklist rows that expired before the cutoff.
func PurgeExpiredTokens(db *gorm.DB, before time.Time) (int64, error) {
	res := db.Where("expired_at < ?", before).Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
