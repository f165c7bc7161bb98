package model

import (
	"time"

	"github.com/google/uuid"
)

// PermissionModel is a named capability checked by the API (e.g. can_mark_returned).
type PermissionModel struct {
	PermissionID          uuid.UUID `gorm:"column:permission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"permission_id"`
	PermissionCodename    string    `gorm:"column:permission_codename;type:varchar(100);not null;uniqueIndex:uq_permissions_codename" json:"permission_codename"`
	PermissionName        string    `gorm:"column:permission_name;type:varchar(255);not null" json:"permission_name"`
	PermissionContentType string    `gorm:"column:permission_content_type;type:varchar(100);not null" json:"permission_content_type"`
}

func (PermissionModel) TableName() string { return "permissions" }

type UserPermissionModel struct {
	UserID       uuid.UUID  `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	PermissionID uuid.UUID  `gorm:"column:permission_id;type:uuid;primaryKey;index:idx_user_permissions_permission" json:"permission_id"`
	AssignedAt   time.Time  `gorm:"column:assigned_at;type:timestamptz;not null;autoCreateTime" json:"assigned_at"`
	AssignedBy   *uuid.UUID `gorm:"column:assigned_by;type:uuid" json:"assigned_by,omitempty"`
}

func (UserPermissionModel) TableName() string { return "user_permissions" }
