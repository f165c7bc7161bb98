package model

import (
	"time"

	"github.com/google/uuid"
)

const GenreNameMaxLen = 200

type GenreModel struct {
	GenreID   uuid.UUID `gorm:"column:genre_id;type:uuid;default:gen_random_uuid();primaryKey" json:"genre_id"`
	GenreName string    `gorm:"column:genre_name;type:varchar(200);not null;index:idx_genres_name" json:"genre_name"`

	GenreCreatedAt time.Time `gorm:"column:genre_created_at;type:timestamptz;not null;autoCreateTime" json:"genre_created_at"`
	GenreUpdatedAt time.Time `gorm:"column:genre_updated_at;type:timestamptz;not null;autoUpdateTime" json:"genre_updated_at"`
}

func (GenreModel) TableName() string { return "genres" }

func (g GenreModel) String() string { return g.GenreName }
