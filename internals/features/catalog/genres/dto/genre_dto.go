package dto

import (
	"time"

	"github.com/google/uuid"

	"locallibrary_backend/internals/features/catalog/genres/model"
	helper "locallibrary_backend/internals/helpers"
)

// =======================
// Request DTO
// =======================

type GenreRequest struct {
	GenreName string `json:"genre_name" validate:"required,max=200"`
}

func (r *GenreRequest) Normalize() {
	r.GenreName = helper.CleanText(r.GenreName)
}

func (r *GenreRequest) ToModel() model.GenreModel {
	return model.GenreModel{GenreName: r.GenreName}
}

func (r *GenreRequest) ApplyToModel(m *model.GenreModel) {
	m.GenreName = r.GenreName
}

// =======================
// Response DTO
// =======================

type GenreResponse struct {
	GenreID        uuid.UUID `json:"genre_id"`
	GenreName      string    `json:"genre_name"`
	GenreCreatedAt time.Time `json:"genre_created_at"`
	GenreUpdatedAt time.Time `json:"genre_updated_at"`
}

func FromModel(m model.GenreModel) GenreResponse {
	return GenreResponse{
		GenreID:        m.GenreID,
		GenreName:      m.GenreName,
		GenreCreatedAt: m.GenreCreatedAt,
		GenreUpdatedAt: m.GenreUpdatedAt,
	}
}

func FromModels(list []model.GenreModel) []GenreResponse {
	out := make([]GenreResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
