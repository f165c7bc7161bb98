package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	authorModel "locallibrary_backend/internals/features/catalog/authors/model"
	"locallibrary_backend/internals/features/catalog/books/model"
	genreModel "locallibrary_backend/internals/features/catalog/genres/model"
	helper "locallibrary_backend/internals/helpers"
)

// =======================
// Request DTO
// =======================

// BookRequest is used for create and full update. GenreIDs order is the association order.
type BookRequest struct {
	BookTitle    string      `json:"book_title"               validate:"required,max=200"`
	BookSummary  string      `json:"book_summary"             validate:"required,max=1000"`
	BookISBN     string      `json:"book_isbn"                validate:"required,max=13"`
	BookAuthorID *uuid.UUID  `json:"book_author_id,omitempty"`
	GenreIDs     []uuid.UUID `json:"genre_ids"                validate:"omitempty,dive,required"`
}

func (r *BookRequest) Normalize() {
	r.BookTitle = helper.CleanText(r.BookTitle)
	r.BookSummary = helper.CleanBlock(r.BookSummary)
	r.BookISBN = strings.TrimSpace(r.BookISBN)
	if r.BookAuthorID != nil && *r.BookAuthorID == uuid.Nil {
		r.BookAuthorID = nil
	}
}

func (r *BookRequest) ToModel() model.BookModel {
	var m model.BookModel
	r.ApplyToModel(&m)
	return m
}

// ApplyToModel copies scalar fields and replaces the genre links.
func (r *BookRequest) ApplyToModel(m *model.BookModel) {
	m.BookTitle = r.BookTitle
	m.BookSummary = r.BookSummary
	m.BookISBN = r.BookISBN
	m.BookAuthorID = r.BookAuthorID
	m.SetGenres(r.GenreIDs)
}

// =======================
// Response DTO
// =======================

type BookGenreItem struct {
	GenreID   uuid.UUID `json:"genre_id"`
	GenreName string    `json:"genre_name"`
}

type BookAuthorItem struct {
	AuthorID uuid.UUID `json:"author_id"`
	Display  string    `json:"display"`
	URL      string    `json:"url,omitempty"`
}

type BookResponse struct {
	BookID        uuid.UUID  `json:"book_id"`
	BookTitle     string     `json:"book_title"`
	BookSummary   string     `json:"book_summary"`
	BookISBN      string     `json:"book_isbn"`
	BookAuthorID  *uuid.UUID `json:"book_author_id"`
	BookCreatedAt time.Time  `json:"book_created_at"`
	BookUpdatedAt time.Time  `json:"book_updated_at"`

	DisplayGenre string          `json:"display_genre"`
	URL          string          `json:"url,omitempty"`
	Author       *BookAuthorItem `json:"author,omitempty"`
	Genres       []BookGenreItem `json:"genres"`
}

func FromModel(m model.BookModel) BookResponse {
	resp := BookResponse{
		BookID:        m.BookID,
		BookTitle:     m.BookTitle,
		BookSummary:   m.BookSummary,
		BookISBN:      m.BookISBN,
		BookAuthorID:  m.BookAuthorID,
		BookCreatedAt: m.BookCreatedAt,
		BookUpdatedAt: m.BookUpdatedAt,
		DisplayGenre:  m.DisplayGenre(),
		Genres:        genreItems(m.Genres()),
	}
	if m.Author != nil {
		resp.Author = authorItem(*m.Author)
	}
	return resp
}

func FromModels(list []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

func genreItems(list []genreModel.GenreModel) []BookGenreItem {
	out := make([]BookGenreItem, 0, len(list))
	for _, g := range list {
		out = append(out, BookGenreItem{GenreID: g.GenreID, GenreName: g.GenreName})
	}
	return out
}

func authorItem(a authorModel.AuthorModel) *BookAuthorItem {
	return &BookAuthorItem{AuthorID: a.AuthorID, Display: a.String()}
}
