package model

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authorModel "locallibrary_backend/internals/features/catalog/authors/model"
	genreModel "locallibrary_backend/internals/features/catalog/genres/model"
	"locallibrary_backend/internals/helpers/urls"
)

const (
	BookTitleMaxLen   = 200
	BookSummaryMaxLen = 1000
	BookISBNMaxLen    = 13

	// DisplayGenreLimit is how many genres DisplayGenre shows.
	DisplayGenreLimit = 3
)

type BookModel struct {
	BookID       uuid.UUID  `gorm:"column:book_id;type:uuid;default:gen_random_uuid();primaryKey" json:"book_id"`
	BookTitle    string     `gorm:"column:book_title;type:varchar(200);not null;index:idx_books_title" json:"book_title"`
	BookSummary  string     `gorm:"column:book_summary;type:text;not null" json:"book_summary"`
	BookISBN     string     `gorm:"column:book_isbn;type:varchar(13);not null" json:"book_isbn"`
	BookAuthorID *uuid.UUID `gorm:"column:book_author_id;type:uuid;index:idx_books_author" json:"book_author_id,omitempty"`

	BookCreatedAt time.Time `gorm:"column:book_created_at;type:timestamptz;not null;autoCreateTime" json:"book_created_at"`
	BookUpdatedAt time.Time `gorm:"column:book_updated_at;type:timestamptz;not null;autoUpdateTime" json:"book_updated_at"`

	Author     *authorModel.AuthorModel `gorm:"foreignKey:BookAuthorID;references:AuthorID" json:"-"`
	BookGenres []BookGenreModel         `gorm:"foreignKey:BookGenreBookID;references:BookID" json:"-"`
}

func (BookModel) TableName() string { return "books" }

// BookGenreModel is the book↔genre association. Position keeps the order
// in which genres were attached.
type BookGenreModel struct {
	BookGenreBookID   uuid.UUID `gorm:"column:book_genre_book_id;type:uuid;primaryKey" json:"book_genre_book_id"`
	BookGenreGenreID  uuid.UUID `gorm:"column:book_genre_genre_id;type:uuid;primaryKey;index:idx_book_genres_genre" json:"book_genre_genre_id"`
	BookGenrePosition int       `gorm:"column:book_genre_position;not null;default:0" json:"book_genre_position"`

	Genre *genreModel.GenreModel `gorm:"foreignKey:BookGenreGenreID;references:GenreID" json:"-"`
}

func (BookGenreModel) TableName() string { return "book_genres" }

func (b BookModel) String() string { return b.BookTitle }

func (b BookModel) AbsoluteURL(r urls.Reverser) (string, error) {
	return r.Reverse(urls.BookDetail, b.BookID.String())
}

// Genres returns the loaded genres in association order.
func (b BookModel) Genres() []genreModel.GenreModel {
	links := make([]BookGenreModel, len(b.BookGenres))
	copy(links, b.BookGenres)
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].BookGenrePosition < links[j].BookGenrePosition
	})

	out := make([]genreModel.GenreModel, 0, len(links))
	for _, l := range links {
		if l.Genre != nil {
			out = append(out, *l.Genre)
		}
	}
	return out
}

// DisplayGenre joins the names of the first three genres with a comma.
func (b BookModel) DisplayGenre() string {
	genres := b.Genres()
	if len(genres) > DisplayGenreLimit {
		genres = genres[:DisplayGenreLimit]
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.GenreName)
	}
	return strings.Join(names, ",")
}

// SetGenres replaces the association, numbering positions in the given order.
func (b *BookModel) SetGenres(genreIDs []uuid.UUID) {
	b.BookGenres = make([]BookGenreModel, 0, len(genreIDs))
	seen := make(map[uuid.UUID]struct{}, len(genreIDs))
	for _, id := range genreIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		b.BookGenres = append(b.BookGenres, BookGenreModel{
			BookGenreBookID:   b.BookID,
			BookGenreGenreID:  id,
			BookGenrePosition: len(b.BookGenres),
		})
	}
}

// WithGenres preloads genre links in association order.
func WithGenres(db *gorm.DB) *gorm.DB {
	return db.
		Preload("BookGenres", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("book_genre_position ASC")
		}).
		Preload("BookGenres.Genre")
}
