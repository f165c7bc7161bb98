package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	genreModel "locallibrary_backend/internals/features/catalog/genres/model"
	"locallibrary_backend/internals/helpers/urls"
)

func withGenres(names ...string) BookModel {
	b := BookModel{BookID: uuid.New(), BookTitle: "Dune"}
	for i, n := range names {
		g := genreModel.GenreModel{GenreID: uuid.New(), GenreName: n}
		b.BookGenres = append(b.BookGenres, BookGenreModel{
			BookGenreBookID:   b.BookID,
			BookGenreGenreID:  g.GenreID,
			BookGenrePosition: i,
			Genre:             &g,
		})
	}
	return b
}

func TestDisplayGenre(t *testing.T) {
	assert.Equal(t, "", BookModel{}.DisplayGenre())
	assert.Equal(t, "Fantasy", withGenres("Fantasy").DisplayGenre())
	assert.Equal(t, "A,B,C", withGenres("A", "B", "C", "D", "E").DisplayGenre())
}

func TestDisplayGenre_UsesAssociationOrder(t *testing.T) {
	b := withGenres("Zeta", "Alpha", "Mu")
	// loaded out of order; positions decide
	b.BookGenres[0], b.BookGenres[2] = b.BookGenres[2], b.BookGenres[0]

	assert.Equal(t, "Zeta,Alpha,Mu", b.DisplayGenre())
}

func TestGenres_SkipsUnloadedLinks(t *testing.T) {
	b := withGenres("Poetry", "Drama")
	b.BookGenres[1].Genre = nil

	got := b.Genres()

	require.Len(t, got, 1)
	assert.Equal(t, "Poetry", got[0].GenreName)
}

func TestSetGenres(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	book := BookModel{BookID: uuid.New()}

	book.SetGenres([]uuid.UUID{b, a, b, c})

	require.Len(t, book.BookGenres, 3)
	for i, want := range []uuid.UUID{b, a, c} {
		assert.Equal(t, want, book.BookGenres[i].BookGenreGenreID)
		assert.Equal(t, i, book.BookGenres[i].BookGenrePosition)
		assert.Equal(t, book.BookID, book.BookGenres[i].BookGenreBookID)
	}

	book.SetGenres(nil)
	assert.Empty(t, book.BookGenres)
}

func TestBookStringAndURL(t *testing.T) {
	reg := urls.NewRegistry()
	reg.Add(urls.BookDetail, "/api/public/catalog/books/:id")
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	b := BookModel{BookID: id, BookTitle: "Dune"}

	assert.Equal(t, "Dune", b.String())

	got, err := b.AbsoluteURL(reg)
	require.NoError(t, err)
	assert.Equal(t, "/api/public/catalog/books/123e4567-e89b-12d3-a456-426614174000", got)

	_, err = b.AbsoluteURL(urls.NewRegistry())
	assert.Error(t, err)
}
