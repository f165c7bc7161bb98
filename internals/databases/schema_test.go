package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationDDL(t *testing.T) {
	rel := Relation{
		Table:    "books",
		Column:   "book_author_id",
		RefTable: "authors",
		OnDelete: SetNull,
	}

	assert.Equal(t, "fk_books_book_author_id", rel.ConstraintName())
	assert.Equal(t,
		`ALTER TABLE "books" ADD CONSTRAINT "fk_books_book_author_id" FOREIGN KEY ("book_author_id") REFERENCES "authors" ("id") ON DELETE SET NULL`,
		rel.DDL())
}

func TestRelationDDL_NamedAndDefaultAction(t *testing.T) {
	rel := Relation{
		Name:      "fk_custom",
		Table:     "book_genres",
		Column:    "book_genre_genre_id",
		RefTable:  "genres",
		RefColumn: "genre_id",
	}

	assert.Equal(t, "fk_custom", rel.ConstraintName())
	assert.Contains(t, rel.DDL(), `REFERENCES "genres" ("genre_id") ON DELETE RESTRICT`)
}

func TestSchemaMerge(t *testing.T) {
	type a struct{}
	type b struct{}
	left := Schema{Models: []interface{}{&a{}}, Relations: []Relation{{Table: "x"}}}
	right := Schema{Models: []interface{}{&b{}}, Relations: []Relation{{Table: "y"}}}

	merged := left.Merge(right)

	assert.Len(t, merged.Models, 2)
	assert.Len(t, merged.Relations, 2)
	assert.Equal(t, "x", merged.Relations[0].Table)
	assert.Equal(t, "y", merged.Relations[1].Table)
	assert.Len(t, left.Models, 1)
}
