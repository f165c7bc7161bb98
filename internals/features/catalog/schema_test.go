package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "locallibrary_backend/internals/databases"
)

func TestRelations_DeleteActions(t *testing.T) {
	actions := map[string]database.RefAction{}
	for _, rel := range Relations() {
		actions[rel.Table+"."+rel.Column] = rel.OnDelete
	}

	assert.Equal(t, database.SetNull, actions["books.book_author_id"])
	assert.Equal(t, database.SetNull, actions["book_instances.book_instance_book_id"])
	assert.Equal(t, database.SetNull, actions["book_instances.book_instance_borrower_id"])
	assert.Equal(t, database.Cascade, actions["book_genres.book_genre_book_id"])
	assert.Equal(t, database.Cascade, actions["book_genres.book_genre_genre_id"])
	assert.Equal(t, database.Cascade, actions["user_permissions.user_id"])
	assert.Equal(t, database.Cascade, actions["user_permissions.permission_id"])
}

func TestRelations_UniqueConstraintNames(t *testing.T) {
	seen := map[string]bool{}
	for _, rel := range Relations() {
		name := rel.ConstraintName()
		assert.False(t, seen[name], "duplicate constraint %s", name)
		seen[name] = true
	}
}

func TestSchema(t *testing.T) {
	s := Schema()

	assert.Len(t, s.Models, 9)
	assert.Len(t, s.Relations, len(Relations()))
	require.Len(t, s.Seeders, 1)
}
