// Package catalog assembles the library schema and mounts its routes.
package catalog

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "locallibrary_backend/internals/databases"
	authorModel "locallibrary_backend/internals/features/catalog/authors/model"
	instanceModel "locallibrary_backend/internals/features/catalog/book_instances/model"
	bookModel "locallibrary_backend/internals/features/catalog/books/model"
	genreModel "locallibrary_backend/internals/features/catalog/genres/model"
	authModel "locallibrary_backend/internals/features/users/auth/model"
	userModel "locallibrary_backend/internals/features/users/user/model"
)

// Schema is the whole persisted shape of the service: models, foreign keys
// with their delete actions, and the permission rows.
func Schema() database.Schema {
	return database.Schema{
		Models: []interface{}{
			&userModel.UserModel{},
			&userModel.PermissionModel{},
			&userModel.UserPermissionModel{},
			&authModel.TokenBlacklistModel{},
			&genreModel.GenreModel{},
			&authorModel.AuthorModel{},
			&bookModel.BookModel{},
			&bookModel.BookGenreModel{},
			&instanceModel.BookInstanceModel{},
		},
		Relations: Relations(),
		Seeders:   []database.Seeder{SeedPermissions},
	}
}

func Relations() []database.Relation {
	return []database.Relation{
		{Table: "books", Column: "book_author_id", RefTable: "authors", RefColumn: "author_id", OnDelete: database.SetNull},
		{Table: "book_genres", Column: "book_genre_book_id", RefTable: "books", RefColumn: "book_id", OnDelete: database.Cascade},
		{Table: "book_genres", Column: "book_genre_genre_id", RefTable: "genres", RefColumn: "genre_id", OnDelete: database.Cascade},
		{Table: "book_instances", Column: "book_instance_book_id", RefTable: "books", RefColumn: "book_id", OnDelete: database.SetNull},
		{Table: "book_instances", Column: "book_instance_borrower_id", RefTable: "users", RefColumn: "id", OnDelete: database.SetNull},
		{Table: "user_permissions", Column: "user_id", RefTable: "users", RefColumn: "id", OnDelete: database.Cascade},
		{Table: "user_permissions", Column: "permission_id", RefTable: "permissions", RefColumn: "permission_id", OnDelete: database.Cascade},
	}
}

// SeedPermissions upserts the custom permissions declared by the catalog.
func SeedPermissions(tx *gorm.DB) error {
	for _, p := range instanceModel.Permissions {
		row := userModel.PermissionModel{
			PermissionCodename:    p.Codename,
			PermissionName:        p.Name,
			PermissionContentType: p.ContentType,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "permission_codename"}},
			DoUpdates: clause.AssignmentColumns([]string{"permission_name", "permission_content_type"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("upsert permission %s: %w", p.Codename, err)
		}
		log.Printf("[INFO] permission %s ready", p.Codename)
	}
	return nil
}
