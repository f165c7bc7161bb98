package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authorModel "locallibrary_backend/internals/features/catalog/authors/model"
	instanceModel "locallibrary_backend/internals/features/catalog/book_instances/model"
	bookModel "locallibrary_backend/internals/features/catalog/books/model"
	genreModel "locallibrary_backend/internals/features/catalog/genres/model"
	"locallibrary_backend/internals/helpers/dbtime"
)

type CatalogSeed struct {
	Genres  []string     `json:"genres"`
	Authors []AuthorSeed `json:"authors"`
}

type AuthorSeed struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth string     `json:"date_of_birth"`
	DateOfDeath string     `json:"date_of_death"`
	Books       []BookSeed `json:"books"`
}

type BookSeed struct {
	Title     string         `json:"title"`
	Summary   string         `json:"summary"`
	ISBN      string         `json:"isbn"`
	Genres    []string       `json:"genres"`
	Instances []InstanceSeed `json:"instances"`
}

type InstanceSeed struct {
	Imprint string `json:"imprint"`
	Status  string `json:"status"`
	DueBack string `json:"due_back"`
}

// SeedCatalogFromJSON loads genres, authors, books and copies. Rows that
// already exist (genre by name, author by full name, book by ISBN) are skipped.
func SeedCatalogFromJSON(db *gorm.DB, filePath string) {
	log.Println("[SEED] reading catalog:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[SEED] read JSON failed: %v", err)
	}

	var input CatalogSeed
	if err := json.Unmarshal(file, &input); err != nil {
		log.Fatalf("[SEED] decode JSON failed: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		genreIDs, err := seedGenres(tx, input.Genres)
		if err != nil {
			return err
		}
		for _, a := range input.Authors {
			if err := seedAuthor(tx, a, genreIDs); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		log.Printf("[SEED] catalog failed: %v", err)
		return
	}
	log.Println("[SEED] catalog done")
}

func seedGenres(tx *gorm.DB, names []string) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(names))
	for _, name := range names {
		var g genreModel.GenreModel
		err := tx.Where("genre_name = ?", name).First(&g).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			g = genreModel.GenreModel{GenreName: name}
			err = tx.Create(&g).Error
			if err == nil {
				log.Printf("[SEED] genre '%s' inserted", name)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("genre %q: %w", name, err)
		}
		ids[name] = g.GenreID
	}
	return ids, nil
}

func seedAuthor(tx *gorm.DB, data AuthorSeed, genreIDs map[string]uuid.UUID) error {
	var author authorModel.AuthorModel
	err := tx.Where("author_first_name = ? AND author_last_name = ?", data.FirstName, data.LastName).
		First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		author = authorModel.AuthorModel{AuthorFirstName: data.FirstName, AuthorLastName: data.LastName}
		if author.AuthorDateOfBirth, err = optionalDate(data.DateOfBirth); err != nil {
			return fmt.Errorf("author %s %s: %w", data.FirstName, data.LastName, err)
		}
		if author.AuthorDateOfDeath, err = optionalDate(data.DateOfDeath); err != nil {
			return fmt.Errorf("author %s %s: %w", data.FirstName, data.LastName, err)
		}
		err = tx.Create(&author).Error
		if err == nil {
			log.Printf("[SEED] author '%s' inserted", author.String())
		}
	}
	if err != nil {
		return fmt.Errorf("author %s %s: %w", data.FirstName, data.LastName, err)
	}

	for _, b := range data.Books {
		if err := seedBook(tx, author.AuthorID, b, genreIDs); err != nil {
			return err
		}
	}
	return nil
}

func seedBook(tx *gorm.DB, authorID uuid.UUID, data BookSeed, genreIDs map[string]uuid.UUID) error {
	var count int64
	if err := tx.Model(&bookModel.BookModel{}).Where("book_isbn = ?", data.ISBN).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("[SEED] book '%s' already exists, skipped", data.ISBN)
		return nil
	}

	book := bookModel.BookModel{
		BookTitle:    data.Title,
		BookSummary:  data.Summary,
		BookISBN:     data.ISBN,
		BookAuthorID: &authorID,
	}
	if err := tx.Omit(clause.Associations).Create(&book).Error; err != nil {
		return fmt.Errorf("book %q: %w", data.Title, err)
	}

	ids := make([]uuid.UUID, 0, len(data.Genres))
	for _, name := range data.Genres {
		id, ok := genreIDs[name]
		if !ok {
			return fmt.Errorf("book %q: genre %q is not in the genre list", data.Title, name)
		}
		ids = append(ids, id)
	}
	book.SetGenres(ids)
	if len(book.BookGenres) > 0 {
		if err := tx.Create(&book.BookGenres).Error; err != nil {
			return fmt.Errorf("book %q genres: %w", data.Title, err)
		}
	}
	log.Printf("[SEED] book '%s' inserted", data.Title)

	for _, in := range data.Instances {
		status, ok := instanceModel.ParseLoanStatus(in.Status)
		if !ok {
			return fmt.Errorf("book %q: invalid status %q", data.Title, in.Status)
		}
		due, err := optionalDate(in.DueBack)
		if err != nil {
			return fmt.Errorf("book %q copy: %w", data.Title, err)
		}
		copyRow := instanceModel.BookInstanceModel{
			BookInstanceBookID:  &book.BookID,
			BookInstanceImprint: in.Imprint,
			BookInstanceStatus:  status,
			BookInstanceDueBack: due,
		}
		if err := tx.Omit("Book").Create(&copyRow).Error; err != nil {
			return fmt.Errorf("book %q copy: %w", data.Title, err)
		}
	}
	return nil
}

func optionalDate(raw string) (*datatypes.Date, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := dbtime.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	d := dbtime.ToDate(t)
	return &d, nil
}
