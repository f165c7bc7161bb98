package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
)

// RefAction is the ON DELETE action of a foreign key.
type RefAction string

const (
	SetNull  RefAction = "SET NULL"
	Cascade  RefAction = "CASCADE"
	Restrict RefAction = "RESTRICT"
)

// Relation declares one foreign key. Nothing is inferred from struct tags.
type Relation struct {
	Name      string
	Table     string
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  RefAction
}

func (r Relation) ConstraintName() string {
	if r.Name != "" {
		return r.Name
	}
	return "fk_" + r.Table + "_" + r.Column
}

func (r Relation) DDL() string {
	refCol := r.RefColumn
	if refCol == "" {
		refCol = "id"
	}
	action := r.OnDelete
	if action == "" {
		action = Restrict
	}
	return fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s",
		quoteIdent(r.Table), quoteIdent(r.ConstraintName()), quoteIdent(r.Column),
		quoteIdent(r.RefTable), quoteIdent(refCol), action)
}

// Seeder runs after migration and must be idempotent.
type Seeder func(tx *gorm.DB) error

// Schema is the full persisted shape, built explicitly and registered once at startup.
type Schema struct {
	Models    []interface{}
	Relations []Relation
	Seeders   []Seeder
}

func (s Schema) Merge(other Schema) Schema {
	return Schema{
		Models:    append(append([]interface{}{}, s.Models...), other.Models...),
		Relations: append(append([]Relation{}, s.Relations...), other.Relations...),
		Seeders:   append(append([]Seeder{}, s.Seeders...), other.Seeders...),
	}
}

// Register migrates every model, then creates missing foreign keys and runs the seeders.
func Register(db *gorm.DB, s Schema) error {
	log.Printf("[INFO] Registering schema: %d models, %d relations", len(s.Models), len(s.Relations))

	if err := db.AutoMigrate(s.Models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, rel := range s.Relations {
		var exists bool
		if err := db.Raw(`SELECT EXISTS(SELECT 1 FROM pg_constraint WHERE conname = ?)`, rel.ConstraintName()).
			Scan(&exists).Error; err != nil {
			return fmt.Errorf("check constraint %s: %w", rel.ConstraintName(), err)
		}
		if exists {
			continue
		}
		if err := db.Exec(rel.DDL()).Error; err != nil {
			return fmt.Errorf("create constraint %s: %w", rel.ConstraintName(), err)
		}
		log.Printf("[INFO] FK %s created (ON DELETE %s)", rel.ConstraintName(), rel.OnDelete)
	}

	for i, seed := range s.Seeders {
		if err := db.Transaction(seed); err != nil {
			return fmt.Errorf("schema seeder #%d: %w", i, err)
		}
	}
	return nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
