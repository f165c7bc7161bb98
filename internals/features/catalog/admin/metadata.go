// Package admin describes the catalog entities for generic admin frontends.
package admin

import (
	"sort"

	authorModel "locallibrary_backend/internals/features/catalog/authors/model"
	instanceModel "locallibrary_backend/internals/features/catalog/book_instances/model"
	bookModel "locallibrary_backend/internals/features/catalog/books/model"
	genreModel "locallibrary_backend/internals/features/catalog/genres/model"
)

// Field kinds understood by admin frontends.
const (
	KindString   = "string"
	KindText     = "text"
	KindDate     = "date"
	KindUUID     = "uuid"
	KindChoice   = "choice"
	KindRelation = "relation"
	KindMany     = "many"
)

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FieldMeta struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Kind      string   `json:"kind"`
	MaxLength int      `json:"max_length,omitempty"`
	Required  bool     `json:"required"`
	ReadOnly  bool     `json:"read_only,omitempty"`
	HelpText  string   `json:"help_text,omitempty"`
	Default   string   `json:"default,omitempty"`
	Relation  string   `json:"relation,omitempty"`
	Choices   []Choice `json:"choices,omitempty"`
}

type EntityMeta struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Table       string      `json:"table"`
	Ordering    string      `json:"ordering,omitempty"`
	Permissions []Choice    `json:"permissions,omitempty"`
	Fields      []FieldMeta `json:"fields"`
}

// field declares a field whose label/help are message keys derived from entity and name.
func field(entity, name, kind string, maxLen int, required bool) FieldMeta {
	return FieldMeta{
		Name:      name,
		Label:     "field." + entity + "." + name + ".label",
		Kind:      kind,
		MaxLength: maxLen,
		Required:  required,
	}
}

func helpField(entity, name, kind string, maxLen int, required bool) FieldMeta {
	f := field(entity, name, kind, maxLen, required)
	f.HelpText = "field." + entity + "." + name + ".help"
	return f
}

// declared holds every entity with message keys in place of text.
func declared() []EntityMeta {
	statusChoices := make([]Choice, 0, len(instanceModel.LoanStatuses))
	for _, s := range instanceModel.LoanStatuses {
		statusChoices = append(statusChoices, Choice{Value: string(s), Label: "status." + string(s)})
	}
	status := helpField("book_instance", "status", KindChoice, 1, false)
	status.Default = string(instanceModel.StatusMaintenance)
	status.Choices = statusChoices

	id := helpField("book_instance", "id", KindUUID, 0, false)
	id.ReadOnly = true

	permissions := make([]Choice, 0, len(instanceModel.Permissions))
	for _, p := range instanceModel.Permissions {
		permissions = append(permissions, Choice{Value: p.Codename, Label: "permission." + p.Codename})
	}

	bookAuthor := field("book", "author_id", KindRelation, 0, false)
	bookAuthor.Relation = "author"
	genres := helpField("book", "genre_ids", KindMany, 0, false)
	genres.Relation = "genre"
	instanceBook := field("book_instance", "book_id", KindRelation, 0, false)
	instanceBook.Relation = "book"
	borrower := field("book_instance", "borrower_id", KindRelation, 0, false)
	borrower.Relation = "user"

	return []EntityMeta{
		{
			Name:  "genre",
			Label: "entity.genre",
			Table: genreModel.GenreModel{}.TableName(),
			Fields: []FieldMeta{
				helpField("genre", "name", KindString, genreModel.GenreNameMaxLen, true),
			},
		},
		{
			Name:     "author",
			Label:    "entity.author",
			Table:    authorModel.AuthorModel{}.TableName(),
			Ordering: "last_name, first_name",
			Fields: []FieldMeta{
				field("author", "first_name", KindString, authorModel.AuthorNameMaxLen, true),
				field("author", "last_name", KindString, authorModel.AuthorNameMaxLen, true),
				field("author", "date_of_birth", KindDate, 0, false),
				field("author", "date_of_death", KindDate, 0, false),
			},
		},
		{
			Name:  "book",
			Label: "entity.book",
			Table: bookModel.BookModel{}.TableName(),
			Fields: []FieldMeta{
				field("book", "title", KindString, bookModel.BookTitleMaxLen, true),
				bookAuthor,
				helpField("book", "summary", KindText, bookModel.BookSummaryMaxLen, true),
				helpField("book", "isbn", KindString, bookModel.BookISBNMaxLen, true),
				genres,
			},
		},
		{
			Name:        "book_instance",
			Label:       "entity.book_instance",
			Table:       instanceModel.BookInstanceModel{}.TableName(),
			Ordering:    "due_back",
			Permissions: permissions,
			Fields: []FieldMeta{
				id,
				instanceBook,
				field("book_instance", "imprint", KindString, instanceModel.BookInstanceImprintMaxLen, true),
				field("book_instance", "due_back", KindDate, 0, false),
				status,
				borrower,
			},
		},
	}
}

// Registry is the translated view of the declared entities.
type Registry struct {
	entities []EntityMeta
}

func NewRegistry() *Registry {
	return &Registry{entities: declared()}
}

// Names lists entity names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.entities))
	for _, e := range r.entities {
		out = append(out, e.Name)
	}
	return out
}

// Entity returns one entity translated with t.
func (r *Registry) Entity(name string, t func(key string, params ...string) string) (EntityMeta, bool) {
	for _, e := range r.entities {
		if e.Name == name {
			return translate(e, t), true
		}
	}
	return EntityMeta{}, false
}

// All returns every entity translated with t, sorted by name.
func (r *Registry) All(t func(key string, params ...string) string) []EntityMeta {
	out := make([]EntityMeta, 0, len(r.entities))
	for _, e := range r.entities {
		out = append(out, translate(e, t))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func translate(e EntityMeta, t func(key string, params ...string) string) EntityMeta {
	out := e
	out.Label = t(e.Label)
	out.Fields = make([]FieldMeta, len(e.Fields))
	for i, f := range e.Fields {
		f.Label = t(f.Label)
		if f.HelpText != "" {
			f.HelpText = t(f.HelpText)
		}
		if len(f.Choices) > 0 {
			choices := make([]Choice, len(f.Choices))
			for j, c := range f.Choices {
				choices[j] = Choice{Value: c.Value, Label: t(c.Label)}
			}
			f.Choices = choices
		}
		out.Fields[i] = f
	}
	if len(e.Permissions) > 0 {
		out.Permissions = make([]Choice, len(e.Permissions))
		for i, p := range e.Permissions {
			out.Permissions[i] = Choice{Value: p.Value, Label: t(p.Label)}
		}
	}
	return out
}
