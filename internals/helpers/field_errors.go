package helper

import (
	"strings"
)

// FieldError is one validation failure attached to a field. Key is a message key,
// translated at the response boundary.
type FieldError struct {
	Field  string
	Key    string
	Params []string
}

// FieldErrors collects every failure of a single record acceptance.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Key)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *FieldErrors) Add(field, key string, params ...string) {
	*e = append(*e, FieldError{Field: field, Key: key, Params: params})
}

func (e FieldErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// OrNil keeps a nil FieldErrors from becoming a non-nil error interface.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Render groups messages per field using the given translate func.
func (e FieldErrors) Render(translate func(key string, params ...string) string) map[string][]string {
	out := make(map[string][]string, len(e))
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], translate(fe.Key, fe.Params...))
	}
	return out
}
