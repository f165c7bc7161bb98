package helper

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanText trims, collapses inner whitespace runs to one space and
// composes the text to NFC, so "é" typed as e + U+0301 and as U+00E9
// store the same bytes.
func CleanText(s string) string {
	return norm.NFC.String(strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " "))
}

// CleanBlock is CleanText for multi-line fields: line breaks survive,
// only the ends are trimmed.
func CleanBlock(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
