package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Science   Fiction ", "Science Fiction"},
		{"French\tPoetry\n", "French Poetry"},
		{"Béranger", "Béranger"},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanText(tc.in), "%q", tc.in)
	}
}

func TestCleanBlock(t *testing.T) {
	assert.Equal(t, "line one\n\nline  two", CleanBlock("\n line one\n\nline  two \n"))
	assert.Equal(t, "café", CleanBlock("café"))
}
