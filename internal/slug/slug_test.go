package slug_test

import (
	"strings"
	"testing"

	"github.com/openvolunteering/orghub/internal/slug"
	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "test organization", "test-organization"},
		{"uppercase", "Test Organization", "test-organization"},
		{"accented", "Associação de Voluntários", "associacao-de-voluntarios"},
		{"punctuation", "St. Mary's School!", "st-mary-s-school"},
		{"collapses separators", "a  --  b", "a-b"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.in, 100))
		})
	}
}

func TestMakeTruncates(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := slug.Make(long, 100)
	assert.Len(t, got, 100)

	// Truncation must not leave a trailing hyphen.
	boundary := strings.Repeat("a", 99) + " " + strings.Repeat("b", 50)
	got = slug.Make(boundary, 100)
	assert.False(t, strings.HasSuffix(got, "-"))
}
