package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Tomato", "tomato"},
		{"strips qualifier", "Fresh Tomatoes", "tomato"},
		{"strips several qualifiers", "fresh organic diced tomatoes", "tomato"},
		{"strips parenthetical", "cheddar cheese (shredded)", "cheddar cheese"},
		{"collapses ampersand", "salt & pepper", "salt pepper"},
		{"plural oes", "potatoes", "potato"},
		{"plural ies", "berries", "berry"},
		{"plain plural", "eggs", "egg"},
		{"protected word", "molasses", "molasses"},
		{"protects short words", "peas", "pea"},
		{"keeps compound names", "sweet potato", "sweet potato"},
		{"multi word", "extra virgin olive oil", "virgin olive oil"},
		{"trims", "  onion  ", "onion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeNeverEmpty(t *testing.T) {
	// Even names made entirely of qualifiers must not normalize away
	inputs := []string{"fresh", "Fresh Organic", "(diced)", "large"}
	for _, input := range inputs {
		require.NotEmpty(t, Normalize(input), "input %q", input)
	}

	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Fresh Tomatoes",
		"cheddar cheese (shredded)",
		"extra virgin olive oil",
		"frozen mixed berries",
		"fresh",
		"(organic)",
		"molasses",
		"salt & pepper",
		"Chicken Breasts",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "Normalize not idempotent for %q", input)
	}
}
