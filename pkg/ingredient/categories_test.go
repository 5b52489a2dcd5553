package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Fresh Tomatoes", CategoryProduce},
		{"cheddar cheese", CategoryDairy},
		{"goat cheese", CategoryDairy}, // substring rule
		{"chicken breast", CategoryMeat},
		{"olive oil", CategoryOils},
		{"basil", CategoryHerbs},
		{"ground beef", CategoryMeat},
		{"spaghetti", CategoryGrains},
		{"unicorn meat", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.input))
		})
	}
}

func TestInterchangeable(t *testing.T) {
	assert.True(t, Interchangeable(CategoryOils))
	assert.True(t, Interchangeable(CategoryHerbs))
	assert.False(t, Interchangeable(CategoryProduce))
	assert.False(t, Interchangeable(CategoryOther))
}

func TestSubstitutesFor(t *testing.T) {
	subs := SubstitutesFor("butter")
	assert.NotEmpty(t, subs)
	for _, sub := range subs {
		assert.Equal(t, "butter", sub.Original)
	}

	assert.Empty(t, SubstitutesFor("unicorn meat"))
}

func TestSubstituteTableIsNormalized(t *testing.T) {
	// Keys and substitute names must already be in normalized form so
	// the matcher can look them up in the pantry directly
	for original, subs := range substituteTable {
		assert.Equal(t, Normalize(original), original)
		for _, sub := range subs {
			assert.Equal(t, original, sub.Original)
			assert.Equal(t, Normalize(sub.Substitute), sub.Substitute)
			assert.Greater(t, sub.Confidence, 0.0)
			assert.LessOrEqual(t, sub.Confidence, 1.0)
			assert.Greater(t, sub.Ratio, 0.0)
		}
	}
}
