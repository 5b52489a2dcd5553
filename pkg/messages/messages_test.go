package messages

import (
	"testing"
	"time"

	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatSuggestions(t *testing.T) {
	resp := &models.SuggestionsResponse{
		Suggestions: []models.LeftoverSuggestion{
			{
				Recipe:          models.Recipe{Name: "Greek Salad"},
				MatchPercentage: 100,
				Reason:          "You can make this right now with what you have",
			},
			{
				Recipe:          models.Recipe{Name: "Borscht"},
				MatchPercentage: 71.4,
				Reason:          "Only missing beets and sour cream",
				MissingNames:    []string{"beets", "sour cream"},
				Matches: []models.IngredientMatch{
					{
						RequiredName: "beef",
						MatchedName:  "pork",
						Type:         models.MatchSubstitute,
						Matched:      true,
						Note:         "substitute for beef",
					},
				},
			},
		},
		TotalSuggestions:      2,
		PantryItemsConsidered: 6,
		RecipesAnalyzed:       5,
	}

	out := FormatSuggestions(resp)

	assert.Contains(t, out, "checked 5 recipes against 6 pantry items")
	assert.Contains(t, out, "1. Greek Salad — 100% match")
	assert.Contains(t, out, "2. Borscht — 71% match")
	assert.Contains(t, out, "Missing: beets, sour cream")
	assert.Contains(t, out, "Swap: beef → pork")
}

func TestFormatSuggestionsEmpty(t *testing.T) {
	// Nothing cleared the filters vs nothing in the catalog at all
	filtered := FormatSuggestions(&models.SuggestionsResponse{RecipesAnalyzed: 5})
	assert.Contains(t, filtered, "No recipe clears the bar")

	noCatalog := FormatSuggestions(&models.SuggestionsResponse{})
	assert.Contains(t, noCatalog, "catalog is empty")
}

func TestFormatPantryItems(t *testing.T) {
	expired := time.Now().Add(-48 * time.Hour)
	soon := time.Now().Add(3*24*time.Hour + time.Hour)

	out := FormatPantryItems([]models.PantryItem{
		{Name: "rice", Quantity: 2, Unit: "cups"},
		{Name: "eggs", Quantity: 6},
		{Name: "yogurt", ExpiresAt: &expired},
		{Name: "milk", ExpiresAt: &soon},
	})

	assert.Contains(t, out, "• rice (2 cups)")
	assert.Contains(t, out, "• eggs (6)")
	assert.Contains(t, out, "• yogurt — expired")
	assert.Contains(t, out, "• milk — expires in 3d")
}
