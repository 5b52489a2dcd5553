package leftovers

import (
	"testing"
	"time"

	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testPantry(names ...string) []models.PantryItem {
	items := make([]models.PantryItem, len(names))
	for i, name := range names {
		items[i] = models.PantryItem{Name: name, AddedAt: testNow}
	}
	return items
}

func recipeWith(id string, ingredients ...string) models.Recipe {
	required := make([]models.RecipeIngredient, len(ingredients))
	for i, name := range ingredients {
		required[i] = models.RecipeIngredient{Name: name}
	}
	return models.Recipe{ID: id, Name: id, Ingredients: required, Difficulty: "easy"}
}

func TestSuggestScenario(t *testing.T) {
	// pantry = [tomato, cheddar cheese], recipe needs [tomato, cheddar
	// cheese, onion] -> 2 of 3 available, onion missing
	engine := NewEngine(0)
	pantry := []models.PantryItem{
		{Name: "tomato", Quantity: 3},
		{Name: "cheddar cheese", Quantity: 1, Unit: "lb"},
	}
	catalog := []models.Recipe{recipeWith("quesadilla", "tomato", "cheddar cheese", "onion")}

	resp, err := engine.Suggest(pantry, catalog, models.SuggestionFilters{}, testNow)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)

	suggestion := resp.Suggestions[0]
	assert.InDelta(t, 66.7, suggestion.MatchPercentage, 0.1)
	assert.Equal(t, 3, suggestion.TotalIngredients)
	assert.Equal(t, 2, suggestion.AvailableCount)
	assert.Equal(t, 1, suggestion.MissingCount)
	assert.Equal(t, []string{"onion"}, suggestion.MissingNames)
	assert.Equal(t, 2, resp.PantryItemsConsidered)
	assert.Equal(t, 1, resp.RecipesAnalyzed)
}

func TestSuggestCountInvariant(t *testing.T) {
	engine := NewEngine(0)
	pantry := testPantry("tomato", "onion", "rice", "olive oil")
	catalog := []models.Recipe{
		recipeWith("a", "tomato", "onion"),
		recipeWith("b", "rice", "chicken breast", "soy sauce"),
		recipeWith("c", "unicorn meat"),
	}

	resp, err := engine.Suggest(pantry, catalog, models.SuggestionFilters{}, testNow)
	require.NoError(t, err)

	for _, suggestion := range resp.Suggestions {
		assert.Equal(t, suggestion.TotalIngredients,
			suggestion.AvailableCount+suggestion.MissingCount,
			"recipe %s", suggestion.Recipe.ID)
		assert.GreaterOrEqual(t, suggestion.MatchPercentage, 0.0)
		assert.LessOrEqual(t, suggestion.MatchPercentage, 100.0)
	}
}

func TestSuggestOrdering(t *testing.T) {
	engine := NewEngine(0)
	pantry := testPantry("tomato", "onion", "rice")
	catalog := []models.Recipe{
		recipeWith("low", "tomato", "unicorn meat", "dragon fruit jam", "moon dust"),
		recipeWith("full", "tomato", "onion"),
		recipeWith("mid", "tomato", "onion", "chicken broth"),
	}

	resp, err := engine.Suggest(pantry, catalog, models.SuggestionFilters{}, testNow)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 3)

	for i := 1; i < len(resp.Suggestions); i++ {
		prev, cur := resp.Suggestions[i-1], resp.Suggestions[i]
		assert.GreaterOrEqual(t, prev.PriorityScore, cur.PriorityScore)
	}
	assert.Equal(t, "full", resp.Suggestions[0].Recipe.ID)
	assert.Equal(t, "mid", resp.Suggestions[1].Recipe.ID)
	assert.Equal(t, "low", resp.Suggestions[2].Recipe.ID)
}

func TestSuggestTieBreaksByTimeThenID(t *testing.T) {
	engine := NewEngine(0)
	pantry := testPantry("tomato")

	quick := recipeWith("zz-quick", "tomato")
	quick.PrepMinutes = 5
	slow := recipeWith("aa-slow", "tomato")
	slow.PrepMinutes = 45
	twin := recipeWith("bb-twin", "tomato")
	twin.PrepMinutes = 5

	resp, err := engine.Suggest(pantry, []models.Recipe{slow, quick, twin}, models.SuggestionFilters{}, testNow)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 3)

	// Same priority and match percentage: quicker first, then recipe ID
	assert.Equal(t, "bb-twin", resp.Suggestions[0].Recipe.ID)
	assert.Equal(t, "zz-quick", resp.Suggestions[1].Recipe.ID)
	assert.Equal(t, "aa-slow", resp.Suggestions[2].Recipe.ID)
}

func TestSuggestMinMatchFilter(t *testing.T) {
	engine := NewEngine(0)
	pantry := []models.PantryItem{
		{Name: "tomato", Quantity: 3},
		{Name: "cheddar cheese", Quantity: 1, Unit: "lb"},
	}
	catalog := []models.Recipe{recipeWith("quesadilla", "tomato", "cheddar cheese", "onion")}

	resp, err := engine.Suggest(pantry, catalog, models.SuggestionFilters{MinMatchPercentage: 0.9}, testNow)
	require.NoError(t, err)

	// 66.7% does not clear a 0.9 minimum
	assert.Empty(t, resp.Suggestions)
	assert.Equal(t, 0, resp.TotalSuggestions)
	assert.Equal(t, 1, resp.RecipesAnalyzed)
}

func TestSuggestMaxSuggestions(t *testing.T) {
	engine := NewEngine(0)
	pantry := testPantry("tomato", "onion", "rice", "garlic")
	catalog := []models.Recipe{
		recipeWith("eighty", "tomato", "onion", "rice", "garlic", "saffron"),
		recipeWith("full", "tomato", "onion", "rice", "garlic"),
	}

	resp, err := engine.Suggest(pantry, catalog, models.SuggestionFilters{MaxSuggestions: 1}, testNow)
	require.NoError(t, err)

	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "full", resp.Suggestions[0].Recipe.ID)
}

func TestSuggestEmptyCatalog(t *testing.T) {
	engine := NewEngine(0)

	resp, err := engine.Suggest(testPantry("tomato"), nil, models.SuggestionFilters{}, testNow)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalSuggestions)
	assert.Equal(t, 0, resp.RecipesAnalyzed)
	assert.Empty(t, resp.Suggestions)
}

func TestSuggestSkipsEmptyRecipes(t *testing.T) {
	engine := NewEngine(0)
	catalog := []models.Recipe{{ID: "hollow", Name: "hollow"}}

	resp, err := engine.Suggest(testPantry("tomato"), catalog, models.SuggestionFilters{}, testNow)
	require.NoError(t, err)

	// A recipe with no ingredients cannot be scored
	assert.Equal(t, 0, resp.RecipesAnalyzed)
	assert.Empty(t, resp.Suggestions)
}

func TestSuggestInvalidFilters(t *testing.T) {
	engine := NewEngine(0)

	_, err := engine.Suggest(nil, nil, models.SuggestionFilters{MaxSuggestions: -1}, testNow)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.Suggest(nil, nil, models.SuggestionFilters{MinMatchPercentage: 1.5}, testNow)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.Suggest(nil, nil, models.SuggestionFilters{MaxPrepMinutes: -10}, testNow)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSuggestBlankIngredientName(t *testing.T) {
	engine := NewEngine(0)
	catalog := []models.Recipe{recipeWith("broken", "tomato", "  ")}

	_, err := engine.Suggest(testPantry("tomato"), catalog, models.SuggestionFilters{}, testNow)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSuggestRecipeFilters(t *testing.T) {
	engine := NewEngine(0)
	pantry := testPantry("tomato")

	slow := recipeWith("slow", "tomato")
	slow.CookMinutes = 90
	hard := recipeWith("hard", "tomato")
	hard.Difficulty = "hard"
	breakfast := recipeWith("breakfast", "tomato")
	breakfast.MealTypes = []string{"breakfast"}
	vegan := recipeWith("vegan", "tomato")
	vegan.DietaryTags = []string{"vegan"}

	catalog := []models.Recipe{slow, hard, breakfast, vegan}

	resp, err := engine.Suggest(pantry, catalog, models.SuggestionFilters{
		MaxCookMinutes:      30,
		Difficulties:        []string{"easy"},
		MealTypes:           []string{"dinner", "breakfast"},
		DietaryRestrictions: []string{"vegan"},
	}, testNow)
	require.NoError(t, err)

	// Only "vegan" survives: slow exceeds the cook limit, hard fails the
	// difficulty filter, breakfast lacks the vegan tag. But vegan has no
	// meal types, so it fails the meal type filter too.
	assert.Empty(t, resp.Suggestions)

	vegan.MealTypes = []string{"dinner"}
	resp, err = engine.Suggest(pantry, []models.Recipe{slow, hard, breakfast, vegan}, models.SuggestionFilters{
		MaxCookMinutes:      30,
		Difficulties:        []string{"easy"},
		MealTypes:           []string{"dinner", "breakfast"},
		DietaryRestrictions: []string{"vegan"},
	}, testNow)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "vegan", resp.Suggestions[0].Recipe.ID)
}

func TestSuggestExcludeExpired(t *testing.T) {
	engine := NewEngine(0)
	gone := testNow.Add(-24 * time.Hour)
	pantry := []models.PantryItem{
		{Name: "chicken breast", ExpiresAt: &gone},
		{Name: "rice"},
	}
	catalog := []models.Recipe{recipeWith("chicken-rice", "chicken breast", "rice")}

	resp, err := engine.Suggest(pantry, catalog, models.SuggestionFilters{ExcludeExpired: true}, testNow)
	require.NoError(t, err)
	assert.Empty(t, resp.Suggestions)

	resp, err = engine.Suggest(pantry, catalog, models.SuggestionFilters{}, testNow)
	require.NoError(t, err)
	assert.Len(t, resp.Suggestions, 1)
}

func TestSuggestExcludeExpiredPrefersFreshAlternative(t *testing.T) {
	engine := NewEngine(0)
	gone := testNow.Add(-24 * time.Hour)
	pantry := []models.PantryItem{
		{Name: "tomatoes", ExpiresAt: &gone},
		{Name: "tomato paste"},
	}
	catalog := []models.Recipe{recipeWith("sauce", "tomato")}

	// The exact match is expired, but a fuzzy one is still fresh; the
	// recipe must fall back to it instead of being dropped
	resp, err := engine.Suggest(pantry, catalog, models.SuggestionFilters{ExcludeExpired: true}, testNow)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)

	match := resp.Suggestions[0].Matches[0]
	assert.Equal(t, models.MatchFuzzy, match.Type)
	assert.Equal(t, "tomato paste", match.MatchedName)
}

func TestSuggestPrioritizeExpiring(t *testing.T) {
	engine := NewEngine(3)
	soon := testNow.Add(24 * time.Hour)
	pantry := []models.PantryItem{
		{Name: "milk", ExpiresAt: &soon},
		{Name: "rice"},
	}
	urgent := recipeWith("use-milk", "milk")
	relaxed := recipeWith("use-rice", "rice")

	resp, err := engine.Suggest(pantry, []models.Recipe{relaxed, urgent},
		models.SuggestionFilters{PrioritizeExpiring: true}, testNow)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 2)

	// Both are 100% matches; the expiring-milk recipe gets the bonus
	assert.Equal(t, "use-milk", resp.Suggestions[0].Recipe.ID)
	assert.Greater(t, resp.Suggestions[0].PriorityScore, resp.Suggestions[1].PriorityScore)
	assert.Contains(t, resp.Suggestions[0].Reason, "expire soon")
}

func TestSuggestFullMatchReason(t *testing.T) {
	engine := NewEngine(0)
	pantry := testPantry("tomato", "onion")

	resp, err := engine.Suggest(pantry, []models.Recipe{recipeWith("full", "tomato", "onion")},
		models.SuggestionFilters{}, testNow)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)

	suggestion := resp.Suggestions[0]
	assert.Equal(t, 100.0, suggestion.MatchPercentage)
	assert.Contains(t, suggestion.Reason, "right now")
}

func TestSuggestMissingReasonNamesIngredients(t *testing.T) {
	engine := NewEngine(0)
	pantry := testPantry("tomato", "onion", "rice")

	resp, err := engine.Suggest(pantry,
		[]models.Recipe{recipeWith("nearly", "tomato", "onion", "rice", "saffron")},
		models.SuggestionFilters{}, testNow)
	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)

	assert.Contains(t, resp.Suggestions[0].Reason, "saffron")
}
