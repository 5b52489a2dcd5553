package leftovers

import (
	"fmt"
	"strings"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
)

// Engine computes leftover suggestions from already-materialized pantry
// and recipe data. It holds no mutable state, so one Engine may serve
// concurrent requests.
type Engine struct {
	expiringSoonDays int
	logger           *logger.Logger
}

// NewEngine creates a suggestion engine. expiringSoonDays controls the
// "expiring soon" window; zero selects the default.
func NewEngine(expiringSoonDays int) *Engine {
	if expiringSoonDays <= 0 {
		expiringSoonDays = DefaultExpiringSoonDays
	}
	return &Engine{
		expiringSoonDays: expiringSoonDays,
		logger:           logger.New("leftovers"),
	}
}

// Suggest runs one full suggestion pass: annotate the pantry, match every
// candidate recipe against it, score, filter, rank, and truncate.
// An empty catalog or a catalog where everything is filtered out is not
// an error; both produce an empty suggestion list. Invalid filters or a
// recipe with a blank required ingredient reject the whole request with
// ErrInvalidInput.
func (e *Engine) Suggest(items []models.PantryItem, recipes []models.Recipe, filters models.SuggestionFilters, now time.Time) (*models.SuggestionsResponse, error) {
	started := time.Now()

	if err := validateFilters(filters); err != nil {
		return nil, err
	}
	if err := validateRecipes(recipes); err != nil {
		return nil, err
	}

	pantry := AnnotatePantry(items, now, e.expiringSoonDays)

	suggestions := make([]models.LeftoverSuggestion, 0, len(recipes))
	analyzed := 0
	for _, recipe := range recipes {
		// A recipe with no ingredients cannot be scored
		if len(recipe.Ingredients) == 0 {
			continue
		}
		analyzed++

		if !passesRecipeFilters(recipe, filters) {
			continue
		}

		matches := make([]models.IngredientMatch, 0, len(recipe.Ingredients))
		matchedIdx := make([]int, 0, len(recipe.Ingredients))
		for _, required := range recipe.Ingredients {
			match, idx := MatchIngredient(required, pantry, filters.AllowSubstitutes)
			matches = append(matches, match)
			matchedIdx = append(matchedIdx, idx)
		}

		if filters.ExcludeExpired && !rematchExpired(recipe.Ingredients, matches, matchedIdx, pantry, filters.AllowSubstitutes) {
			continue
		}

		suggestion := scoreRecipe(recipe, matches, matchedIdx, pantry, filters.PrioritizeExpiring)

		if suggestion.MatchPercentage < filters.MinMatchPercentage*100 {
			continue
		}

		suggestions = append(suggestions, suggestion)
	}

	rankSuggestions(suggestions)

	if filters.MaxSuggestions > 0 && len(suggestions) > filters.MaxSuggestions {
		suggestions = suggestions[:filters.MaxSuggestions]
	}

	e.logger.Debug("Analyzed %d recipes against %d pantry items, kept %d suggestions",
		analyzed, len(pantry), len(suggestions))

	return &models.SuggestionsResponse{
		Suggestions:           suggestions,
		TotalSuggestions:      len(suggestions),
		PantryItemsConsidered: len(pantry),
		RecipesAnalyzed:       analyzed,
		MinMatchPercentage:    filters.MinMatchPercentage,
		GeneratedAt:           now,
		Filters:               filters,
		Metrics: &models.SuggestionMetrics{
			ProcessingMs: time.Since(started).Milliseconds(),
		},
	}, nil
}

// validateFilters checks the documented ranges from the filters contract
func validateFilters(filters models.SuggestionFilters) error {
	if filters.MaxSuggestions < 0 {
		return fmt.Errorf("%w: max_suggestions must not be negative", ErrInvalidInput)
	}
	if filters.MinMatchPercentage < 0 || filters.MinMatchPercentage > 1 {
		return fmt.Errorf("%w: min_match_percentage must be between 0 and 1", ErrInvalidInput)
	}
	if filters.MaxPrepMinutes < 0 || filters.MaxCookMinutes < 0 {
		return fmt.Errorf("%w: time limits must not be negative", ErrInvalidInput)
	}
	return nil
}

// validateRecipes rejects catalogs containing blank required ingredient
// names; a blank requirement must fail the request, not silently match.
func validateRecipes(recipes []models.Recipe) error {
	for _, recipe := range recipes {
		for _, required := range recipe.Ingredients {
			if strings.TrimSpace(required.Name) == "" {
				return fmt.Errorf("%w: recipe %q has a blank ingredient name", ErrInvalidInput, recipe.Name)
			}
		}
	}
	return nil
}

// passesRecipeFilters applies the recipe-level constraints that do not
// depend on matching: time limits, difficulty, meal type, dietary tags.
func passesRecipeFilters(recipe models.Recipe, filters models.SuggestionFilters) bool {
	if filters.MaxPrepMinutes > 0 && recipe.PrepMinutes > filters.MaxPrepMinutes {
		return false
	}
	if filters.MaxCookMinutes > 0 && recipe.CookMinutes > filters.MaxCookMinutes {
		return false
	}
	if len(filters.Difficulties) > 0 && !containsFold(filters.Difficulties, recipe.Difficulty) {
		return false
	}
	if len(filters.MealTypes) > 0 && !intersectsFold(filters.MealTypes, recipe.MealTypes) {
		return false
	}
	// Every dietary restriction must be satisfied by the recipe's tags
	for _, restriction := range filters.DietaryRestrictions {
		if !containsFold(recipe.DietaryTags, restriction) {
			return false
		}
	}
	return true
}

// rematchExpired swaps matches that landed on an expired pantry item for
// a fresh alternative when one exists, so a recipe is only dropped when
// some required ingredient can be satisfied by nothing but expired items.
// It reports false in that case; matches and matchedIdx are updated in
// place otherwise.
func rematchExpired(required []models.RecipeIngredient, matches []models.IngredientMatch, matchedIdx []int, pantry []models.PantryIngredient, allowSubstitutes bool) bool {
	var fresh []models.PantryIngredient
	var freshToFull []int

	for i, idx := range matchedIdx {
		if idx < 0 || !pantry[idx].Expired {
			continue
		}

		if fresh == nil {
			fresh = make([]models.PantryIngredient, 0, len(pantry))
			freshToFull = make([]int, 0, len(pantry))
			for j, p := range pantry {
				if !p.Expired {
					fresh = append(fresh, p)
					freshToFull = append(freshToFull, j)
				}
			}
		}

		match, freshIdx := MatchIngredient(required[i], fresh, allowSubstitutes)
		if freshIdx < 0 {
			return false
		}
		matches[i] = match
		matchedIdx[i] = freshToFull[freshIdx]
	}

	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func intersectsFold(a, b []string) bool {
	for _, s := range a {
		if containsFold(b, s) {
			return true
		}
	}
	return false
}
