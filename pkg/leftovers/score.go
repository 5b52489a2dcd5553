package leftovers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/korjavin/pantrychef/pkg/models"
)

// Bonus weights for the priority score. Match percentage dominates; the
// bonuses are bounded tie-breakers and can never invert a large match gap.
const (
	difficultyBonusEasy   = 5.0
	difficultyBonusMedium = 2.5
	expiringItemBonus     = 3.0 // per matched soon-to-expire ingredient
	expiringBonusCap      = 9.0
	urgencyBonusMax       = 3.0 // scaled by how stale the soonest item is

	missingNamesLimit = 2 // name the gaps only when this few are missing
)

// scoreRecipe builds the aggregate suggestion for one recipe from its
// per-ingredient matches. matchedIdx holds, per match, the index of the
// matched pantry ingredient or -1. The recipe must have at least one
// ingredient; the engine excludes empty recipes before scoring.
func scoreRecipe(recipe models.Recipe, matches []models.IngredientMatch, matchedIdx []int, pantry []models.PantryIngredient, prioritizeExpiring bool) models.LeftoverSuggestion {
	total := len(matches)
	available := 0
	var missingNames []string
	for _, m := range matches {
		if m.Matched {
			available++
		} else {
			missingNames = append(missingNames, m.RequiredName)
		}
	}

	matchPercentage := 100 * float64(available) / float64(total)

	expiringBonus := 0.0
	urgencyBonus := 0.0
	if prioritizeExpiring {
		worstFreshness := 1.0
		for _, idx := range matchedIdx {
			if idx < 0 {
				continue
			}
			p := pantry[idx]
			if p.ExpiringSoon {
				expiringBonus += expiringItemBonus
			}
			if !p.Expired && p.Freshness < worstFreshness {
				worstFreshness = p.Freshness
			}
		}
		if expiringBonus > expiringBonusCap {
			expiringBonus = expiringBonusCap
		}
		// The closer the soonest matched ingredient is to expiring,
		// the more urgent the recipe.
		urgencyBonus = urgencyBonusMax * (1 - worstFreshness)
	}

	priority := matchPercentage + difficultyBonus(recipe.Difficulty) + expiringBonus + urgencyBonus

	return models.LeftoverSuggestion{
		Recipe:           recipe,
		Matches:          matches,
		MatchPercentage:  matchPercentage,
		TotalIngredients: total,
		AvailableCount:   available,
		MissingCount:     total - available,
		MissingNames:     missingNames,
		Reason:           suggestionReason(matchPercentage, missingNames, expiringBonus > 0),
		PriorityScore:    priority,
	}
}

// difficultyBonus nudges easier recipes ahead when match percentages tie
func difficultyBonus(difficulty string) float64 {
	switch strings.ToLower(difficulty) {
	case "easy", "":
		return difficultyBonusEasy
	case "medium":
		return difficultyBonusMedium
	}
	return 0
}

// suggestionReason picks the explanation by precedence: fully makeable,
// then a short missing list, then general match quality. An expiry note
// is appended when the expiring bonus contributed.
func suggestionReason(matchPercentage float64, missingNames []string, usesExpiring bool) string {
	var reason string
	switch {
	case matchPercentage >= 100:
		reason = "You can make this right now with what you have"
	case len(missingNames) <= missingNamesLimit:
		reason = fmt.Sprintf("Only missing %s", strings.Join(missingNames, " and "))
	case matchPercentage >= 75:
		reason = "Great match, most ingredients are in your pantry"
	case matchPercentage >= 50:
		reason = fmt.Sprintf("Good match, %.0f%% of ingredients available", matchPercentage)
	default:
		reason = fmt.Sprintf("Partial match, %.0f%% of ingredients available", matchPercentage)
	}

	if usesExpiring {
		reason += " (uses ingredients that expire soon)"
	}
	return reason
}

// rankSuggestions orders suggestions by descending priority score, then
// descending match percentage, then ascending total prep+cook time, then
// recipe ID for full determinism.
func rankSuggestions(suggestions []models.LeftoverSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.PriorityScore != b.PriorityScore {
			return a.PriorityScore > b.PriorityScore
		}
		if a.MatchPercentage != b.MatchPercentage {
			return a.MatchPercentage > b.MatchPercentage
		}
		timeA := a.Recipe.PrepMinutes + a.Recipe.CookMinutes
		timeB := b.Recipe.PrepMinutes + b.Recipe.CookMinutes
		if timeA != timeB {
			return timeA < timeB
		}
		return a.Recipe.ID < b.Recipe.ID
	})
}
