package leftovers

import (
	"fmt"
	"strings"

	"github.com/korjavin/pantrychef/pkg/ingredient"
	"github.com/korjavin/pantrychef/pkg/models"
)

// Confidence bands and discounts for the match rules. These are tuning
// knobs, not contracts: the rule ORDER is what callers may rely on.
const (
	fuzzyConfidenceFloor = 0.6
	fuzzyConfidenceSpan  = 0.3 // fuzzy lands in [0.6, 0.9] scaled by overlap
	categoryConfidence   = 0.5
	substituteDiscount   = 0.9 // a substitute is a weaker guarantee than the real thing
	minTokenOverlap      = 0.5
)

// MatchIngredient finds the best pantry match for one required ingredient.
// Rules are tried in priority order (exact, fuzzy, category, substitute)
// and the first rule that produces any candidate wins. Ties within a rule
// are broken by higher freshness, then by pantry order. The second return
// value is the index of the matched pantry ingredient, or -1.
func MatchIngredient(required models.RecipeIngredient, pantry []models.PantryIngredient, allowSubstitutes bool) (models.IngredientMatch, int) {
	match := models.IngredientMatch{
		RequiredName:     required.Name,
		RequiredQuantity: required.Quantity,
		RequiredUnit:     required.Unit,
		Type:             models.MatchNone,
	}

	requiredNorm := ingredient.Normalize(required.Name)

	// Exact: normalized names are equal
	if idx := bestCandidate(pantry, func(p models.PantryIngredient) float64 {
		if p.Normalized == requiredNorm {
			return 1.0
		}
		return 0
	}); idx >= 0 {
		return fillMatch(match, pantry[idx], models.MatchExact, 1.0, ""), idx
	}

	// Fuzzy: substring containment or significant token overlap
	if idx := bestCandidate(pantry, func(p models.PantryIngredient) float64 {
		return fuzzyConfidence(requiredNorm, p.Normalized)
	}); idx >= 0 {
		conf := fuzzyConfidence(requiredNorm, pantry[idx].Normalized)
		note := fmt.Sprintf("close match for %s", required.Name)
		return fillMatch(match, pantry[idx], models.MatchFuzzy, conf, note), idx
	}

	// Category: same interchangeable category
	requiredCat := ingredient.Categorize(required.Name)
	if ingredient.Interchangeable(requiredCat) {
		if idx := bestCandidate(pantry, func(p models.PantryIngredient) float64 {
			if p.Category == requiredCat {
				return categoryConfidence
			}
			return 0
		}); idx >= 0 {
			note := fmt.Sprintf("same category (%s)", requiredCat)
			return fillMatch(match, pantry[idx], models.MatchCategory, categoryConfidence, note), idx
		}
	}

	// Substitute: consult the static table for something the pantry has
	if allowSubstitutes {
		if sub, idx := bestSubstitute(requiredNorm, pantry); idx >= 0 {
			conf := sub.Confidence * substituteDiscount
			note := sub.Note
			if note == "" {
				note = fmt.Sprintf("substitute for %s", required.Name)
			}
			return fillMatch(match, pantry[idx], models.MatchSubstitute, conf, note), idx
		}
	}

	match.Note = fmt.Sprintf("%s is not available", required.Name)
	return match, -1
}

// fillMatch completes a match record from the chosen pantry ingredient
func fillMatch(match models.IngredientMatch, p models.PantryIngredient, t models.MatchType, confidence float64, note string) models.IngredientMatch {
	match.MatchedName = p.Name
	match.Type = t
	match.Confidence = confidence
	match.Matched = true
	match.AvailableQuantity = p.Quantity
	match.AvailableUnit = p.Unit
	match.Note = note
	return match
}

// bestCandidate scans the pantry with a scoring function and returns the
// index of the best candidate, or -1 when nothing scored above zero.
// Ties go to the fresher ingredient, then to the earlier pantry position.
func bestCandidate(pantry []models.PantryIngredient, score func(models.PantryIngredient) float64) int {
	best := -1
	bestScore := 0.0
	for i, p := range pantry {
		s := score(p)
		if s <= 0 {
			continue
		}
		if best < 0 || s > bestScore || (s == bestScore && p.Freshness > pantry[best].Freshness) {
			best = i
			bestScore = s
		}
	}
	return best
}

// fuzzyConfidence scores how closely two normalized names resemble each
// other. Zero means no fuzzy match. Containment and token overlap both
// map into the [fuzzyConfidenceFloor, fuzzyConfidenceFloor+Span] band,
// scaled by the degree of overlap.
func fuzzyConfidence(a, b string) float64 {
	if a == "" || b == "" || a == b {
		return 0
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter, longer := len(a), len(b)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return fuzzyConfidenceFloor + fuzzyConfidenceSpan*float64(shorter)/float64(longer)
	}

	overlap := tokenOverlap(a, b)
	if overlap < minTokenOverlap {
		return 0
	}
	return fuzzyConfidenceFloor + fuzzyConfidenceSpan*overlap
}

// tokenOverlap is the share of tokens the two names have in common,
// relative to the longer name.
func tokenOverlap(a, b string) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(tokensA))
	for _, t := range tokensA {
		setA[t] = true
	}

	shared := 0
	for _, t := range tokensB {
		if setA[t] {
			shared++
		}
	}

	longer := len(tokensA)
	if len(tokensB) > longer {
		longer = len(tokensB)
	}
	return float64(shared) / float64(longer)
}

// bestSubstitute looks up the substitute table for the required ingredient
// and returns the highest-confidence substitute present in the pantry.
func bestSubstitute(requiredNorm string, pantry []models.PantryIngredient) (models.Substitute, int) {
	var bestSub models.Substitute
	bestIdx := -1

	for _, sub := range ingredient.SubstitutesFor(requiredNorm) {
		subNorm := ingredient.Normalize(sub.Substitute)
		idx := bestCandidate(pantry, func(p models.PantryIngredient) float64 {
			if p.Normalized == subNorm {
				return 1.0
			}
			return 0
		})
		if idx < 0 {
			continue
		}
		if bestIdx < 0 || sub.Confidence > bestSub.Confidence {
			bestSub = sub
			bestIdx = idx
		}
	}

	return bestSub, bestIdx
}
