package models

import (
	"time"
)

// MatchType classifies how a required recipe ingredient was satisfied
// from the pantry.
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchFuzzy      MatchType = "fuzzy"
	MatchCategory   MatchType = "category"
	MatchSubstitute MatchType = "substitute"
	MatchNone       MatchType = "none"
)

// ChatState represents the bot's knowledge about a Telegram chat
type ChatState struct {
	ChatID       int64     `json:"chat_id"`
	PantryID     string    `json:"pantry_id"`
	LastActivity time.Time `json:"last_activity"`
	LastReminder time.Time `json:"last_reminder,omitempty"`
	MemberCount  int       `json:"member_count,omitempty"`
}

// Pantry represents the stored pantry for a chat
type Pantry struct {
	ID          string                `json:"id"`
	ChatID      int64                 `json:"chat_id"`
	Items       map[string]PantryItem `json:"items"`
	LastUpdated time.Time             `json:"last_updated"`
}

// PantryItem is a single stored pantry entry as the user entered it
type PantryItem struct {
	Name      string     `json:"name"`
	Category  string     `json:"category,omitempty"`
	Quantity  float64    `json:"quantity,omitempty"`
	Unit      string     `json:"unit,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	AddedAt   time.Time  `json:"added_at"`
}

// PantryIngredient is the per-request view of a pantry item used by the
// suggestion engine. It is derived from PantryItem on every run and never
// persisted.
type PantryIngredient struct {
	Name         string     `json:"name"`
	Normalized   string     `json:"normalized"`
	Category     string     `json:"category"`
	Quantity     float64    `json:"quantity,omitempty"`
	Unit         string     `json:"unit,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Freshness    float64    `json:"freshness"`
	Expired      bool       `json:"expired"`
	ExpiringSoon bool       `json:"expiring_soon"`
}

// RecipeIngredient is one required ingredient as written in a recipe
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// Recipe represents a recipe in the catalog
type Recipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Cuisine      string             `json:"cuisine,omitempty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions,omitempty"`
	PrepMinutes  int                `json:"prep_minutes,omitempty"`
	CookMinutes  int                `json:"cook_minutes,omitempty"`
	Difficulty   string             `json:"difficulty,omitempty"` // easy, medium, hard
	MealTypes    []string           `json:"meal_types,omitempty"`
	DietaryTags  []string           `json:"dietary_tags,omitempty"`
	AddedAt      time.Time          `json:"added_at,omitempty"`
}

// IngredientMatch pairs one required ingredient with the best available
// pantry ingredient, or records that nothing matched. Built once per
// suggestion run and never mutated afterwards.
type IngredientMatch struct {
	RequiredName      string    `json:"required_name"`
	MatchedName       string    `json:"matched_name,omitempty"`
	Type              MatchType `json:"match_type"`
	Confidence        float64   `json:"confidence"`
	Matched           bool      `json:"matched"`
	RequiredQuantity  float64   `json:"required_quantity,omitempty"`
	RequiredUnit      string    `json:"required_unit,omitempty"`
	AvailableQuantity float64   `json:"available_quantity,omitempty"`
	AvailableUnit     string    `json:"available_unit,omitempty"`
	Note              string    `json:"note,omitempty"`
}

// Substitute is a static lookup fact: the substitute can stand in for the
// original ingredient at the given ratio, with the table's own confidence.
type Substitute struct {
	Original   string  `json:"original"`
	Substitute string  `json:"substitute"`
	Ratio      float64 `json:"ratio"`
	Confidence float64 `json:"confidence"`
	Note       string  `json:"note,omitempty"`
}

// LeftoverSuggestion is one ranked recipe suggestion.
// AvailableCount+MissingCount always equals TotalIngredients, and
// MatchPercentage stays within [0,100].
type LeftoverSuggestion struct {
	Recipe           Recipe            `json:"recipe"`
	Matches          []IngredientMatch `json:"matches"`
	MatchPercentage  float64           `json:"match_percentage"`
	TotalIngredients int               `json:"total_ingredients"`
	AvailableCount   int               `json:"available_ingredients_count"`
	MissingCount     int               `json:"missing_ingredients_count"`
	MissingNames     []string          `json:"missing_names,omitempty"`
	Reason           string            `json:"suggestion_reason"`
	PriorityScore    float64           `json:"priority_score"`
}

// SuggestionFilters are the user-supplied constraints for one suggestion run
type SuggestionFilters struct {
	MaxSuggestions      int      `json:"max_suggestions,omitempty"`
	MinMatchPercentage  float64  `json:"min_match_percentage,omitempty"`
	MaxPrepMinutes      int      `json:"max_prep_minutes,omitempty"`
	MaxCookMinutes      int      `json:"max_cook_minutes,omitempty"`
	Difficulties        []string `json:"difficulties,omitempty"`
	MealTypes           []string `json:"meal_types,omitempty"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	ExcludeExpired      bool     `json:"exclude_expired,omitempty"`
	PrioritizeExpiring  bool     `json:"prioritize_expiring,omitempty"`
	AllowSubstitutes    bool     `json:"allow_substitutes,omitempty"`
}

// SuggestionMetrics carries optional performance data for debug output
type SuggestionMetrics struct {
	ProcessingMs int64    `json:"processing_ms"`
	CacheHit     bool     `json:"cache_hit"`
	Errors       []string `json:"errors,omitempty"`
}

// SuggestionsResponse is the full result of one suggestion run
type SuggestionsResponse struct {
	Suggestions           []LeftoverSuggestion `json:"suggestions"`
	TotalSuggestions      int                  `json:"total_suggestions"`
	PantryItemsConsidered int                  `json:"pantry_items_considered"`
	RecipesAnalyzed       int                  `json:"recipes_analyzed"`
	MinMatchPercentage    float64              `json:"min_match_percentage"`
	GeneratedAt           time.Time            `json:"generated_at"`
	Filters               SuggestionFilters    `json:"filters"`
	Metrics               *SuggestionMetrics   `json:"metrics,omitempty"`
}
