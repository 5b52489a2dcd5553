package leftovers

import (
	"time"

	"github.com/korjavin/pantrychef/pkg/ingredient"
	"github.com/korjavin/pantrychef/pkg/models"
)

const (
	// DefaultExpiringSoonDays is the window used when the caller does
	// not configure one.
	DefaultExpiringSoonDays = 3

	// freshnessHorizonDays is where the freshness score saturates at 1.0.
	// Anything expiring further out than this counts as fully fresh.
	freshnessHorizonDays = 7.0
)

// AnnotatePantry derives the per-request ingredient view from the stored
// pantry items: normalized name, category, freshness score, and expiry
// flags. Items with blank names are dropped since they can never match.
// The input order is preserved; the matcher's final tie-break relies on it.
func AnnotatePantry(items []models.PantryItem, now time.Time, expiringSoonDays int) []models.PantryIngredient {
	if expiringSoonDays <= 0 {
		expiringSoonDays = DefaultExpiringSoonDays
	}

	annotated := make([]models.PantryIngredient, 0, len(items))
	for _, item := range items {
		normalized := ingredient.Normalize(item.Name)
		if normalized == "" {
			continue
		}

		category := item.Category
		if category == "" {
			category = ingredient.Categorize(item.Name)
		}

		entry := models.PantryIngredient{
			Name:       item.Name,
			Normalized: normalized,
			Category:   category,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			ExpiresAt:  item.ExpiresAt,
			Freshness:  Freshness(item.ExpiresAt, now),
		}

		if item.ExpiresAt != nil {
			until := item.ExpiresAt.Sub(now)
			entry.Expired = until <= 0
			entry.ExpiringSoon = !entry.Expired && until <= time.Duration(expiringSoonDays)*24*time.Hour
		}

		annotated = append(annotated, entry)
	}

	return annotated
}

// Freshness maps an expiration date to a score in [0,1]: 1.0 for items
// without an expiry or far from it, decreasing linearly to 0.0 at and
// after expiration.
func Freshness(expiresAt *time.Time, now time.Time) float64 {
	if expiresAt == nil {
		return 1.0
	}

	days := expiresAt.Sub(now).Hours() / 24
	if days <= 0 {
		return 0.0
	}
	if days >= freshnessHorizonDays {
		return 1.0
	}
	return days / freshnessHorizonDays
}
