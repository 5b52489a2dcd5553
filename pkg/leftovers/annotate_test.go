package leftovers

import (
	"testing"
	"time"

	"github.com/korjavin/pantrychef/pkg/ingredient"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshness(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1.0, Freshness(nil, now))

	farOut := now.Add(30 * 24 * time.Hour)
	assert.Equal(t, 1.0, Freshness(&farOut, now))

	expired := now.Add(-time.Hour)
	assert.Equal(t, 0.0, Freshness(&expired, now))

	atExpiry := now
	assert.Equal(t, 0.0, Freshness(&atExpiry, now))

	halfway := now.Add(3*24*time.Hour + 12*time.Hour) // 3.5 of 7 days
	assert.InDelta(t, 0.5, Freshness(&halfway, now), 0.01)
}

func TestAnnotatePantry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	soon := now.Add(2 * 24 * time.Hour)
	gone := now.Add(-24 * time.Hour)

	items := []models.PantryItem{
		{Name: "Fresh Tomatoes", Quantity: 3},
		{Name: "Milk", ExpiresAt: &soon},
		{Name: "Old Yogurt", ExpiresAt: &gone},
		{Name: "   "}, // blank names can never match and are dropped
	}

	annotated := AnnotatePantry(items, now, 3)
	require.Len(t, annotated, 3)

	tomato := annotated[0]
	assert.Equal(t, "tomato", tomato.Normalized)
	assert.Equal(t, ingredient.CategoryProduce, tomato.Category)
	assert.Equal(t, 1.0, tomato.Freshness)
	assert.False(t, tomato.Expired)
	assert.False(t, tomato.ExpiringSoon)

	milk := annotated[1]
	assert.True(t, milk.ExpiringSoon)
	assert.False(t, milk.Expired)
	assert.Greater(t, milk.Freshness, 0.0)
	assert.Less(t, milk.Freshness, 1.0)

	yogurt := annotated[2]
	assert.True(t, yogurt.Expired)
	assert.False(t, yogurt.ExpiringSoon)
	assert.Equal(t, 0.0, yogurt.Freshness)
}

func TestAnnotatePantryKeepsOrder(t *testing.T) {
	items := []models.PantryItem{
		{Name: "rice"},
		{Name: "beans"},
		{Name: "onion"},
	}

	annotated := AnnotatePantry(items, time.Now(), 0)
	require.Len(t, annotated, 3)
	assert.Equal(t, "rice", annotated[0].Normalized)
	assert.Equal(t, "bean", annotated[1].Normalized)
	assert.Equal(t, "onion", annotated[2].Normalized)
}
