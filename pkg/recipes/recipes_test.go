package recipes

import (
	"testing"

	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store, nil)
}

func TestListSeedsDefaults(t *testing.T) {
	svc := testService(t)

	recipes, err := svc.List()
	require.NoError(t, err)
	require.Len(t, recipes, len(defaultRecipes))

	// Sorted by ID, and every seed has something to cook with
	for i := 1; i < len(recipes); i++ {
		assert.Less(t, recipes[i-1].ID, recipes[i].ID)
	}
	for _, recipe := range recipes {
		assert.NotEmpty(t, recipe.Ingredients, "recipe %s", recipe.ID)
		assert.NotEmpty(t, recipe.Instructions, "recipe %s", recipe.ID)
	}

	// A second List must not reseed
	again, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, again, len(defaultRecipes))
}

func TestListSurfacesCorruptRecord(t *testing.T) {
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Set("recipe:bad", "garbage"))

	_, err = New(store, nil).List()
	assert.Error(t, err)
}

func TestSaveAssignsSlug(t *testing.T) {
	svc := testService(t)

	saved, err := svc.Save(models.Recipe{
		Name:        "Shchi & Kasha!",
		Ingredients: []models.RecipeIngredient{{Name: "cabbage"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "shchi-kasha", saved.ID)
	assert.False(t, saved.AddedAt.IsZero())

	got, err := svc.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shchi & Kasha!", got.Name)
}

func TestSaveRejectsUnnamed(t *testing.T) {
	svc := testService(t)

	_, err := svc.Save(models.Recipe{})
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	svc := testService(t)

	saved, err := svc.Save(models.Recipe{Name: "Toast"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(saved.ID))

	_, err = svc.Get(saved.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestImportRequiresClient(t *testing.T) {
	svc := testService(t)

	_, err := svc.ImportByName("ratatouille")
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Spaghetti Bolognese", "spaghetti-bolognese"},
		{"  Chicken Stir Fry ", "chicken-stir-fry"},
		{"Mac & Cheese", "mac-cheese"},
		{"Crêpes", "cr-pes"},
		{"100% Rye Bread", "100-rye-bread"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slug(tt.input), "input %q", tt.input)
	}
}
