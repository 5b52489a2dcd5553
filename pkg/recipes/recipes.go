package recipes

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/openai"
	"github.com/korjavin/pantrychef/pkg/storage"
)

// Service provides recipe catalog functionality
type Service struct {
	store        *storage.Store
	openaiClient *openai.Client
	logger       *logger.Logger
}

// New creates a new recipe catalog service. openaiClient may be nil; the
// catalog then seeds from the built-in defaults only.
func New(store *storage.Store, openaiClient *openai.Client) *Service {
	return &Service{
		store:        store,
		openaiClient: openaiClient,
		logger:       logger.New("recipes"),
	}
}

// List returns all recipes in the catalog, seeding the defaults on first
// use. Recipes come back sorted by ID for deterministic iteration.
func (s *Service) List() ([]models.Recipe, error) {
	keys, err := s.store.List("recipe:")
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	if len(keys) == 0 {
		if err := s.seedDefaults(); err != nil {
			return nil, err
		}
		keys, err = s.store.List("recipe:")
		if err != nil {
			return nil, fmt.Errorf("failed to list recipes: %w", err)
		}
	}

	recipes := make([]models.Recipe, 0, len(keys))
	for _, key := range keys {
		var recipe models.Recipe
		if err := s.store.Get(key, &recipe); err != nil {
			return nil, fmt.Errorf("failed to get recipe %s: %w", key, err)
		}
		recipes = append(recipes, recipe)
	}

	sort.Slice(recipes, func(i, j int) bool { return recipes[i].ID < recipes[j].ID })
	return recipes, nil
}

// Get retrieves one recipe by ID
func (s *Service) Get(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.store.Get(recipeKey(id), &recipe); err != nil {
		return nil, fmt.Errorf("failed to get recipe %s: %w", id, err)
	}
	return &recipe, nil
}

// Save stores a recipe, assigning an ID from its name when missing
func (s *Service) Save(recipe models.Recipe) (*models.Recipe, error) {
	if recipe.Name == "" {
		return nil, fmt.Errorf("recipe name must not be empty")
	}
	if recipe.ID == "" {
		recipe.ID = Slug(recipe.Name)
	}
	if recipe.AddedAt.IsZero() {
		recipe.AddedAt = time.Now()
	}

	if err := s.store.Set(recipeKey(recipe.ID), recipe); err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}

	return &recipe, nil
}

// Delete removes a recipe from the catalog
func (s *Service) Delete(id string) error {
	return s.store.Delete(recipeKey(id))
}

// ImportByName fetches a full recipe for a dish name through OpenAI and
// stores it in the catalog.
func (s *Service) ImportByName(dishName string) (*models.Recipe, error) {
	if s.openaiClient == nil {
		return nil, fmt.Errorf("recipe import requires the OpenAI client")
	}

	recipe, err := s.openaiClient.GetRecipeInfo(dishName)
	if err != nil {
		return nil, fmt.Errorf("failed to import recipe %q: %w", dishName, err)
	}

	saved, err := s.Save(*recipe)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Imported recipe %s (%d ingredients)", saved.ID, len(saved.Ingredients))
	return saved, nil
}

// seedDefaults fills an empty catalog. Each default dish is enriched
// through OpenAI when available; the built-in copy is the fallback.
func (s *Service) seedDefaults() error {
	s.logger.Info("Seeding default recipe catalog (%d recipes)", len(defaultRecipes))

	for _, fallback := range defaultRecipes {
		recipe := fallback

		if s.openaiClient != nil {
			fetched, err := s.openaiClient.GetRecipeInfo(fallback.Name)
			if err != nil {
				s.logger.Warn("Falling back to built-in recipe for %s: %v", fallback.Name, err)
			} else if len(fetched.Ingredients) > 0 {
				recipe = *fetched
			}
		}

		if _, err := s.Save(recipe); err != nil {
			s.logger.Error("Failed to seed recipe %s: %v", recipe.Name, err)
		}
	}

	return nil
}

// Slug derives a stable recipe ID from its name
func Slug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

func recipeKey(id string) string {
	return "recipe:" + id
}
