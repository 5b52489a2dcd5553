package leftovers

import (
	"fmt"
	"sort"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
)

// PantrySource supplies the stored pantry for a chat
type PantrySource interface {
	Snapshot(chatID int64) (*models.Pantry, error)
}

// RecipeSource supplies the candidate recipe catalog
type RecipeSource interface {
	List() ([]models.Recipe, error)
}

// Service is the store-backed front-end for the engine: it fetches the
// pantry and catalog, applies configured filter defaults, and caches
// responses per chat and pantry revision.
type Service struct {
	pantry  PantrySource
	recipes RecipeSource
	engine  *Engine
	cache   *Cache
	logger  *logger.Logger

	defaultMaxSuggestions int
	defaultMinMatch       float64
}

// New creates a new suggestion service. cache may be nil to disable
// response caching.
func New(pantry PantrySource, recipes RecipeSource, engine *Engine, cache *Cache, defaultMaxSuggestions int, defaultMinMatch float64) *Service {
	return &Service{
		pantry:                pantry,
		recipes:               recipes,
		engine:                engine,
		cache:                 cache,
		logger:                logger.New("leftovers"),
		defaultMaxSuggestions: defaultMaxSuggestions,
		defaultMinMatch:       defaultMinMatch,
	}
}

// SuggestForChat runs one suggestion request for a chat. Failures to load
// pantry or recipe data are wrapped as ErrUpstream and reported upward
// without retrying.
func (s *Service) SuggestForChat(chatID int64, filters models.SuggestionFilters) (*models.SuggestionsResponse, error) {
	if filters.MaxSuggestions == 0 {
		filters.MaxSuggestions = s.defaultMaxSuggestions
	}
	if filters.MinMatchPercentage == 0 {
		filters.MinMatchPercentage = s.defaultMinMatch
	}

	pantry, err := s.pantry.Snapshot(chatID)
	if err != nil {
		return nil, fmt.Errorf("%w: pantry: %v", ErrUpstream, err)
	}

	var key string
	if s.cache != nil {
		key = s.cache.Key(chatID, pantry.LastUpdated, filters)
		if cached := s.cache.Get(key); cached != nil {
			s.logger.Debug("Cache hit for chat %d", chatID)
			hit := *cached
			hit.Metrics = &models.SuggestionMetrics{CacheHit: true}
			return &hit, nil
		}
	}

	recipes, err := s.recipes.List()
	if err != nil {
		return nil, fmt.Errorf("%w: recipes: %v", ErrUpstream, err)
	}

	resp, err := s.engine.Suggest(itemsInOrder(pantry), recipes, filters, time.Now())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, resp)
	}

	return resp, nil
}

// itemsInOrder flattens the stored pantry map into the deterministic
// ordering the matcher's tie-break depends on: oldest first, then name.
func itemsInOrder(pantry *models.Pantry) []models.PantryItem {
	items := make([]models.PantryItem, 0, len(pantry.Items))
	for _, item := range pantry.Items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].AddedAt.Before(items[j].AddedAt)
		}
		return items[i].Name < items[j].Name
	})
	return items
}
