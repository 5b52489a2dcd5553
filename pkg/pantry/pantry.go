package pantry

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/korjavin/pantrychef/pkg/ingredient"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/storage"
)

// Service provides pantry management functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new pantry service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("pantry"),
	}
}

// Snapshot retrieves the pantry for a chat, creating an empty one on
// first use.
func (s *Service) Snapshot(chatID int64) (*models.Pantry, error) {
	pantryKey := fmt.Sprintf("pantry:%d", chatID)

	var pantry models.Pantry
	err := s.store.Get(pantryKey, &pantry)
	if err != nil {
		// Only a missing key means "new chat". Anything else (a corrupt
		// record included) must surface, not wipe the stored pantry.
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to load pantry: %w", err)
		}

		pantry = models.Pantry{
			ID:          pantryKey,
			ChatID:      chatID,
			Items:       make(map[string]models.PantryItem),
			LastUpdated: time.Now(),
		}

		if err := s.store.Set(pantryKey, pantry); err != nil {
			return nil, fmt.Errorf("failed to create pantry: %w", err)
		}
	}

	if pantry.Items == nil {
		pantry.Items = make(map[string]models.PantryItem)
	}

	return &pantry, nil
}

// AddItem adds or replaces an item in the pantry. The item is keyed by
// its normalized name, so "Fresh Tomatoes" updates "tomato".
func (s *Service) AddItem(chatID int64, item models.PantryItem) error {
	pantry, err := s.Snapshot(chatID)
	if err != nil {
		return err
	}

	key := ingredient.Normalize(item.Name)
	if key == "" {
		return fmt.Errorf("item name must not be empty")
	}

	if item.Category == "" {
		item.Category = ingredient.Categorize(item.Name)
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}

	pantry.Items[key] = item
	pantry.LastUpdated = time.Now()

	return s.store.Set(pantry.ID, pantry)
}

// AddItems adds multiple items at once
func (s *Service) AddItems(chatID int64, items []models.PantryItem) error {
	pantry, err := s.Snapshot(chatID)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, item := range items {
		key := ingredient.Normalize(item.Name)
		if key == "" {
			continue
		}
		if item.Category == "" {
			item.Category = ingredient.Categorize(item.Name)
		}
		if item.AddedAt.IsZero() {
			item.AddedAt = now
		}
		pantry.Items[key] = item
	}

	pantry.LastUpdated = now

	return s.store.Set(pantry.ID, pantry)
}

// RemoveItem removes an item from the pantry by name. Returns false when
// the item was not present.
func (s *Service) RemoveItem(chatID int64, name string) (bool, error) {
	pantry, err := s.Snapshot(chatID)
	if err != nil {
		return false, err
	}

	key := ingredient.Normalize(name)
	if _, ok := pantry.Items[key]; !ok {
		return false, nil
	}

	delete(pantry.Items, key)
	pantry.LastUpdated = time.Now()

	return true, s.store.Set(pantry.ID, pantry)
}

// Clear resets the pantry for a chat
func (s *Service) Clear(chatID int64) error {
	pantryKey := fmt.Sprintf("pantry:%d", chatID)

	pantry := models.Pantry{
		ID:          pantryKey,
		ChatID:      chatID,
		Items:       make(map[string]models.PantryItem),
		LastUpdated: time.Now(),
	}

	return s.store.Set(pantryKey, pantry)
}

// ListItems returns the pantry contents in a stable order: oldest first,
// then by name.
func (s *Service) ListItems(chatID int64) ([]models.PantryItem, error) {
	pantry, err := s.Snapshot(chatID)
	if err != nil {
		return nil, err
	}

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

	return items, nil
}

// ExpiringItems returns items that expire within the given window,
// soonest first. Already-expired items are included.
func (s *Service) ExpiringItems(chatID int64, within time.Duration) ([]models.PantryItem, error) {
	items, err := s.ListItems(chatID)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(within)
	expiring := make([]models.PantryItem, 0)
	for _, item := range items {
		if item.ExpiresAt != nil && item.ExpiresAt.Before(cutoff) {
			expiring = append(expiring, item)
		}
	}

	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].ExpiresAt.Before(*expiring[j].ExpiresAt)
	})

	return expiring, nil
}
