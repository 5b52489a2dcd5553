package chats

import (
	"errors"
	"fmt"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/storage"
)

// Service tracks the chats the bot has seen, so the expiry scheduler can
// enumerate them.
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new chat registry service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("chats"),
	}
}

// Touch records activity for a chat, registering it on first contact
func (s *Service) Touch(chatID int64) error {
	chatKey := fmt.Sprintf("chat:%d", chatID)

	var state models.ChatState
	err := s.store.Get(chatKey, &state)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to load chat state: %w", err)
		}

		state = models.ChatState{
			ChatID:   chatID,
			PantryID: fmt.Sprintf("pantry:%d", chatID),
		}
	}

	state.LastActivity = time.Now()

	return s.store.Set(chatKey, state)
}

// List returns the state of every known chat
func (s *Service) List() ([]models.ChatState, error) {
	keys, err := s.store.List("chat:")
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}

	states := make([]models.ChatState, 0, len(keys))
	for _, key := range keys {
		var state models.ChatState
		if err := s.store.Get(key, &state); err != nil {
			return nil, fmt.Errorf("failed to get chat state %s: %w", key, err)
		}
		states = append(states, state)
	}

	return states, nil
}

// MarkReminded records that the expiry reminder went out for a chat
func (s *Service) MarkReminded(chatID int64, at time.Time) error {
	chatKey := fmt.Sprintf("chat:%d", chatID)

	var state models.ChatState
	if err := s.store.Get(chatKey, &state); err != nil {
		return fmt.Errorf("failed to get chat state: %w", err)
	}

	state.LastReminder = at

	return s.store.Set(chatKey, state)
}
