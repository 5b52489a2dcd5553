package scheduler

import (
	"time"

	"github.com/korjavin/pantrychef/pkg/chats"
	"github.com/korjavin/pantrychef/pkg/leftovers"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/messages"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/pantry"
	"github.com/korjavin/pantrychef/pkg/telegram"
)

const (
	tickInterval      = time.Minute
	reminderBatchSize = 3 // suggestions per reminder message
)

// Service drives the daily expiry reminders
type Service struct {
	bot              *telegram.Bot
	chatService      *chats.Service
	pantryService    *pantry.Service
	suggestService   *leftovers.Service
	messageService   *messages.Service
	logger           *logger.Logger
	reminderHour     int
	expiringSoonDays int
	stopChan         chan struct{}
}

// New creates a new expiry scheduler
func New(
	bot *telegram.Bot,
	chatService *chats.Service,
	pantryService *pantry.Service,
	suggestService *leftovers.Service,
	messageService *messages.Service,
	reminderHour int,
	expiringSoonDays int,
) *Service {
	return &Service{
		bot:              bot,
		chatService:      chatService,
		pantryService:    pantryService,
		suggestService:   suggestService,
		messageService:   messageService,
		logger:           logger.New("scheduler"),
		reminderHour:     reminderHour,
		expiringSoonDays: expiringSoonDays,
		stopChan:         make(chan struct{}),
	}
}

// Start starts the scheduler
func (s *Service) Start() {
	s.logger.Info("Starting expiry scheduler (reminder hour %02d:00, window %dd)",
		s.reminderHour, s.expiringSoonDays)
	go s.run()
}

// Stop stops the scheduler
func (s *Service) Stop() {
	s.logger.Info("Stopping expiry scheduler")
	close(s.stopChan)
}

func (s *Service) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			if now.Hour() != s.reminderHour || now.Minute() >= 5 {
				continue
			}
			s.remindAll(now)
		case <-s.stopChan:
			return
		}
	}
}

// remindAll checks every known chat and sends at most one reminder per day
func (s *Service) remindAll(now time.Time) {
	chatStates, err := s.chatService.List()
	if err != nil {
		s.logger.Error("Failed to list chats: %v", err)
		return
	}

	for _, chat := range chatStates {
		if sameDay(chat.LastReminder, now) {
			continue
		}

		if err := s.remindChat(chat.ChatID, now); err != nil {
			s.logger.Error("Failed to remind chat %d: %v", chat.ChatID, err)
		}
	}
}

// remindChat sends the expiry reminder for one chat when warranted
func (s *Service) remindChat(chatID int64, now time.Time) error {
	window := time.Duration(s.expiringSoonDays) * 24 * time.Hour
	expiring, err := s.pantryService.ExpiringItems(chatID, window)
	if err != nil {
		return err
	}
	if len(expiring) == 0 {
		return nil
	}

	s.logger.Info("Chat %d has %d items expiring within %dd", chatID, len(expiring), s.expiringSoonDays)

	reminder := s.messageService.GenerateExpiryReminder(expiring)
	if _, err := s.bot.SendMessage(chatID, reminder); err != nil {
		return err
	}

	resp, err := s.suggestService.SuggestForChat(chatID, models.SuggestionFilters{
		MaxSuggestions:     reminderBatchSize,
		PrioritizeExpiring: true,
		AllowSubstitutes:   true,
	})
	if err != nil {
		s.logger.Error("Failed to build suggestions for chat %d: %v", chatID, err)
	} else if resp.TotalSuggestions > 0 {
		if _, err := s.bot.SendMessage(chatID, messages.FormatSuggestions(resp)); err != nil {
			return err
		}
	}

	return s.chatService.MarkReminded(chatID, now)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
