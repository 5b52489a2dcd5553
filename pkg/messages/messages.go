package messages

import (
	"fmt"
	"strings"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/openai"
)

// Service provides message generation functionality
type Service struct {
	openaiClient *openai.Client
	logger       *logger.Logger
}

// New creates a new message service
func New(openaiClient *openai.Client) *Service {
	return &Service{
		openaiClient: openaiClient,
		logger:       logger.New("messages"),
	}
}

// GenerateWelcomeMessage generates a welcome message
func (s *Service) GenerateWelcomeMessage() string {
	msg, err := s.openaiClient.GenerateChatMessage("welcome", map[string]interface{}{
		"purpose": "Help people cook with what is already in their pantry before it spoils",
	})
	if err != nil {
		s.logger.Error("Failed to generate welcome message: %v", err)
		return "👋 Welcome to PantryChef! Tell me what's in your pantry and I'll suggest recipes you can cook right now."
	}
	return msg
}

// GenerateEmptyPantryMessage generates a message for an empty pantry
func (s *Service) GenerateEmptyPantryMessage() string {
	msg, err := s.openaiClient.GenerateChatMessage("empty_pantry", map[string]interface{}{})
	if err != nil {
		s.logger.Error("Failed to generate empty pantry message: %v", err)
		return "Your pantry is empty! Add items with /additems and I'll keep track of them."
	}
	return msg
}

// GeneratePantryContentsMessage generates a message listing pantry contents
func (s *Service) GeneratePantryContentsMessage(items []models.PantryItem) string {
	msg, err := s.openaiClient.GenerateChatMessage("pantry_contents", map[string]interface{}{
		"items": describeItems(items),
	})
	if err != nil {
		s.logger.Error("Failed to generate pantry contents message: %v", err)
		return FormatPantryItems(items)
	}
	return msg
}

// GenerateExpiryReminder generates a nudge about soon-to-expire items
func (s *Service) GenerateExpiryReminder(items []models.PantryItem) string {
	msg, err := s.openaiClient.GenerateChatMessage("expiry_reminder", map[string]interface{}{
		"expiring_items": describeItems(items),
	})
	if err != nil {
		s.logger.Error("Failed to generate expiry reminder: %v", err)
		return "⏰ Some of your pantry items expire soon:\n" + FormatPantryItems(items) + "\nTry /suggest to use them up!"
	}
	return msg
}

// GenerateErrorMessage generates an error message
func (s *Service) GenerateErrorMessage(context string) string {
	msg, err := s.openaiClient.GenerateChatMessage("error", map[string]interface{}{
		"context": context,
	})
	if err != nil {
		s.logger.Error("Failed to generate error message: %v", err)
		return "😢 Sorry, something went wrong. Please try again later."
	}
	return msg
}

// FormatSuggestions renders a suggestions response for Telegram. The
// rendering is deliberately deterministic; only conversational copy goes
// through the LLM.
func FormatSuggestions(resp *models.SuggestionsResponse) string {
	if resp.TotalSuggestions == 0 {
		if resp.RecipesAnalyzed > 0 {
			return "😢 No recipe clears the bar with your current pantry. Add a few items with /additems and try again."
		}
		return "The recipe catalog is empty. Import something with /newrecipe first."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ Here's what you can cook (checked %d recipes against %d pantry items):\n\n",
		resp.RecipesAnalyzed, resp.PantryItemsConsidered)

	for i, suggestion := range resp.Suggestions {
		fmt.Fprintf(&b, "%d. %s — %.0f%% match\n", i+1, suggestion.Recipe.Name, suggestion.MatchPercentage)
		fmt.Fprintf(&b, "   %s\n", suggestion.Reason)
		if len(suggestion.MissingNames) > 0 {
			fmt.Fprintf(&b, "   Missing: %s\n", strings.Join(suggestion.MissingNames, ", "))
		}
		for _, match := range suggestion.Matches {
			if match.Type == models.MatchSubstitute {
				fmt.Fprintf(&b, "   Swap: %s → %s (%s)\n", match.RequiredName, match.MatchedName, match.Note)
			}
		}
	}

	return b.String()
}

// FormatPantryItems renders the pantry list without the LLM
func FormatPantryItems(items []models.PantryItem) string {
	var b strings.Builder
	b.WriteString("🧺 Here's what's in your pantry:\n\n")
	for _, item := range items {
		b.WriteString("• " + describeItem(item) + "\n")
	}
	return b.String()
}

func describeItems(items []models.PantryItem) []string {
	described := make([]string, len(items))
	for i, item := range items {
		described[i] = describeItem(item)
	}
	return described
}

func describeItem(item models.PantryItem) string {
	s := item.Name
	if item.Quantity > 0 {
		if item.Unit != "" {
			s = fmt.Sprintf("%s (%g %s)", s, item.Quantity, item.Unit)
		} else {
			s = fmt.Sprintf("%s (%g)", s, item.Quantity)
		}
	}
	if item.ExpiresAt != nil {
		days := int(time.Until(*item.ExpiresAt).Hours() / 24)
		switch {
		case days < 0:
			s += " — expired"
		case days == 0:
			s += " — expires today"
		default:
			s += fmt.Sprintf(" — expires in %dd", days)
		}
	}
	return s
}
