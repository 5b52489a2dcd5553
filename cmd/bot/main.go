package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/chats"
	"github.com/korjavin/pantrychef/pkg/config"
	"github.com/korjavin/pantrychef/pkg/leftovers"
	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/messages"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/openai"
	"github.com/korjavin/pantrychef/pkg/pantry"
	"github.com/korjavin/pantrychef/pkg/recipes"
	"github.com/korjavin/pantrychef/pkg/scheduler"
	"github.com/korjavin/pantrychef/pkg/state"
	"github.com/korjavin/pantrychef/pkg/storage"
	"github.com/korjavin/pantrychef/pkg/telegram"
)

func main() {
	// Initialize logger
	log := logger.Global
	log.Info("Starting PantryChef bot...")

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Initialize storage
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Error("Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// Start BadgerDB garbage collection
	store.StartGCRoutine(10 * time.Minute)

	// Initialize OpenAI client
	openaiClient := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)

	// Initialize services
	pantryService := pantry.New(store)
	recipeService := recipes.New(store, openaiClient)
	chatService := chats.New(store)
	messageService := messages.New(openaiClient)
	stateManager := state.New()

	suggestionCache, err := leftovers.NewCache(leftovers.DefaultCacheTTL)
	if err != nil {
		log.Error("Failed to initialize suggestion cache: %v", err)
		os.Exit(1)
	}
	defer suggestionCache.Close()

	engine := leftovers.NewEngine(cfg.ExpiringSoonDays)
	suggestService := leftovers.New(pantryService, recipeService, engine, suggestionCache,
		cfg.MaxSuggestions, cfg.MinMatchPercentage)

	// Initialize Telegram bot
	bot, err := telegram.New(cfg.BotToken)
	if err != nil {
		log.Error("Failed to initialize Telegram bot: %v", err)
		os.Exit(1)
	}

	// touch registers the chat for the expiry scheduler
	touch := func(chatID int64) {
		if err := chatService.Touch(chatID); err != nil {
			log.Error("Failed to record chat %d: %v", chatID, err)
		}
	}

	// Setup command handlers
	commandHandlers := map[string]telegram.CommandHandler{
		"start": func(message *tgbotapi.Message) {
			touch(message.Chat.ID)
			bot.SendMessage(message.Chat.ID, messageService.GenerateWelcomeMessage())
		},
		"pantry": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			touch(chatID)

			items, err := pantryService.ListItems(chatID)
			if err != nil {
				log.Error("Failed to list pantry items: %v", err)
				bot.SendMessage(chatID, messageService.GenerateErrorMessage("retrieve pantry contents"))
				return
			}

			if len(items) == 0 {
				bot.SendMessage(chatID, messageService.GenerateEmptyPantryMessage())
				return
			}

			bot.SendMessage(chatID, messageService.GeneratePantryContentsMessage(items))
		},
		"additems": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			touch(chatID)

			stateManager.SetState(chatID, state.StateAddingItems)
			bot.SendMessage(chatID, "📝 Send me what you've got — quantities and expiry hints welcome, e.g. \"3 tomatoes, 500g chicken breast (use by friday)\". Multiple messages are fine.")
		},
		"remove": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			touch(chatID)

			name := strings.TrimSpace(message.CommandArguments())
			if name == "" {
				bot.SendMessage(chatID, "Usage: /remove <item name>")
				return
			}

			removed, err := pantryService.RemoveItem(chatID, name)
			if err != nil {
				log.Error("Failed to remove item: %v", err)
				bot.SendMessage(chatID, messageService.GenerateErrorMessage("remove a pantry item"))
				return
			}
			if !removed {
				bot.SendMessage(chatID, fmt.Sprintf("I couldn't find %s in your pantry.", name))
				return
			}
			bot.SendMessage(chatID, fmt.Sprintf("✅ Removed %s from your pantry.", name))
		},
		"clearpantry": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			touch(chatID)

			if err := pantryService.Clear(chatID); err != nil {
				log.Error("Failed to clear pantry: %v", err)
				bot.SendMessage(chatID, messageService.GenerateErrorMessage("clear the pantry"))
				return
			}
			bot.SendMessage(chatID, "🧹 Pantry cleared! Use /additems to start fresh.")
		},
		"recipes": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			touch(chatID)

			catalog, err := recipeService.List()
			if err != nil {
				log.Error("Failed to list recipes: %v", err)
				bot.SendMessage(chatID, messageService.GenerateErrorMessage("list recipes"))
				return
			}

			var b strings.Builder
			b.WriteString("📖 Recipe catalog:\n\n")
			for _, recipe := range catalog {
				fmt.Fprintf(&b, "• %s (%s, %d ingredients, %d min)\n",
					recipe.Name, recipe.Difficulty, len(recipe.Ingredients),
					recipe.PrepMinutes+recipe.CookMinutes)
			}
			bot.SendMessage(chatID, b.String())
		},
		"newrecipe": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			touch(chatID)

			dishName := strings.TrimSpace(message.CommandArguments())
			if dishName == "" {
				bot.SendMessage(chatID, "Usage: /newrecipe <dish name>")
				return
			}

			bot.SendMessage(chatID, fmt.Sprintf("🔎 Looking up a recipe for %s...", dishName))
			recipe, err := recipeService.ImportByName(dishName)
			if err != nil {
				log.Error("Failed to import recipe: %v", err)
				bot.SendMessage(chatID, messageService.GenerateErrorMessage("import the recipe"))
				return
			}

			bot.SendMessage(chatID, fmt.Sprintf("✅ Added %s to the catalog (%d ingredients). Try /suggest!",
				recipe.Name, len(recipe.Ingredients)))
		},
		"suggest": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			touch(chatID)

			filters := models.SuggestionFilters{
				AllowSubstitutes:   true,
				PrioritizeExpiring: true,
			}

			// Optional minimum match percentage argument, e.g. /suggest 50
			if arg := strings.TrimSpace(message.CommandArguments()); arg != "" {
				pct, err := strconv.ParseFloat(arg, 64)
				if err != nil || pct < 0 || pct > 100 {
					bot.SendMessage(chatID, "Usage: /suggest [minimum match percent 0-100]")
					return
				}
				filters.MinMatchPercentage = pct / 100
			}

			resp, err := suggestService.SuggestForChat(chatID, filters)
			if err != nil {
				if errors.Is(err, leftovers.ErrInvalidInput) {
					bot.SendMessage(chatID, fmt.Sprintf("🤔 That request doesn't work: %v", err))
					return
				}
				log.Error("Failed to build suggestions: %v", err)
				bot.SendMessage(chatID, messageService.GenerateErrorMessage("suggest recipes"))
				return
			}

			bot.SendMessage(chatID, messages.FormatSuggestions(resp))
		},
		"expiring": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			touch(chatID)

			window := time.Duration(cfg.ExpiringSoonDays) * 24 * time.Hour
			items, err := pantryService.ExpiringItems(chatID, window)
			if err != nil {
				log.Error("Failed to list expiring items: %v", err)
				bot.SendMessage(chatID, messageService.GenerateErrorMessage("check expiring items"))
				return
			}

			if len(items) == 0 {
				bot.SendMessage(chatID, fmt.Sprintf("✨ Nothing expires within %d days. You're all set.", cfg.ExpiringSoonDays))
				return
			}

			bot.SendMessage(chatID, messageService.GenerateExpiryReminder(items))
		},
	}

	// Setup callback handlers for the item-adding flow
	callbackHandlers := map[string]telegram.CallbackHandler{
		"done_adding": func(callback *tgbotapi.CallbackQuery) {
			chatID := callback.Message.Chat.ID
			stateManager.ClearState(chatID)

			bot.AnswerCallbackQuery(callback.ID, "Pantry updated!")
			bot.EditMessage(chatID, callback.Message.MessageID,
				"✅ Pantry update complete! Use /pantry to review or /suggest to cook something.")
		},
		"add_more": func(callback *tgbotapi.CallbackQuery) {
			chatID := callback.Message.Chat.ID
			// State stays in adding mode

			bot.AnswerCallbackQuery(callback.ID, "Send more items!")
			bot.EditMessage(chatID, callback.Message.MessageID,
				"Keep them coming — I'll add everything to your pantry.")
		},
	}

	// Setup default handler for free-text pantry additions
	defaultHandler := func(update tgbotapi.Update) {
		if update.Message == nil || update.Message.Text == "" || update.Message.IsCommand() {
			return
		}

		chatID := update.Message.Chat.ID
		text := update.Message.Text

		if stateManager.GetState(chatID) != state.StateAddingItems {
			return
		}

		parsed, err := openaiClient.ParsePantryItemsFromText(text)
		if err != nil {
			log.Error("Failed to parse pantry items: %v", err)
			bot.SendMessage(chatID, "😢 Sorry, I couldn't understand that list. Please try again.")
			return
		}

		if len(parsed) == 0 {
			bot.SendMessage(chatID, "I couldn't find any food items in that message. Please try again.")
			return
		}

		now := time.Now()
		items := make([]models.PantryItem, 0, len(parsed))
		names := make([]string, 0, len(parsed))
		for _, input := range parsed {
			item := models.PantryItem{
				Name:     input.Name,
				Quantity: input.Quantity,
				Unit:     input.Unit,
				AddedAt:  now,
			}
			if input.ExpiresInDays > 0 {
				expires := now.Add(time.Duration(input.ExpiresInDays) * 24 * time.Hour)
				item.ExpiresAt = &expires
			}
			items = append(items, item)
			names = append(names, input.Name)
		}

		if err := pantryService.AddItems(chatID, items); err != nil {
			log.Error("Failed to add pantry items: %v", err)
			bot.SendMessage(chatID, messageService.GenerateErrorMessage("add pantry items"))
			return
		}

		bot.SendMessage(chatID, fmt.Sprintf("✅ Added %d items to your pantry: %s",
			len(items), strings.Join(names, ", ")))

		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Done adding", "done_adding"),
				tgbotapi.NewInlineKeyboardButtonData("Add more", "add_more"),
			),
		)

		msg := tgbotapi.NewMessage(chatID, "Anything else for the pantry?")
		msg.ReplyMarkup = keyboard
		bot.Send(msg)
	}

	// Start the expiry scheduler
	expiryScheduler := scheduler.New(bot, chatService, pantryService, suggestService,
		messageService, cfg.ReminderHour, cfg.ExpiringSoonDays)
	expiryScheduler.Start()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutting down...")
		expiryScheduler.Stop()
		store.Close()
		os.Exit(0)
	}()

	// Start the bot
	log.Info("Bot is now running. Press CTRL-C to exit.")
	if err := bot.Start(commandHandlers, callbackHandlers, defaultHandler); err != nil {
		log.Error("Error running bot: %v", err)
		os.Exit(1)
	}
}
