// Package storage provides persistent storage for the PantryChef bot.
// It uses BadgerDB as the embedded database, storing every value as JSON
// under prefixed string keys (pantry:, recipe:, chat:).
package storage
