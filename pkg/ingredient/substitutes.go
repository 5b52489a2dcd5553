package ingredient

import "github.com/korjavin/pantrychef/pkg/models"

// SubstitutesFor returns the known substitutes for a required ingredient.
// The argument must already be normalized. The returned slice is shared
// reference data and must not be modified.
func SubstitutesFor(normalized string) []models.Substitute {
	return substituteTable[normalized]
}

// substituteTable is static reference data, keyed by normalized original
// name. Ratios are substitute-per-original; confidence is the table's own
// trust in the swap, before the matcher applies its discount.
var substituteTable = map[string][]models.Substitute{
	"butter": {
		{Original: "butter", Substitute: "margarine", Ratio: 1.0, Confidence: 0.95, Note: "direct swap in most recipes"},
		{Original: "butter", Substitute: "olive oil", Ratio: 0.75, Confidence: 0.8, Note: "use 3/4 the amount; changes flavor slightly"},
		{Original: "butter", Substitute: "coconut oil", Ratio: 1.0, Confidence: 0.75, Note: "works for baking"},
	},
	"milk": {
		{Original: "milk", Substitute: "heavy cream", Ratio: 0.5, Confidence: 0.85, Note: "dilute with equal part water"},
		{Original: "milk", Substitute: "yogurt", Ratio: 1.0, Confidence: 0.7, Note: "thin with water for batters"},
	},
	"buttermilk": {
		{Original: "buttermilk", Substitute: "milk", Ratio: 1.0, Confidence: 0.8, Note: "add a splash of lemon juice or vinegar"},
		{Original: "buttermilk", Substitute: "yogurt", Ratio: 1.0, Confidence: 0.75},
	},
	"sour cream": {
		{Original: "sour cream", Substitute: "greek yogurt", Ratio: 1.0, Confidence: 0.9, Note: "near-identical texture"},
	},
	"heavy cream": {
		{Original: "heavy cream", Substitute: "milk", Ratio: 1.0, Confidence: 0.6, Note: "add butter for richness"},
	},
	"egg": {
		{Original: "egg", Substitute: "greek yogurt", Ratio: 0.25, Confidence: 0.6, Note: "1/4 cup per egg, baking only"},
	},
	"olive oil": {
		{Original: "olive oil", Substitute: "vegetable oil", Ratio: 1.0, Confidence: 0.9},
		{Original: "olive oil", Substitute: "canola oil", Ratio: 1.0, Confidence: 0.9},
		{Original: "olive oil", Substitute: "butter", Ratio: 1.25, Confidence: 0.7, Note: "for sautéing, not dressings"},
	},
	"vegetable oil": {
		{Original: "vegetable oil", Substitute: "canola oil", Ratio: 1.0, Confidence: 0.95},
		{Original: "vegetable oil", Substitute: "olive oil", Ratio: 1.0, Confidence: 0.85},
	},
	"sugar": {
		{Original: "sugar", Substitute: "honey", Ratio: 0.75, Confidence: 0.8, Note: "reduce other liquids slightly"},
		{Original: "sugar", Substitute: "brown sugar", Ratio: 1.0, Confidence: 0.9},
	},
	"brown sugar": {
		{Original: "brown sugar", Substitute: "sugar", Ratio: 1.0, Confidence: 0.85, Note: "add molasses if available"},
	},
	"lemon juice": {
		{Original: "lemon juice", Substitute: "lime juice", Ratio: 1.0, Confidence: 0.9},
		{Original: "lemon juice", Substitute: "vinegar", Ratio: 0.5, Confidence: 0.6, Note: "half the amount, savory dishes only"},
	},
	"lime": {
		{Original: "lime", Substitute: "lemon", Ratio: 1.0, Confidence: 0.9},
	},
	"cilantro": {
		{Original: "cilantro", Substitute: "parsley", Ratio: 1.0, Confidence: 0.6, Note: "milder flavor"},
	},
	"soy sauce": {
		{Original: "soy sauce", Substitute: "worcestershire", Ratio: 1.0, Confidence: 0.6},
	},
	"chicken breast": {
		{Original: "chicken breast", Substitute: "chicken thigh", Ratio: 1.0, Confidence: 0.9},
		{Original: "chicken breast", Substitute: "turkey", Ratio: 1.0, Confidence: 0.7},
	},
	"ground beef": {
		{Original: "ground beef", Substitute: "ground turkey", Ratio: 1.0, Confidence: 0.85, Note: "leaner, cooks faster"},
	},
	"tomato sauce": {
		{Original: "tomato sauce", Substitute: "tomato paste", Ratio: 0.5, Confidence: 0.75, Note: "thin with water"},
	},
	"rice": {
		{Original: "rice", Substitute: "quinoa", Ratio: 1.0, Confidence: 0.7},
		{Original: "rice", Substitute: "couscous", Ratio: 1.0, Confidence: 0.7},
	},
	"pasta": {
		{Original: "pasta", Substitute: "noodle", Ratio: 1.0, Confidence: 0.8},
	},
}
