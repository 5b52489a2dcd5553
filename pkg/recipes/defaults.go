package recipes

import "github.com/korjavin/pantrychef/pkg/models"

// defaultRecipes seed an empty catalog so /suggest works out of the box.
var defaultRecipes = []models.Recipe{
	{
		Name:    "Spaghetti Bolognese",
		Cuisine: "Italian",
		Ingredients: []models.RecipeIngredient{
			{Name: "spaghetti", Quantity: 400, Unit: "g"},
			{Name: "ground beef", Quantity: 500, Unit: "g"},
			{Name: "onion", Quantity: 1},
			{Name: "garlic", Quantity: 2, Unit: "cloves"},
			{Name: "tomato sauce", Quantity: 2, Unit: "cups"},
			{Name: "olive oil", Quantity: 2, Unit: "tbsp"},
		},
		Instructions: []string{
			"Brown the beef with onion and garlic in olive oil.",
			"Add tomato sauce and simmer for 20 minutes.",
			"Cook the spaghetti and combine.",
		},
		PrepMinutes: 10,
		CookMinutes: 30,
		Difficulty:  "easy",
		MealTypes:   []string{"dinner"},
	},
	{
		Name:    "Vegetable Omelette",
		Cuisine: "French",
		Ingredients: []models.RecipeIngredient{
			{Name: "eggs", Quantity: 3},
			{Name: "butter", Quantity: 1, Unit: "tbsp"},
			{Name: "bell pepper", Quantity: 0.5},
			{Name: "onion", Quantity: 0.5},
			{Name: "cheddar cheese", Quantity: 50, Unit: "g"},
		},
		Instructions: []string{
			"Whisk the eggs.",
			"Soften the vegetables in butter, pour over the eggs.",
			"Fold with cheese when nearly set.",
		},
		PrepMinutes: 5,
		CookMinutes: 10,
		Difficulty:  "easy",
		MealTypes:   []string{"breakfast", "lunch"},
		DietaryTags: []string{"vegetarian"},
	},
	{
		Name:    "Chicken Stir Fry",
		Cuisine: "Asian",
		Ingredients: []models.RecipeIngredient{
			{Name: "chicken breast", Quantity: 400, Unit: "g"},
			{Name: "soy sauce", Quantity: 3, Unit: "tbsp"},
			{Name: "broccoli", Quantity: 1, Unit: "head"},
			{Name: "carrot", Quantity: 2},
			{Name: "garlic", Quantity: 2, Unit: "cloves"},
			{Name: "rice", Quantity: 2, Unit: "cups"},
			{Name: "sesame oil", Quantity: 1, Unit: "tbsp"},
		},
		Instructions: []string{
			"Sear the chicken in sesame oil.",
			"Add vegetables and garlic, stir-fry until crisp-tender.",
			"Finish with soy sauce, serve over rice.",
		},
		PrepMinutes: 15,
		CookMinutes: 15,
		Difficulty:  "medium",
		MealTypes:   []string{"dinner"},
	},
	{
		Name:    "Greek Salad",
		Cuisine: "Greek",
		Ingredients: []models.RecipeIngredient{
			{Name: "tomatoes", Quantity: 3},
			{Name: "cucumber", Quantity: 1},
			{Name: "feta", Quantity: 150, Unit: "g"},
			{Name: "olive oil", Quantity: 3, Unit: "tbsp"},
			{Name: "onion", Quantity: 0.5},
		},
		Instructions: []string{
			"Chop the vegetables, crumble the feta over them.",
			"Dress with olive oil and season.",
		},
		PrepMinutes: 10,
		Difficulty:  "easy",
		MealTypes:   []string{"lunch", "dinner"},
		DietaryTags: []string{"vegetarian", "gluten-free"},
	},
	{
		Name:    "Borscht",
		Cuisine: "Russian",
		Ingredients: []models.RecipeIngredient{
			{Name: "beets", Quantity: 3},
			{Name: "cabbage", Quantity: 0.5, Unit: "head"},
			{Name: "potato", Quantity: 2},
			{Name: "carrot", Quantity: 1},
			{Name: "onion", Quantity: 1},
			{Name: "sour cream", Quantity: 0.5, Unit: "cup"},
			{Name: "beef", Quantity: 300, Unit: "g"},
		},
		Instructions: []string{
			"Simmer the beef for a rich stock.",
			"Add grated beets, cabbage, potatoes and the rest.",
			"Serve with a spoon of sour cream.",
		},
		PrepMinutes: 20,
		CookMinutes: 60,
		Difficulty:  "hard",
		MealTypes:   []string{"dinner"},
	},
}
