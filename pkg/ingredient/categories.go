package ingredient

import "strings"

// Category labels used for pantry items and the matcher's category rule.
const (
	CategoryProduce    = "produce"
	CategoryDairy      = "dairy"
	CategoryMeat       = "meat"
	CategorySeafood    = "seafood"
	CategoryGrains     = "grains"
	CategoryBaking     = "baking"
	CategoryHerbs      = "herbs"
	CategorySpices     = "spices"
	CategoryOils       = "oils"
	CategoryCondiments = "condiments"
	CategoryOther      = "other"
)

// Categorize returns the category for the given ingredient name.
// It performs case-insensitive matching: exact match on the normalized
// name first, then substring match. Falls back to CategoryOther.
func Categorize(name string) string {
	normalized := Normalize(name)
	if normalized == "" {
		return CategoryOther
	}

	if cat, ok := exactCategory[normalized]; ok {
		return cat
	}

	// Substring match, ordered more-specific first
	for _, entry := range categoryKeywords {
		if strings.Contains(normalized, entry.keyword) {
			return entry.category
		}
	}

	return CategoryOther
}

// Interchangeable reports whether two different ingredients of this
// category are plausible stand-ins for each other. Only these categories
// participate in the matcher's category rule.
func Interchangeable(category string) bool {
	switch category {
	case CategoryOils, CategoryHerbs, CategorySpices, CategoryDairy:
		return true
	}
	return false
}

var exactCategory = map[string]string{
	// Produce
	"tomato":       CategoryProduce,
	"potato":       CategoryProduce,
	"sweet potato": CategoryProduce,
	"onion":        CategoryProduce,
	"garlic":       CategoryProduce,
	"carrot":       CategoryProduce,
	"celery":       CategoryProduce,
	"cucumber":     CategoryProduce,
	"lettuce":      CategoryProduce,
	"spinach":      CategoryProduce,
	"kale":         CategoryProduce,
	"broccoli":     CategoryProduce,
	"cauliflower":  CategoryProduce,
	"zucchini":     CategoryProduce,
	"mushroom":     CategoryProduce,
	"bell pepper":  CategoryProduce,
	"apple":        CategoryProduce,
	"banana":       CategoryProduce,
	"lemon":        CategoryProduce,
	"lime":         CategoryProduce,
	"orange":       CategoryProduce,
	"avocado":      CategoryProduce,
	"corn":         CategoryProduce,
	"green bean":   CategoryProduce,
	"pea":          CategoryProduce,
	"cabbage":      CategoryProduce,
	"eggplant":     CategoryProduce,
	"ginger":       CategoryProduce,

	// Dairy
	"milk":           CategoryDairy,
	"butter":         CategoryDairy,
	"margarine":      CategoryDairy,
	"egg":            CategoryDairy,
	"yogurt":         CategoryDairy,
	"greek yogurt":   CategoryDairy,
	"sour cream":     CategoryDairy,
	"heavy cream":    CategoryDairy,
	"cream":          CategoryDairy,
	"cream cheese":   CategoryDairy,
	"cheddar cheese": CategoryDairy,
	"mozzarella":     CategoryDairy,
	"parmesan":       CategoryDairy,
	"feta":           CategoryDairy,
	"buttermilk":     CategoryDairy,

	// Meat
	"chicken":        CategoryMeat,
	"chicken breast": CategoryMeat,
	"chicken thigh":  CategoryMeat,
	"beef":           CategoryMeat,
	"ground beef":    CategoryMeat,
	"pork":           CategoryMeat,
	"bacon":          CategoryMeat,
	"sausage":        CategoryMeat,
	"ham":            CategoryMeat,
	"turkey":         CategoryMeat,
	"lamb":           CategoryMeat,

	// Seafood
	"salmon":  CategorySeafood,
	"tuna":    CategorySeafood,
	"shrimp":  CategorySeafood,
	"cod":     CategorySeafood,
	"tilapia": CategorySeafood,

	// Grains
	"rice":      CategoryGrains,
	"pasta":     CategoryGrains,
	"spaghetti": CategoryGrains,
	"bread":     CategoryGrains,
	"tortilla":  CategoryGrains,
	"quinoa":    CategoryGrains,
	"oat":       CategoryGrains,
	"couscous":  CategoryGrains,
	"noodle":    CategoryGrains,

	// Baking
	"flour":         CategoryBaking,
	"sugar":         CategoryBaking,
	"brown sugar":   CategoryBaking,
	"baking powder": CategoryBaking,
	"baking soda":   CategoryBaking,
	"yeast":         CategoryBaking,
	"honey":         CategoryBaking,
	"vanilla":       CategoryBaking,
	"cocoa powder":  CategoryBaking,
	"molasses":      CategoryBaking,

	// Herbs
	"basil":    CategoryHerbs,
	"parsley":  CategoryHerbs,
	"cilantro": CategoryHerbs,
	"thyme":    CategoryHerbs,
	"rosemary": CategoryHerbs,
	"oregano":  CategoryHerbs,
	"dill":     CategoryHerbs,
	"mint":     CategoryHerbs,
	"sage":     CategoryHerbs,
	"chive":    CategoryHerbs,

	// Spices
	"salt":         CategorySpices,
	"black pepper": CategorySpices,
	"paprika":      CategorySpices,
	"cumin":        CategorySpices,
	"cinnamon":     CategorySpices,
	"chili powder": CategorySpices,
	"curry powder": CategorySpices,
	"turmeric":     CategorySpices,
	"nutmeg":       CategorySpices,

	// Oils
	"olive oil":     CategoryOils,
	"vegetable oil": CategoryOils,
	"canola oil":    CategoryOils,
	"sesame oil":    CategoryOils,
	"coconut oil":   CategoryOils,

	// Condiments
	"soy sauce":      CategoryCondiments,
	"ketchup":        CategoryCondiments,
	"mustard":        CategoryCondiments,
	"mayonnaise":     CategoryCondiments,
	"vinegar":        CategoryCondiments,
	"hot sauce":      CategoryCondiments,
	"worcestershire": CategoryCondiments,
	"tomato paste":   CategoryCondiments,
	"tomato sauce":   CategoryCondiments,
	"hummus":         CategoryCondiments,
}

var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"cheese", CategoryDairy},
	{"yogurt", CategoryDairy},
	{"cream", CategoryDairy},
	{"milk", CategoryDairy},
	{"chicken", CategoryMeat},
	{"beef", CategoryMeat},
	{"pork", CategoryMeat},
	{"fish", CategorySeafood},
	{"oil", CategoryOils},
	{"vinegar", CategoryCondiments},
	{"sauce", CategoryCondiments},
	{"flour", CategoryBaking},
	{"sugar", CategoryBaking},
	{"pepper", CategoryProduce},
	{"bean", CategoryProduce},
	{"berry", CategoryProduce},
	{"pasta", CategoryGrains},
	{"bread", CategoryGrains},
	{"rice", CategoryGrains},
}
