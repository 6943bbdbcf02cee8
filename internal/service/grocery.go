package service

import (
	"sort"
	"strings"

	"github.com/pcoshealth/pcos-assistant/backend/internal/models"
)

// categoryKeywords is evaluated in order; the first category whose keyword
// matches wins. Anything unmatched lands in pantry. The spices category is
// reserved in the schema but has no keywords, so it is never assigned here.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{models.CategoryProteins, []string{
		"chicken", "turkey", "fish", "salmon", "tuna", "shrimp", "egg",
		"tofu", "tempeh", "paneer", "lentil", "chickpea", "bean",
	}},
	{models.CategoryVegetables, []string{
		"spinach", "kale", "broccoli", "cauliflower", "tomato", "cucumber",
		"pepper", "carrot", "zucchini", "lettuce", "onion", "mushroom",
		"cabbage", "asparagus", "celery",
	}},
	{models.CategoryFruits, []string{
		"berr", "apple", "banana", "orange", "avocado", "mango", "grape",
		"melon", "kiwi", "peach", "pear",
	}},
	{models.CategoryGrains, []string{
		"quinoa", "oat", "rice", "bread", "pasta", "barley", "millet",
		"couscous", "tortilla", "buckwheat",
	}},
	{models.CategoryDairy, []string{
		"yogurt", "milk", "cheese", "butter", "kefir",
	}},
	{models.CategoryPantry, []string{
		"oil", "nut", "almond", "seed", "honey", "vinegar", "tahini",
		"flour", "sauce", "spice", "cinnamon",
	}},
}

// CategorizeIngredient returns the grocery category for one ingredient.
// Matching is case-insensitive substring containment in fixed priority
// order; unmatched ingredients default to pantry.
func CategorizeIngredient(ingredient string) string {
	lower := strings.ToLower(ingredient)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}
	return models.CategoryPantry
}

// BuildGroceryList collects every ingredient across the plan, de-duplicates,
// drops blanks, and buckets each into its category. Categories that end up
// empty are omitted from the result.
func BuildGroceryList(plan models.DietPlan) models.GroceryList {
	list := models.GroceryList{}
	seen := map[string]bool{}

	// Walk days in key order so the output is stable for identical plans.
	dayKeys := make([]string, 0, len(plan))
	for day := range plan {
		dayKeys = append(dayKeys, day)
	}
	sort.Strings(dayKeys)

	for _, day := range dayKeys {
		for _, meal := range []string{models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack} {
			info, ok := plan[day][meal]
			if !ok {
				continue
			}
			for _, ingredient := range info.Ingredients {
				ingredient = strings.TrimSpace(ingredient)
				if ingredient == "" {
					continue
				}
				key := strings.ToLower(ingredient)
				if seen[key] {
					continue
				}
				seen[key] = true

				category := CategorizeIngredient(ingredient)
				list[category] = append(list[category], ingredient)
			}
		}
	}

	return list
}
