package service

import (
	"fmt"

	"github.com/pcoshealth/pcos-assistant/backend/internal/models"
)

// fallbackDayTemplate is the fixed day served when generation fails. It is
// replicated across the requested day count.
var fallbackDayTemplate = models.DayMeals{
	models.MealBreakfast: {
		Name:        "Greek Yogurt Power Bowl",
		Calories:    320,
		Ingredients: []string{"Greek yogurt", "berries", "chia seeds", "almond butter", "cinnamon"},
		PrepTime:    "5 minutes",
	},
	models.MealLunch: {
		Name:        "Quinoa Buddha Bowl",
		Calories:    450,
		Ingredients: []string{"quinoa", "roasted vegetables", "chickpeas", "tahini dressing"},
		PrepTime:    "25 minutes",
	},
	models.MealDinner: {
		Name:        "Lentil Curry with Brown Rice",
		Calories:    400,
		Ingredients: []string{"lentils", "coconut milk", "spinach", "spices", "brown rice"},
		PrepTime:    "30 minutes",
	},
	models.MealSnack: {
		Name:        "Apple with Almond Butter",
		Calories:    180,
		Ingredients: []string{"apple", "almond butter", "cinnamon"},
		PrepTime:    "2 minutes",
	},
}

// FallbackPlan builds the deterministic substitute plan: the fixed day
// template copied across days day-keys. It never fails.
func FallbackPlan(days int) models.DietPlan {
	plan := models.DietPlan{}
	for day := 1; day <= days; day++ {
		plan[fmt.Sprintf("day_%d", day)] = copyDay(fallbackDayTemplate)
	}
	return plan
}

// copyDay deep-copies a day so callers can mutate one day without touching
// the template or its siblings.
func copyDay(day models.DayMeals) models.DayMeals {
	out := models.DayMeals{}
	for meal, info := range day {
		ingredients := make([]string, len(info.Ingredients))
		copy(ingredients, info.Ingredients)
		info.Ingredients = ingredients
		out[meal] = info
	}
	return out
}
