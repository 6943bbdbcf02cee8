package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pcoshealth/pcos-assistant/backend/internal/types"
)

func TestBuildDietPrompt(t *testing.T) {
	prefs := types.DietPreferences{
		DietaryStyle:   "vegetarian",
		CalorieGoal:    1800,
		Days:           5,
		Allergies:      []string{"peanuts"},
		Symptoms:       []string{"insulin_resistance", "bloating"},
		Cuisine:        "mediterranean",
		Budget:         "moderate",
		AvoidFoods:     []string{"white bread"},
		PreferredFoods: []string{"salmon", "quinoa"},
	}

	prompt := BuildDietPrompt(prefs)

	t.Run("should embed the core preferences", func(t *testing.T) {
		assert.Contains(t, prompt, "5-day")
		assert.Contains(t, prompt, "vegetarian")
		assert.Contains(t, prompt, "mediterranean cuisine")
		assert.Contains(t, prompt, "moderate budget")
		assert.Contains(t, prompt, "1800 calories per day")
	})

	t.Run("should include macro and fiber targets", func(t *testing.T) {
		assert.Contains(t, prompt, "40% carbohydrates, 30% protein, 30% fat")
		assert.Contains(t, prompt, "25-35g of fiber")
	})

	t.Run("should list exclusions and preferences", func(t *testing.T) {
		assert.Contains(t, prompt, "Strictly exclude: peanuts, white bread.")
		assert.Contains(t, prompt, "Prefer using: salmon, quinoa.")
	})

	t.Run("should carry the symptom focus lines", func(t *testing.T) {
		assert.Contains(t, prompt, "insulin resistance")
		assert.Contains(t, prompt, "low glycemic index foods")
		assert.Contains(t, prompt, "anti-inflammatory, easy-to-digest foods")
	})

	t.Run("should end with the parsing template", func(t *testing.T) {
		assert.Contains(t, prompt, "DAY 1:")
		assert.Contains(t, prompt, "BREAKFAST: Meal Name - 350cal")
		assert.Contains(t, prompt, "Ingredients: ingredient1, ingredient2, ingredient3")
		assert.Contains(t, prompt, "Prep time: 10 minutes")
		assert.Contains(t, prompt, "Daily tip:")
	})

	t.Run("should omit exclusion line when nothing is excluded", func(t *testing.T) {
		minimal := types.DietPreferences{
			DietaryStyle: "omnivore",
			CalorieGoal:  2000,
			Days:         3,
			Cuisine:      "mixed",
			Budget:       "low",
		}

		p := BuildDietPrompt(minimal)

		assert.NotContains(t, p, "Strictly exclude")
		assert.NotContains(t, p, "Prefer using")
	})
}
