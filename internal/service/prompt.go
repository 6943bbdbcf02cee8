package service

import (
	"fmt"
	"strings"

	"github.com/pcoshealth/pcos-assistant/backend/internal/types"
)

// symptomFocus maps a symptom tag to the dietary focus line embedded in the
// prompt for it.
var symptomFocus = map[string]string{
	"insulin_resistance": "low glycemic index foods to stabilize blood sugar",
	"weight_gain":        "portion-controlled, nutrient-dense meals",
	"irregular_periods":  "hormone-balancing foods like omega-3 rich fish and flax seeds",
	"bloating":           "anti-inflammatory, easy-to-digest foods",
	"mood_swings":        "complex carbohydrates and magnesium-rich foods for stable mood",
	"acne":               "anti-inflammatory foods and limited dairy",
	"hair_growth":        "foods that support hormonal balance",
	"hair_loss":          "iron and protein rich foods",
	"fatigue":            "iron-rich foods and steady complex carbohydrates",
	"cravings":           "protein and fiber at every meal to curb cravings",
}

// BuildDietPrompt turns validated preferences into the single instruction
// string sent to the text-generation model. The day/meal template at the end
// is the contract the response parser relies on; the model deviating from it
// degrades parsing, it never fails it.
func BuildDietPrompt(prefs types.DietPreferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %d-day PCOS-friendly %s meal plan with %s cuisine on a %s budget.\n",
		prefs.Days, prefs.DietaryStyle, prefs.Cuisine, prefs.Budget)
	fmt.Fprintf(&b, "Target approximately %d calories per day.\n", prefs.CalorieGoal)
	b.WriteString("Macro targets: 40% carbohydrates, 30% protein, 30% fat. Include 25-35g of fiber per day.\n")

	excluded := append(append([]string{}, prefs.Allergies...), prefs.AvoidFoods...)
	if len(excluded) > 0 {
		fmt.Fprintf(&b, "Strictly exclude: %s.\n", strings.Join(excluded, ", "))
	}
	if len(prefs.PreferredFoods) > 0 {
		fmt.Fprintf(&b, "Prefer using: %s.\n", strings.Join(prefs.PreferredFoods, ", "))
	}

	for _, symptom := range prefs.Symptoms {
		if focus, ok := symptomFocus[symptom]; ok {
			fmt.Fprintf(&b, "The plan should address %s with %s.\n", strings.ReplaceAll(symptom, "_", " "), focus)
		}
	}

	b.WriteString("\nFormat every day exactly like this:\n")
	b.WriteString("DAY 1:\n")
	b.WriteString("BREAKFAST: Meal Name - 350cal\n")
	b.WriteString("Ingredients: ingredient1, ingredient2, ingredient3\n")
	b.WriteString("Prep time: 10 minutes\n")
	b.WriteString("LUNCH: Meal Name - 450cal\n")
	b.WriteString("Ingredients: ingredient1, ingredient2, ingredient3\n")
	b.WriteString("Prep time: 20 minutes\n")
	b.WriteString("DINNER: Meal Name - 500cal\n")
	b.WriteString("Ingredients: ingredient1, ingredient2, ingredient3\n")
	b.WriteString("Prep time: 30 minutes\n")
	b.WriteString("SNACK: Meal Name - 200cal\n")
	b.WriteString("Ingredients: ingredient1, ingredient2\n")
	b.WriteString("Prep time: 5 minutes\n")
	b.WriteString("Daily tip: one short PCOS-friendly tip\n")

	return b.String()
}
