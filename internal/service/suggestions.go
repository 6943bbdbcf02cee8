package service

// SymptomSuggestion is the static dietary guidance attached to one symptom.
type SymptomSuggestion struct {
	Focus   string   `json:"focus"`
	Include []string `json:"include"`
	Avoid   []string `json:"avoid"`
	Tip     string   `json:"tip"`
}

// MealIdea is a canned PCOS-friendly meal suggestion.
type MealIdea struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Calories    int      `json:"calories"`
	PrepTime    string   `json:"prep_time"`
}

var symptomSuggestions = map[string]SymptomSuggestion{
	"insulin_resistance": {
		Focus:   "Low glycemic index foods",
		Include: []string{"quinoa", "sweet potatoes", "legumes", "nuts", "leafy greens"},
		Avoid:   []string{"white bread", "sugary drinks", "processed snacks", "white rice"},
		Tip:     "Eat protein and fiber with each meal to stabilize blood sugar",
	},
	"weight_gain": {
		Focus:   "Portion control and nutrient density",
		Include: []string{"lean proteins", "vegetables", "healthy fats", "whole grains"},
		Avoid:   []string{"fried foods", "large portions", "liquid calories", "processed foods"},
		Tip:     "Focus on feeling satisfied rather than full, eat slowly",
	},
	"irregular_periods": {
		Focus:   "Hormone-balancing foods",
		Include: []string{"omega-3 rich fish", "flax seeds", "spearmint tea", "cinnamon"},
		Avoid:   []string{"excess dairy", "inflammatory foods", "alcohol", "caffeine"},
		Tip:     "Maintain consistent meal timing to support hormonal rhythm",
	},
	"bloating": {
		Focus:   "Anti-inflammatory and easy-to-digest foods",
		Include: []string{"ginger", "fennel", "cucumber", "yogurt with probiotics"},
		Avoid:   []string{"carbonated drinks", "beans initially", "cruciferous veggies", "artificial sweeteners"},
		Tip:     "Eat smaller, more frequent meals and chew thoroughly",
	},
	"mood_swings": {
		Focus:   "Blood sugar stability and mood-supporting nutrients",
		Include: []string{"complex carbs", "magnesium-rich foods", "omega-3s", "B vitamins"},
		Avoid:   []string{"sugar spikes", "caffeine excess", "alcohol", "skipping meals"},
		Tip:     "Regular meal timing and protein at each meal supports stable mood",
	},
}

var mealIdeas = map[string]map[string][]MealIdea{
	"breakfast": {
		"vegetarian": {
			{
				Name:        "PCOS Power Bowl",
				Ingredients: []string{"Greek yogurt", "berries", "chia seeds", "almond butter", "cinnamon"},
				Calories:    320,
				PrepTime:    "5 minutes",
			},
			{
				Name:        "Veggie Scramble",
				Ingredients: []string{"eggs", "spinach", "bell peppers", "avocado", "herbs"},
				Calories:    280,
				PrepTime:    "10 minutes",
			},
		},
		"vegan": {
			{
				Name:        "Overnight Oats",
				Ingredients: []string{"oats", "almond milk", "chia seeds", "berries", "nuts"},
				Calories:    300,
				PrepTime:    "5 minutes prep, overnight",
			},
		},
	},
	"lunch": {
		"vegetarian": {
			{
				Name:        "Quinoa Buddha Bowl",
				Ingredients: []string{"quinoa", "roasted vegetables", "chickpeas", "tahini dressing"},
				Calories:    450,
				PrepTime:    "25 minutes",
			},
		},
	},
	"dinner": {
		"vegetarian": {
			{
				Name:        "Lentil Curry",
				Ingredients: []string{"lentils", "coconut milk", "spinach", "spices", "brown rice"},
				Calories:    400,
				PrepTime:    "30 minutes",
			},
		},
	},
	"snack": {
		"vegetarian": {
			{
				Name:        "Apple with Almond Butter",
				Ingredients: []string{"apple", "almond butter", "cinnamon"},
				Calories:    180,
				PrepTime:    "2 minutes",
			},
		},
	},
}

// SymptomSuggestions returns the static symptom-keyed diet guidance.
func SymptomSuggestions() map[string]SymptomSuggestion {
	return symptomSuggestions
}

// MealIdeas returns canned meal ideas for a meal type and dietary style,
// falling back to vegetarian breakfast ideas for unknown combinations.
func MealIdeas(mealType, dietaryStyle string) []MealIdea {
	if styles, ok := mealIdeas[mealType]; ok {
		if ideas, ok := styles[dietaryStyle]; ok {
			return ideas
		}
	}
	return mealIdeas["breakfast"]["vegetarian"]
}
