package types

import "github.com/pcoshealth/pcos-assistant/backend/internal/models"

// DietPreferences is the full, enum-validated input to diet generation.
// Bounds and enums are enforced by the binding layer before the pipeline
// runs; the pipeline itself never sees out-of-range input.
type DietPreferences struct {
	DietaryStyle   string   `json:"dietary_style" binding:"required,oneof=vegetarian vegan pescatarian omnivore keto mediterranean"`
	CalorieGoal    int      `json:"calorie_goal" binding:"required,gte=1200,lte=3000"`
	Days           int      `json:"days" binding:"required,gte=1,lte=14"`
	Allergies      []string `json:"allergies"`
	Symptoms       []string `json:"symptoms" binding:"omitempty,dive,oneof=irregular_periods weight_gain acne hair_growth hair_loss mood_swings insulin_resistance bloating fatigue cravings"`
	Cuisine        string   `json:"cuisine" binding:"omitempty,oneof=indian mediterranean asian mexican american mixed"`
	Budget         string   `json:"budget" binding:"omitempty,oneof=low moderate high"`
	AvoidFoods     []string `json:"avoid_foods"`
	PreferredFoods []string `json:"preferred_foods"`
}

// Snapshot converts the request into the persisted preference snapshot.
func (p DietPreferences) Snapshot() models.PlanPreferences {
	return models.PlanPreferences{
		DietaryStyle:   p.DietaryStyle,
		CalorieGoal:    p.CalorieGoal,
		Days:           p.Days,
		Allergies:      p.Allergies,
		Symptoms:       p.Symptoms,
		Cuisine:        p.Cuisine,
		Budget:         p.Budget,
		AvoidFoods:     p.AvoidFoods,
		PreferredFoods: p.PreferredFoods,
	}
}

// QuickDietRequest is the reduced entry point. Unlike DietPreferences the
// dietary style and symptoms are free text; the two contracts are kept
// separate on purpose.
type QuickDietRequest struct {
	DietaryStyle string   `json:"dietary_style" binding:"required"`
	CalorieGoal  int      `json:"calorie_goal" binding:"required,gte=1200,lte=3000"`
	Days         int      `json:"days" binding:"required,gte=1,lte=14"`
	Symptoms     []string `json:"symptoms"`
}

// Preferences expands the quick request into full preferences with defaults.
func (q QuickDietRequest) Preferences() DietPreferences {
	return DietPreferences{
		DietaryStyle:   q.DietaryStyle,
		CalorieGoal:    q.CalorieGoal,
		Days:           q.Days,
		Allergies:      []string{},
		Symptoms:       q.Symptoms,
		Cuisine:        "mixed",
		Budget:         "moderate",
		AvoidFoods:     []string{},
		PreferredFoods: []string{},
	}
}

// GenerationResult is the uniform envelope returned by diet generation.
// Success implies diet_plan and grocery_list are set; failure implies error
// and fallback_plan are set. The two shapes never mix.
type GenerationResult struct {
	Success      bool               `json:"success"`
	DietPlan     models.DietPlan    `json:"diet_plan,omitempty"`
	GroceryList  models.GroceryList `json:"grocery_list,omitempty"`
	Error        string             `json:"error,omitempty"`
	FallbackPlan models.DietPlan    `json:"fallback_plan,omitempty"`
	GeneratedAt  string             `json:"generated_at,omitempty"`
}

// SavePlanRequest persists a previously generated plan under a name.
type SavePlanRequest struct {
	PlanName    string             `json:"plan_name" binding:"required,min=1,max=100"`
	DietPlan    models.DietPlan    `json:"diet_plan" binding:"required"`
	Preferences DietPreferences    `json:"preferences" binding:"required"`
	GroceryList models.GroceryList `json:"grocery_list"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token together with the user it belongs to.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// ChatRequest is a single message to the assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=1000"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	MessageID string `json:"message_id"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// MessageResponse is a generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
