package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal slot keys within a day.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Grocery list categories. Spices is reserved in the schema but the
// categorizer never assigns to it.
const (
	CategoryProteins   = "proteins"
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryGrains     = "grains"
	CategoryDairy      = "dairy"
	CategoryPantry     = "pantry"
	CategorySpices     = "spices"
)

// MealInfo describes a single meal inside a diet plan day.
type MealInfo struct {
	Name         string   `json:"name"`
	Calories     int      `json:"calories"`
	Ingredients  []string `json:"ingredients"`
	PrepTime     string   `json:"prep_time"`
	Instructions string   `json:"instructions,omitempty"`
}

// DayMeals maps meal slot ("breakfast", "lunch", "dinner", "snack") to its
// meal. Zero to four slots populated is valid.
type DayMeals map[string]MealInfo

// DietPlan maps day keys ("day_1".."day_N") to the meals of that day.
type DietPlan map[string]DayMeals

// Value implements the driver.Valuer interface
func (p DietPlan) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *DietPlan) Scan(value interface{}) error {
	return scanJSON(value, p)
}

// GroceryList maps a category name to the de-duplicated ingredients assigned
// to it. Empty categories are never present.
type GroceryList map[string][]string

// Value implements the driver.Valuer interface
func (l GroceryList) Value() (driver.Value, error) {
	if l == nil {
		return "{}", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *GroceryList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// PlanPreferences is the snapshot of the preferences a plan was generated
// from, stored alongside the saved plan.
type PlanPreferences struct {
	DietaryStyle   string   `json:"dietary_style"`
	CalorieGoal    int      `json:"calorie_goal"`
	Days           int      `json:"days"`
	Allergies      []string `json:"allergies"`
	Symptoms       []string `json:"symptoms"`
	Cuisine        string   `json:"cuisine"`
	Budget         string   `json:"budget"`
	AvoidFoods     []string `json:"avoid_foods"`
	PreferredFoods []string `json:"preferred_foods"`
}

// Value implements the driver.Valuer interface
func (p PlanPreferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *PlanPreferences) Scan(value interface{}) error {
	return scanJSON(value, p)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}

	return json.Unmarshal(bytes, dest)
}

// SavedDietPlan is a diet plan persisted for one user. Plans are soft
// deleted: is_active flips to false and the row stays in storage.
type SavedDietPlan struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanName    string          `gorm:"size:100;not null" json:"plan_name"`
	DietPlan    DietPlan        `gorm:"type:jsonb;not null" json:"diet_plan"`
	Preferences PlanPreferences `gorm:"type:jsonb;not null" json:"preferences"`
	GroceryList GroceryList     `gorm:"type:jsonb" json:"grocery_list"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
}

func (SavedDietPlan) TableName() string {
	return "diet_plans"
}

func (p *SavedDietPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
