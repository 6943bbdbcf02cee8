package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pcoshealth/pcos-assistant/backend/internal/models"
	"github.com/pcoshealth/pcos-assistant/backend/internal/types"
)

var ErrPlanNotFound = errors.New("diet plan not found")

// maximum number of plans returned by a listing
const planListLimit = 100

// DietService generates diet plans through the external model and manages
// the plans users save.
type DietService struct {
	db        *gorm.DB
	generator TextGenerator
}

func NewDietService(db *gorm.DB, generator TextGenerator) *DietService {
	return &DietService{
		db:        db,
		generator: generator,
	}
}

// GeneratePlan runs the full pipeline: prompt, one model call, parse,
// categorize. It never returns an error; every failure becomes a
// {success:false, error, fallback_plan} envelope so callers always have a
// usable plan to show.
func (s *DietService) GeneratePlan(ctx context.Context, prefs types.DietPreferences) (result *types.GenerationResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("diet generation panic: %v", r)
			result = s.failure(fmt.Sprintf("%v", r), prefs.Days)
		}
	}()

	prompt := BuildDietPrompt(prefs)

	raw, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("diet generation call failed: %v", err)
		return s.failure("Failed to generate diet plan", prefs.Days)
	}

	plan := ParseDietPlan(raw, prefs.Days)
	groceries := BuildGroceryList(plan)

	return &types.GenerationResult{
		Success:     true,
		DietPlan:    plan,
		GroceryList: groceries,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *DietService) failure(message string, days int) *types.GenerationResult {
	return &types.GenerationResult{
		Success:      false,
		Error:        message,
		FallbackPlan: FallbackPlan(days),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// SavePlan stores a generated plan for the given user.
func (s *DietService) SavePlan(ctx context.Context, userID uuid.UUID, req types.SavePlanRequest) (*models.SavedDietPlan, error) {
	plan := models.SavedDietPlan{
		UserID:      userID,
		PlanName:    req.PlanName,
		DietPlan:    req.DietPlan,
		Preferences: req.Preferences.Snapshot(),
		GroceryList: req.GroceryList,
		IsActive:    true,
	}

	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("failed to save diet plan: %w", err)
	}

	return &plan, nil
}

// ListPlans returns the user's active plans, newest first.
func (s *DietService) ListPlans(ctx context.Context, userID uuid.UUID) ([]models.SavedDietPlan, error) {
	var plans []models.SavedDietPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Limit(planListLimit).
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list diet plans: %w", err)
	}
	return plans, nil
}

// GetPlan fetches one active plan. A plan owned by someone else is reported
// as not found, never as forbidden.
func (s *DietService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*models.SavedDietPlan, error) {
	var plan models.SavedDietPlan
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_active = ?", planID, userID, true).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// DeletePlan soft-deletes a plan by flipping is_active. The row stays in
// storage. Ownership mismatch behaves exactly like a missing plan.
func (s *DietService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Model(&models.SavedDietPlan{}).
		Where("id = ? AND user_id = ?", planID, userID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
