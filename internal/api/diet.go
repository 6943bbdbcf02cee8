package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pcoshealth/pcos-assistant/backend/internal/middleware"
	"github.com/pcoshealth/pcos-assistant/backend/internal/service"
	"github.com/pcoshealth/pcos-assistant/backend/internal/types"
)

// DietHandler handles diet generation and saved-plan management.
type DietHandler struct {
	dietService *service.DietService
	authService service.IAuthService
	rateLimiter *middleware.RateLimiter
}

// NewDietHandler creates a new DietHandler instance. The rate limiter may be
// nil when Redis is unavailable; generation endpoints then run unlimited.
func NewDietHandler(dietService *service.DietService, authService service.IAuthService, rateLimiter *middleware.RateLimiter) *DietHandler {
	return &DietHandler{
		dietService: dietService,
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes registers the diet routes
func (h *DietHandler) RegisterRoutes(router *gin.RouterGroup) {
	diet := router.Group("/diet")

	generate := diet.Group("")
	if h.rateLimiter != nil {
		generate.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		generate.POST("/generate", h.Generate)
		generate.POST("/quick-generate", h.QuickGenerate)
	}

	diet.GET("/suggestions/symptoms", h.SymptomSuggestions)
	diet.GET("/meal-ideas/:meal_type", h.MealIdeas)

	protected := diet.Group("")
	protected.Use(middleware.AuthMiddleware(h.authService))
	{
		protected.POST("/save", h.SavePlan)
		protected.GET("/my-plans", h.ListPlans)
		protected.GET("/plan/:id", h.GetPlan)
		protected.DELETE("/plan/:id", h.DeletePlan)
	}
}

// Generate runs the full pipeline from complete preferences. A failed
// generation is still a 200: the envelope carries the error and fallback
// plan instead of an HTTP failure.
func (h *DietHandler) Generate(c *gin.Context) {
	var prefs types.DietPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applyDefaults(&prefs)

	c.JSON(http.StatusOK, h.dietService.GeneratePlan(c.Request.Context(), prefs))
}

// QuickGenerate runs the pipeline from the reduced request shape.
func (h *DietHandler) QuickGenerate(c *gin.Context) {
	var req types.QuickDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.dietService.GeneratePlan(c.Request.Context(), req.Preferences()))
}

// SavePlan persists a generated plan for the authenticated user.
func (h *DietHandler) SavePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.dietService.SavePlan(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save diet plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlans returns the caller's active plans, newest first.
func (h *DietHandler) ListPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	plans, err := h.dietService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve diet plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan returns one of the caller's plans by id.
func (h *DietHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrPlanNotFound.Error()})
		return
	}

	plan, err := h.dietService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve diet plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan soft-deletes one of the caller's plans.
func (h *DietHandler) DeletePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrPlanNotFound.Error()})
		return
	}

	if err := h.dietService.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete diet plan"})
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Diet plan deleted successfully"})
}

// SymptomSuggestions returns the static symptom-keyed diet guidance.
func (h *DietHandler) SymptomSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, service.SymptomSuggestions())
}

// MealIdeas returns canned meal ideas for a meal type and dietary style.
func (h *DietHandler) MealIdeas(c *gin.Context) {
	mealType := c.Param("meal_type")
	dietaryStyle := c.DefaultQuery("dietary_style", "vegetarian")
	c.JSON(http.StatusOK, service.MealIdeas(mealType, dietaryStyle))
}

// applyDefaults fills the optional enum fields the same way the quick path
// does.
func applyDefaults(prefs *types.DietPreferences) {
	if prefs.Cuisine == "" {
		prefs.Cuisine = "mixed"
	}
	if prefs.Budget == "" {
		prefs.Budget = "moderate"
	}
}
