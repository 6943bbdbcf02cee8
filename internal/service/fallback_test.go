package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcoshealth/pcos-assistant/backend/internal/models"
)

func TestFallbackPlan(t *testing.T) {
	t.Run("should replicate the template across the day count", func(t *testing.T) {
		plan := FallbackPlan(3)

		require.Len(t, plan, 3)
		for day := 1; day <= 3; day++ {
			key := fmt.Sprintf("day_%d", day)
			require.Contains(t, plan, key)
			assert.Equal(t, fallbackDayTemplate, plan[key])
		}
	})

	t.Run("should populate all four meal slots", func(t *testing.T) {
		plan := FallbackPlan(1)

		day := plan["day_1"]
		require.Len(t, day, 4)
		assert.Equal(t, "Greek Yogurt Power Bowl", day[models.MealBreakfast].Name)
		assert.Equal(t, 450, day[models.MealLunch].Calories)
		assert.Equal(t, "30 minutes", day[models.MealDinner].PrepTime)
		assert.Equal(t, []string{"apple", "almond butter", "cinnamon"}, day[models.MealSnack].Ingredients)
	})

	t.Run("should deep copy days", func(t *testing.T) {
		plan := FallbackPlan(2)

		meal := plan["day_1"][models.MealBreakfast]
		meal.Ingredients[0] = "changed"
		plan["day_1"][models.MealBreakfast] = meal

		assert.Equal(t, "Greek yogurt", plan["day_2"][models.MealBreakfast].Ingredients[0])
		assert.Equal(t, "Greek yogurt", fallbackDayTemplate[models.MealBreakfast].Ingredients[0])
	})

	t.Run("should return empty plan for zero days", func(t *testing.T) {
		assert.Empty(t, FallbackPlan(0))
	})
}
