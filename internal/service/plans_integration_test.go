package service

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pcoshealth/pcos-assistant/backend/internal/models"
	"github.com/pcoshealth/pcos-assistant/backend/internal/types"
)

// setupPostgres starts a throwaway PostgreSQL container and migrates the
// schema into it. Covers the jsonb round trips sqlite cannot exercise.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postpass",
				"POSTGRES_DB":       "pcos_assistant_test",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start container")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=postgres password=postpass dbname=pcos_assistant_test sslmode=disable",
		host, mappedPort.Port())

	var db *gorm.DB
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to connect to database")

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.SavedDietPlan{}))
	return db
}

func TestPlanPersistencePostgres(t *testing.T) {
	db := setupPostgres(t)

	authService := NewAuthService(db, "integration-secret")
	dietService := NewDietService(db, &stubGenerator{})
	ctx := context.Background()

	_, user, err := authService.Register(ctx, "Integration User", "integration@example.com", "password123")
	require.NoError(t, err)

	plan := models.DietPlan{
		"day_1": models.DayMeals{
			models.MealBreakfast: {
				Name:        "Spinach Omelette",
				Calories:    310,
				Ingredients: []string{"eggs", "spinach", "feta cheese"},
				PrepTime:    "10 minutes",
			},
			models.MealDinner: {
				Name:        "Salmon with Quinoa",
				Calories:    520,
				Ingredients: []string{"salmon", "quinoa", "broccoli"},
				PrepTime:    "25 minutes",
			},
		},
	}
	grocery := BuildGroceryList(plan)

	saved, err := dietService.SavePlan(ctx, user.ID, types.SavePlanRequest{
		PlanName: "Postgres Round Trip",
		DietPlan: plan,
		Preferences: types.DietPreferences{
			DietaryStyle: "pescatarian",
			CalorieGoal:  1900,
			Days:         1,
			Symptoms:     []string{"fatigue"},
			Cuisine:      "mediterranean",
			Budget:       "moderate",
		},
		GroceryList: grocery,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saved.ID)

	t.Run("should round trip nested jsonb columns", func(t *testing.T) {
		fetched, err := dietService.GetPlan(ctx, user.ID, saved.ID)
		require.NoError(t, err)

		assert.Equal(t, plan, fetched.DietPlan)
		assert.Equal(t, grocery, fetched.GroceryList)
		assert.Equal(t, "pescatarian", fetched.Preferences.DietaryStyle)
		assert.Equal(t, []string{"fatigue"}, fetched.Preferences.Symptoms)
	})

	t.Run("should scope plans to their owner", func(t *testing.T) {
		_, other, err := authService.Register(ctx, "Other User", "other@example.com", "password123")
		require.NoError(t, err)

		_, err = dietService.GetPlan(ctx, other.ID, saved.ID)
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("should soft delete and hide the plan", func(t *testing.T) {
		require.NoError(t, dietService.DeletePlan(ctx, user.ID, saved.ID))

		_, err := dietService.GetPlan(ctx, user.ID, saved.ID)
		assert.ErrorIs(t, err, ErrPlanNotFound)

		var row models.SavedDietPlan
		require.NoError(t, db.Where("id = ?", saved.ID).First(&row).Error)
		assert.False(t, row.IsActive)
	})
}
