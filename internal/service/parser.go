package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pcoshealth/pcos-assistant/backend/internal/models"
)

var (
	dayNumberPattern = regexp.MustCompile(`DAY\s+(\d+)`)
	caloriesPattern  = regexp.MustCompile(`(?i)(\d+)\s*cal`)
)

// mealMarkers are checked against the uppercased line, in this order.
var mealMarkers = []struct {
	marker string
	meal   string
}{
	{"BREAKFAST:", models.MealBreakfast},
	{"LUNCH:", models.MealLunch},
	{"DINNER:", models.MealDinner},
	{"SNACK:", models.MealSnack},
}

// parserState carries the two cursors the line scanner needs: the day being
// filled and the meal within it. A day header resets both.
type parserState struct {
	day  string
	meal string
}

// ParseDietPlan scans raw model output into a structured plan. It tolerates
// any input shape: unknown lines are ignored, meal lines without a preceding
// day header are dropped, and a day header with no meals stays as an empty
// entry. It never fails; the worst outcome is an empty plan.
func ParseDietPlan(raw string, expectedDays int) models.DietPlan {
	plan := models.DietPlan{}
	state := parserState{}
	seenDays := 0

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "DAY "):
			seenDays++
			state.day = dayKey(line, seenDays)
			state.meal = ""
			if _, ok := plan[state.day]; !ok {
				plan[state.day] = models.DayMeals{}
			}

		case mealLine(line) != "":
			if state.day == "" {
				// No day to attach to; drop the line.
				continue
			}
			meal := mealLine(line)
			remainder := ""
			if idx := strings.Index(line, ":"); idx >= 0 {
				remainder = strings.TrimSpace(line[idx+1:])
			}
			plan[state.day][meal] = parseMealHeader(remainder)
			state.meal = meal

		case strings.HasPrefix(line, "Ingredients:"):
			if state.day == "" || state.meal == "" {
				continue
			}
			info := plan[state.day][state.meal]
			info.Ingredients = splitIngredients(strings.TrimPrefix(line, "Ingredients:"))
			plan[state.day][state.meal] = info

		case strings.HasPrefix(line, "Prep time:"):
			if state.day == "" || state.meal == "" {
				continue
			}
			info := plan[state.day][state.meal]
			info.PrepTime = strings.TrimSpace(strings.TrimPrefix(line, "Prep time:"))
			plan[state.day][state.meal] = info
		}
	}

	return plan
}

// dayKey derives the plan key from a day header. The header's own number
// wins; a header without one gets the next sequential index.
func dayKey(line string, fallback int) string {
	if m := dayNumberPattern.FindStringSubmatch(line); m != nil {
		return "day_" + m[1]
	}
	return fmt.Sprintf("day_%d", fallback)
}

// mealLine reports which meal slot a line opens, or "" if none.
func mealLine(line string) string {
	upper := strings.ToUpper(line)
	for _, m := range mealMarkers {
		if strings.Contains(upper, m.marker) {
			return m.meal
		}
	}
	return ""
}

// parseMealHeader parses the "Name - Ncal" remainder of a meal line. The
// name is everything before " - ", or the whole remainder if the separator
// is absent; calories default to 0 when no token matches.
func parseMealHeader(remainder string) models.MealInfo {
	name := remainder
	if idx := strings.Index(remainder, " - "); idx >= 0 {
		name = remainder[:idx]
	}

	calories := 0
	if m := caloriesPattern.FindStringSubmatch(remainder); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			calories = n
		}
	}

	return models.MealInfo{
		Name:        strings.TrimSpace(name),
		Calories:    calories,
		Ingredients: []string{},
		PrepTime:    "",
	}
}

func splitIngredients(remainder string) []string {
	parts := strings.Split(remainder, ",")
	ingredients := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			ingredients = append(ingredients, item)
		}
	}
	return ingredients
}
