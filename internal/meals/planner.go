// Package meals generates Indian-cuisine meal plans by nearest-calorie
// matching over a static food table.
package meals

import (
	"math"
	"strings"
	"time"

	"fitmitra/internal/models"
)

// Per-slot share of the daily calorie target.
const (
	breakfastShare = 0.25
	lunchShare     = 0.35
	dinnerShare    = 0.30
	snackShare     = 0.10
)

type Planner struct{}

func NewPlanner() *Planner { return &Planner{} }

// Plan builds numDays independent day plans. The daily target is the
// calorie target adjusted for the goal: -500 for weight loss, +300 for
// muscle gain. Days are computed independently, so repeats across days
// are expected.
func (p *Planner) Plan(pref models.DietPreference, calorieTarget float64, numDays int, goal models.FitnessGoal) *models.MealPlan {
	daily := calorieTarget
	switch goal {
	case models.WeightLoss:
		daily -= 500
	case models.MuscleGain:
		daily += 300
	}

	plan := &models.MealPlan{
		DietPreference: pref,
		DailyCalories:  daily,
	}

	today := time.Now().Format("2006-01-02")
	for day := 1; day <= numDays; day++ {
		d := models.DayPlan{Day: day, Date: today}

		slots := []struct {
			label string
			slot  slot
			share float64
		}{
			{"Breakfast", breakfast, breakfastShare},
			{"Lunch", lunch, lunchShare},
			{"Dinner", dinner, dinnerShare},
			{"Snacks", snacks, snackShare},
		}
		for _, s := range slots {
			food, ok := selectMeal(s.slot, pref, daily*s.share)
			if !ok {
				continue
			}
			d.Meals = append(d.Meals, models.Meal{Type: s.label, Food: food})
			d.TotalCalories += food.Calories
			d.TotalProtein += food.Protein
			d.TotalCarbs += food.Carbs
			d.TotalFat += food.Fat
		}
		plan.Days = append(plan.Days, d)
	}
	return plan
}

// selectMeal picks the pool item whose calories are closest to the slot
// target. Ties break in table order. The non-vegetarian pool deliberately
// includes all vegetarian items; vegan falls back to vegetarian when the
// slot has no vegan entries; eggetarian extends vegetarian with egg dishes.
func selectMeal(s slot, pref models.DietPreference, targetCalories float64) (models.FoodItem, bool) {
	bySlot := foodDB[s]

	var pool []models.FoodItem
	switch dietTag(strings.ToLower(string(pref))) {
	case tagVegetarian:
		pool = bySlot[tagVegetarian]
	case tagNonVegetarian:
		pool = append(append([]models.FoodItem{}, bySlot[tagVegetarian]...), bySlot[tagNonVegetarian]...)
	case tagVegan:
		pool = bySlot[tagVegan]
		if len(pool) == 0 {
			pool = bySlot[tagVegetarian]
		}
	case tagEggetarian:
		pool = append(append([]models.FoodItem{}, bySlot[tagVegetarian]...), bySlot[tagEggetarian]...)
	}
	if len(pool) == 0 {
		return models.FoodItem{}, false
	}

	best := pool[0]
	bestDiff := math.Abs(pool[0].Calories - targetCalories)
	for _, f := range pool[1:] {
		if diff := math.Abs(f.Calories - targetCalories); diff < bestDiff {
			best, bestDiff = f, diff
		}
	}
	return best, true
}
