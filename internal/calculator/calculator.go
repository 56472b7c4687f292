// Package calculator holds the anthropometric formulas: BMI, BMR
// (Mifflin-St Jeor), TDEE, body-fat estimation and goal-date projection.
// Everything here is a pure function over its inputs.
package calculator

import (
	"math"
	"time"

	"fitmitra/internal/models"
)

// BMI returns body mass index rounded to 2 decimals.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return round2(weightKg / (heightM * heightM))
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR computes basal metabolic rate using the Mifflin-St Jeor equation.
func BMR(weightKg, heightCm float64, age int, gender models.Gender) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.Male {
		bmr += 5
	} else {
		bmr -= 161
	}
	return round2(bmr)
}

var activityMultipliers = map[models.ActivityLevel]float64{
	models.Sedentary:        1.2,
	models.LightlyActive:    1.375,
	models.ModeratelyActive: 1.55,
	models.VeryActive:       1.725,
	models.SuperActive:      1.9,
}

// TDEE scales BMR by the activity tier multiplier. Unknown tiers fall back
// to sedentary.
func TDEE(bmr float64, level models.ActivityLevel) float64 {
	m, ok := activityMultipliers[level]
	if !ok {
		m = 1.2
	}
	return round2(bmr * m)
}

// BodyFatCategory buckets a body-fat percentage using per-gender thresholds.
func BodyFatCategory(pct float64, gender models.Gender) string {
	if gender == models.Male {
		switch {
		case pct < 6:
			return "Essential Fat"
		case pct < 14:
			return "Athletes"
		case pct < 18:
			return "Fitness"
		case pct < 25:
			return "Average"
		default:
			return "Obese"
		}
	}
	switch {
	case pct < 14:
		return "Essential Fat"
	case pct < 21:
		return "Athletes"
	case pct < 25:
		return "Fitness"
	case pct < 32:
		return "Average"
	default:
		return "Obese"
	}
}

// GoalProjection is the outcome of ProjectGoalDate.
type GoalProjection struct {
	TargetDate  time.Time
	WeeksNeeded float64
	DaysNeeded  int
}

// ProjectGoalDate estimates when the target weight will be reached, capping
// the weekly rate at 1.0 kg for loss and 0.5 kg for gain.
func ProjectGoalDate(now time.Time, currentWeight, targetWeight, weeklyRate float64, goal models.FitnessGoal) GoalProjection {
	diff := math.Abs(currentWeight - targetWeight)

	cap := 0.5
	if goal == models.WeightLoss {
		cap = 1.0
	}
	rate := math.Min(math.Abs(weeklyRate), cap)

	var weeks float64
	if rate > 0 {
		weeks = diff / rate
	}
	days := int(weeks * 7)
	return GoalProjection{
		TargetDate:  now.AddDate(0, 0, days),
		WeeksNeeded: weeks,
		DaysNeeded:  days,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
