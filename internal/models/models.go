package models

import "time"

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type FitnessGoal string

const (
	WeightLoss  FitnessGoal = "Weight Loss"
	MuscleGain  FitnessGoal = "Muscle Gain"
	Maintenance FitnessGoal = "Maintenance"
)

type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "beginner"
	Intermediate ExperienceLevel = "intermediate"
	Advanced     ExperienceLevel = "advanced"
)

// ActivityLevel is one of five fixed tiers, each mapping to a TDEE multiplier.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "Sedentary (little or no exercise)"
	LightlyActive    ActivityLevel = "Lightly active (1-3 days/week)"
	ModeratelyActive ActivityLevel = "Moderately active (3-5 days/week)"
	VeryActive       ActivityLevel = "Very active (6-7 days/week)"
	SuperActive      ActivityLevel = "Super active (athlete)"
)

type DietPreference string

const (
	Vegetarian    DietPreference = "Vegetarian"
	NonVegetarian DietPreference = "Non-Vegetarian"
	Vegan         DietPreference = "Vegan"
	Eggetarian    DietPreference = "Eggetarian"
)

type User struct {
	ID           int        `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	IsActive     bool       `db:"is_active" json:"is_active"`
}

type Profile struct {
	ID              int             `db:"id" json:"id"`
	UserID          int             `db:"user_id" json:"user_id"`
	Name            string          `db:"name" json:"name"`
	Age             int             `db:"age" json:"age"`
	Gender          Gender          `db:"gender" json:"gender"`
	Height          float64         `db:"height" json:"height"`
	Weight          float64         `db:"weight" json:"weight"`
	GoalWeight      float64         `db:"goal_weight" json:"goal_weight"`
	Goal            FitnessGoal     `db:"goal" json:"goal"`
	Experience      ExperienceLevel `db:"experience" json:"experience"`
	ActivityLevel   ActivityLevel   `db:"activity_level" json:"activity_level"`
	DietPreference  DietPreference  `db:"diet_preference" json:"diet_preference"`
	BMI             float64         `db:"bmi" json:"bmi"`
	BMR             float64         `db:"bmr" json:"bmr"`
	TDEE            float64         `db:"tdee" json:"tdee"`
	ProfileComplete bool            `db:"profile_complete" json:"profile_complete"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// ProgressEntry is append-only: once written it is never updated or deleted.
type ProgressEntry struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Date      string    `db:"date" json:"date"` // YYYY-MM-DD
	Weight    float64   `db:"weight" json:"weight"`
	BodyFat   *float64  `db:"body_fat" json:"body_fat,omitempty"`
	Waist     *float64  `db:"waist" json:"waist,omitempty"`
	Chest     *float64  `db:"chest" json:"chest,omitempty"`
	Arms      *float64  `db:"arms" json:"arms,omitempty"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

type RoutineItem struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// WorkoutPlan is ephemeral; it is generated on demand and never persisted.
type WorkoutPlan struct {
	Date      string        `json:"date"`
	Type      string        `json:"type"`
	Location  string        `json:"location"`
	Level     string        `json:"level"`
	Duration  int           `json:"duration"`
	Warmup    []RoutineItem `json:"warmup"`
	Exercises []Exercise    `json:"exercises"`
	Cooldown  []RoutineItem `json:"cooldown"`
}

type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Meal struct {
	Type string   `json:"type"` // Breakfast, Lunch, Dinner, Snacks
	Food FoodItem `json:"food"`
}

type DayPlan struct {
	Day           int     `json:"day"`
	Date          string  `json:"date"`
	Meals         []Meal  `json:"meals"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
}

// MealPlan is ephemeral, like WorkoutPlan.
type MealPlan struct {
	DietPreference DietPreference `json:"diet_preference"`
	DailyCalories  float64        `json:"daily_calories"`
	Days           []DayPlan      `json:"days"`
}
