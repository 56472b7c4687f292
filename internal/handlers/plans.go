package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"fitmitra/internal/meals"
	"fitmitra/internal/models"
	"fitmitra/internal/workout"
)

type PlanHandler struct {
	workouts *workout.Generator
	planner  *meals.Planner
	logger   *zap.Logger
}

func NewPlanHandler(workouts *workout.Generator, planner *meals.Planner, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{workouts: workouts, planner: planner, logger: logger}
}

type workoutRequest struct {
	Location string `json:"location"`
	Type     string `json:"type"`
	Level    string `json:"level"`
	Duration int    `json:"duration"`
}

func (h *PlanHandler) GenerateWorkout(w http.ResponseWriter, r *http.Request) {
	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.Duration <= 0 {
		req.Duration = 45
	}
	plan, err := h.workouts.Plan(req.Location, req.Type, models.ExperienceLevel(req.Level), req.Duration)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

type mealPlanRequest struct {
	DietPreference models.DietPreference `json:"diet_preference"`
	CalorieTarget  float64               `json:"calorie_target"`
	NumDays        int                   `json:"num_days"`
	Goal           models.FitnessGoal    `json:"goal"`
}

func (h *PlanHandler) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	var req mealPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CalorieTarget <= 0 {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.NumDays <= 0 {
		req.NumDays = 7
	}
	plan := h.planner.Plan(req.DietPreference, req.CalorieTarget, req.NumDays, req.Goal)
	writeJSON(w, http.StatusOK, plan)
}
