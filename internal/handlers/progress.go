package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fitmitra/internal/calculator"
	"fitmitra/internal/middleware"
	"fitmitra/internal/models"
	"fitmitra/internal/profile"
	"fitmitra/internal/progress"
	"fitmitra/internal/store"
)

type ProgressHandler struct {
	tracker  *progress.Tracker
	profiles *profile.Service
	logger   *zap.Logger
}

func NewProgressHandler(tracker *progress.Tracker, profiles *profile.Service, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{tracker: tracker, profiles: profiles, logger: logger}
}

type addEntryRequest struct {
	Date    string   `json:"date"` // YYYY-MM-DD, defaults to today
	Weight  float64  `json:"weight"`
	BodyFat *float64 `json:"body_fat"`
	Waist   *float64 `json:"waist"`
	Chest   *float64 `json:"chest"`
	Arms    *float64 `json:"arms"`
	Notes   string   `json:"notes"`
}

func (h *ProgressHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Weight <= 0 {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	entry := models.ProgressEntry{
		UserID:  userID,
		Date:    req.Date,
		Weight:  req.Weight,
		BodyFat: req.BodyFat,
		Waist:   req.Waist,
		Chest:   req.Chest,
		Arms:    req.Arms,
		Notes:   req.Notes,
	}
	if err := h.tracker.Append(r.Context(), &entry); err != nil {
		h.logger.Error("append progress failed", zap.Error(err))
		http.Error(w, "could not save progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *ProgressHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	entries, err := h.tracker.History(r.Context(), userID)
	if err != nil {
		h.logger.Error("fetch history failed", zap.Error(err))
		http.Error(w, "could not fetch history", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.ProgressEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Summary returns derived metrics: start/current weight, change, clamped
// percent-to-goal with its motivational message, and a goal-date projection
// when the profile carries a goal weight.
func (h *ProgressHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var goalWeight float64
	var goal models.FitnessGoal
	p, err := h.profiles.Get(r.Context(), userID)
	switch {
	case err == nil:
		goalWeight = p.GoalWeight
		goal = p.Goal
	case errors.Is(err, store.ErrNotFound):
	default:
		h.logger.Error("get profile failed", zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	sum, err := h.tracker.Summarize(r.Context(), userID, goalWeight)
	if err != nil {
		h.logger.Error("summarize failed", zap.Error(err))
		http.Error(w, "could not compute summary", http.StatusInternalServerError)
		return
	}

	resp := struct {
		*progress.Summary
		Projection *calculator.GoalProjection `json:"projection,omitempty"`
	}{Summary: sum}

	if goalWeight > 0 && sum.CurrentWeight > 0 {
		proj := calculator.ProjectGoalDate(time.Now(), sum.CurrentWeight, goalWeight, 1.0, goal)
		resp.Projection = &proj
	}
	writeJSON(w, http.StatusOK, resp)
}
