package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"fitmitra/internal/calculator"
	"fitmitra/internal/middleware"
	"fitmitra/internal/models"
	"fitmitra/internal/profile"
	"fitmitra/internal/store"
)

type ProfileHandler struct {
	svc       *profile.Service
	wizard    *profile.Wizard
	predictor calculator.Predictor
	logger    *zap.Logger
}

func NewProfileHandler(svc *profile.Service, wizard *profile.Wizard, predictor calculator.Predictor, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, wizard: wizard, predictor: predictor, logger: logger}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	p, err := h.svc.Get(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("get profile failed", zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Put saves the full profile in one shot, recomputing BMI/BMR/TDEE.
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	p.UserID = userID
	if err := h.svc.Save(r.Context(), &p); err != nil {
		h.logger.Error("save profile failed", zap.Error(err))
		http.Error(w, "could not save profile", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Wizard steps: basic info, body metrics, goals and preferences.

func (h *ProfileHandler) WizardBasicInfo(w http.ResponseWriter, r *http.Request) {
	var step profile.BasicInfo
	if err := json.NewDecoder(r.Body).Decode(&step); err != nil || step.Name == "" {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	h.wizardStep(w, r, func() (*models.Profile, error) {
		return h.wizard.SaveBasicInfo(r.Context(), middleware.UserID(r), step)
	})
}

func (h *ProfileHandler) WizardBodyMetrics(w http.ResponseWriter, r *http.Request) {
	var step profile.BodyMetrics
	if err := json.NewDecoder(r.Body).Decode(&step); err != nil || step.Height <= 0 || step.Weight <= 0 {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	h.wizardStep(w, r, func() (*models.Profile, error) {
		return h.wizard.SaveBodyMetrics(r.Context(), middleware.UserID(r), step)
	})
}

func (h *ProfileHandler) WizardGoalPrefs(w http.ResponseWriter, r *http.Request) {
	var step profile.GoalPrefs
	if err := json.NewDecoder(r.Body).Decode(&step); err != nil || step.Goal == "" {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	h.wizardStep(w, r, func() (*models.Profile, error) {
		return h.wizard.SaveGoalPrefs(r.Context(), middleware.UserID(r), step)
	})
}

func (h *ProfileHandler) wizardStep(w http.ResponseWriter, r *http.Request, save func() (*models.Profile, error)) {
	p, err := save()
	if err != nil {
		h.logger.Error("wizard step failed", zap.Error(err))
		http.Error(w, "could not save profile", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type bodyFatResponse struct {
	BodyFat  float64 `json:"body_fat"`
	Category string  `json:"category"`
}

// BodyFat estimates body-fat percentage from circumference measurements.
func (h *ProfileHandler) BodyFat(w http.ResponseWriter, r *http.Request) {
	var m calculator.Measurements
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if m.Gender == "" {
		m.Gender = models.Male
	}
	bf := h.predictor.Predict(m)
	writeJSON(w, http.StatusOK, bodyFatResponse{
		BodyFat:  bf,
		Category: calculator.BodyFatCategory(bf, m.Gender),
	})
}
