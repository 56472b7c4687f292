// Package profile manages user profiles and the three-step onboarding
// wizard. Derived fields (BMI, BMR, TDEE) are recomputed on every save that
// touches weight, height, age, gender or activity level.
package profile

import (
	"context"
	"errors"

	"fitmitra/internal/calculator"
	"fitmitra/internal/models"
	"fitmitra/internal/store"
)

type Service struct {
	store store.ProfileStore
}

func NewService(s store.ProfileStore) *Service {
	return &Service{store: s}
}

// Save recomputes derived fields and upserts the profile.
func (s *Service) Save(ctx context.Context, p *models.Profile) error {
	recompute(p)
	p.ProfileComplete = complete(p)
	return s.store.SaveProfile(ctx, p)
}

func (s *Service) Get(ctx context.Context, userID int) (*models.Profile, error) {
	return s.store.Profile(ctx, userID)
}

func recompute(p *models.Profile) {
	if p.Weight <= 0 || p.Height <= 0 {
		return
	}
	p.BMI = calculator.BMI(p.Weight, p.Height)
	p.BMR = calculator.BMR(p.Weight, p.Height, p.Age, p.Gender)
	p.TDEE = calculator.TDEE(p.BMR, p.ActivityLevel)
}

func complete(p *models.Profile) bool {
	return p.Name != "" && p.Age > 0 && p.Gender != "" &&
		p.Height > 0 && p.Weight > 0 && p.GoalWeight > 0 &&
		p.Goal != "" && p.Experience != "" &&
		p.ActivityLevel != "" && p.DietPreference != ""
}

// Wizard accumulates the onboarding steps. Each step overlays its fields
// onto the stored profile; the profile completes when all required fields
// are present.
type Wizard struct {
	svc *Service
}

func NewWizard(svc *Service) *Wizard {
	return &Wizard{svc: svc}
}

// BasicInfo is step 1 of 3.
type BasicInfo struct {
	Name   string        `json:"name"`
	Age    int           `json:"age"`
	Gender models.Gender `json:"gender"`
}

// BodyMetrics is step 2 of 3.
type BodyMetrics struct {
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	GoalWeight float64 `json:"goal_weight"`
}

// GoalPrefs is step 3 of 3.
type GoalPrefs struct {
	Goal           models.FitnessGoal     `json:"goal"`
	Experience     models.ExperienceLevel `json:"experience"`
	ActivityLevel  models.ActivityLevel   `json:"activity_level"`
	DietPreference models.DietPreference  `json:"diet_preference"`
}

func (w *Wizard) load(ctx context.Context, userID int) (*models.Profile, error) {
	p, err := w.svc.Get(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return &models.Profile{UserID: userID}, nil
	}
	return p, err
}

func (w *Wizard) SaveBasicInfo(ctx context.Context, userID int, step BasicInfo) (*models.Profile, error) {
	p, err := w.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Name, p.Age, p.Gender = step.Name, step.Age, step.Gender
	if err := w.svc.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (w *Wizard) SaveBodyMetrics(ctx context.Context, userID int, step BodyMetrics) (*models.Profile, error) {
	p, err := w.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Height, p.Weight, p.GoalWeight = step.Height, step.Weight, step.GoalWeight
	if err := w.svc.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (w *Wizard) SaveGoalPrefs(ctx context.Context, userID int, step GoalPrefs) (*models.Profile, error) {
	p, err := w.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Goal, p.Experience = step.Goal, step.Experience
	p.ActivityLevel, p.DietPreference = step.ActivityLevel, step.DietPreference
	if err := w.svc.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
