package store

import (
	"context"
	"errors"
	"testing"

	"fitmitra/internal/models"
)

func newFileStore(t *testing.T) *File {
	t.Helper()
	s, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return s
}

func TestFileUserLifecycle(t *testing.T) {
	t.Parallel()
	s := newFileStore(t)
	ctx := context.Background()

	id, err := s.CreateUser(ctx, "asha", "asha@example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	u, err := s.UserByUsername(ctx, "asha")
	if err != nil {
		t.Fatalf("UserByUsername: %v", err)
	}
	if u.ID != id || u.Email != "asha@example.com" || !u.IsActive {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.LastLogin != nil {
		t.Fatalf("fresh user should have no last login")
	}

	if _, err := s.UserByEmail(ctx, "asha@example.com"); err != nil {
		t.Fatalf("UserByEmail: %v", err)
	}
	if _, err := s.UserByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.TouchLastLogin(ctx, id); err != nil {
		t.Fatalf("TouchLastLogin: %v", err)
	}
	u, _ = s.UserByID(ctx, id)
	if u.LastLogin == nil {
		t.Fatalf("last login not recorded")
	}
}

func TestFileUserUniqueness(t *testing.T) {
	t.Parallel()
	s := newFileStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "asha", "asha@example.com", "hash"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := s.CreateUser(ctx, "asha", "other@example.com", "hash"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate username: expected ErrDuplicate, got %v", err)
	}
	if _, err := s.CreateUser(ctx, "other", "asha@example.com", "hash"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate email: expected ErrDuplicate, got %v", err)
	}
}

func TestFileProfileRoundTrip(t *testing.T) {
	t.Parallel()
	s := newFileStore(t)
	ctx := context.Background()

	p := &models.Profile{
		UserID:          7,
		Name:            "Asha",
		Age:             29,
		Gender:          models.Female,
		Height:          162,
		Weight:          60,
		GoalWeight:      55,
		Goal:            models.WeightLoss,
		Experience:      models.Beginner,
		ActivityLevel:   models.ModeratelyActive,
		DietPreference:  models.Vegetarian,
		BMI:             22.86,
		BMR:             1300.5,
		TDEE:            2015.78,
		ProfileComplete: true,
	}
	if err := s.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := s.Profile(ctx, 7)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if !got.UpdatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("updated_at mismatch: got %v, want %v", got.UpdatedAt, p.UpdatedAt)
	}
	a, b := *got, *p
	a.UpdatedAt, b.UpdatedAt = p.UpdatedAt, p.UpdatedAt
	if a != b {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}

	if _, err := s.Profile(ctx, 8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileProgressAppendAndOrder(t *testing.T) {
	t.Parallel()
	s := newFileStore(t)
	ctx := context.Background()

	bf := 21.5
	entries := []models.ProgressEntry{
		{UserID: 3, Date: "2026-01-10", Weight: 80, Notes: "start"},
		{UserID: 3, Date: "2026-02-10", Weight: 78.5, BodyFat: &bf},
		{UserID: 3, Date: "2026-01-25", Weight: 79.2},
	}
	for i := range entries {
		if err := s.AppendProgress(ctx, &entries[i]); err != nil {
			t.Fatalf("AppendProgress: %v", err)
		}
	}

	history, err := s.ProgressHistory(ctx, 3)
	if err != nil {
		t.Fatalf("ProgressHistory: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d entries, want 3", len(history))
	}
	// Newest first.
	wantDates := []string{"2026-02-10", "2026-01-25", "2026-01-10"}
	for i, want := range wantDates {
		if history[i].Date != want {
			t.Fatalf("history[%d].Date = %s, want %s", i, history[i].Date, want)
		}
	}
	if history[0].BodyFat == nil || *history[0].BodyFat != 21.5 {
		t.Fatalf("optional body fat lost in round trip: %+v", history[0])
	}

	// Another user's history stays empty.
	other, err := s.ProgressHistory(ctx, 4)
	if err != nil {
		t.Fatalf("ProgressHistory: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(other))
	}
}
