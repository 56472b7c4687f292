package progress

import (
	"context"
	"testing"

	"fitmitra/internal/models"
	"fitmitra/internal/store"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	s, err := store.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return NewTracker(s)
}

func TestPercentToGoalClamped(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name                 string
		start, current, goal float64
		want                 float64
	}{
		{"loss halfway", 90, 85, 80, 50},
		{"loss done", 90, 80, 80, 100},
		{"loss overshoot", 90, 75, 80, 100},
		{"loss regressed", 90, 95, 80, 0},
		{"gain halfway", 60, 65, 70, 50},
		{"gain overshoot", 60, 75, 70, 100},
		{"gain regressed", 60, 55, 70, 0},
		{"goal equals start", 70, 70, 70, 100},
	}
	for _, c := range cases {
		if got := PercentToGoal(c.start, c.current, c.goal); got != c.want {
			t.Fatalf("%s: PercentToGoal(%v, %v, %v) = %v, want %v", c.name, c.start, c.current, c.goal, got, c.want)
		}
	}
}

func TestMessageBands(t *testing.T) {
	t.Parallel()
	bands := []struct {
		pct  float64
		want string
	}{
		{0, "Every journey begins with a single step. You've got this!"},
		{9.9, "Every journey begins with a single step. You've got this!"},
		{10, "Great start! Keep the momentum going!"},
		{25, "You're making solid progress! Stay consistent!"},
		{50, "Halfway there! Your dedication is paying off!"},
		{75, "Almost there! The finish line is in sight!"},
		{90, "Outstanding! You're so close to your goal!"},
		{100, "Outstanding! You're so close to your goal!"},
	}
	for _, b := range bands {
		if got := Message(b.pct); got != b.want {
			t.Fatalf("Message(%v) = %q, want %q", b.pct, got, b.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	tr := newTracker(t)
	ctx := context.Background()

	for _, e := range []struct {
		date   string
		weight float64
	}{
		{"2026-01-01", 90},
		{"2026-01-15", 87},
		{"2026-02-01", 85},
	} {
		entry := models.ProgressEntry{UserID: 1, Date: e.date, Weight: e.weight}
		if err := tr.Append(ctx, &entry); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	sum, err := tr.Summarize(ctx, 1, 80)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Entries != 3 {
		t.Fatalf("entries = %d, want 3", sum.Entries)
	}
	if sum.StartingWeight != 90 || sum.CurrentWeight != 85 {
		t.Fatalf("start/current = %v/%v, want 90/85", sum.StartingWeight, sum.CurrentWeight)
	}
	if sum.WeightChange != 5 {
		t.Fatalf("change = %v, want 5", sum.WeightChange)
	}
	if sum.PercentToGoal != 50 {
		t.Fatalf("percent = %v, want 50", sum.PercentToGoal)
	}
	if sum.Message != Message(50) {
		t.Fatalf("message = %q, want band for 50%%", sum.Message)
	}

	// Series is ascending for charting.
	if len(sum.Series) != 3 || sum.Series[0].Date != "2026-01-01" || sum.Series[2].Date != "2026-02-01" {
		t.Fatalf("series not ascending: %+v", sum.Series)
	}
}

func TestSummarizeEmptyHistory(t *testing.T) {
	t.Parallel()
	tr := newTracker(t)
	sum, err := tr.Summarize(context.Background(), 42, 70)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Entries != 0 || sum.StartingWeight != 0 {
		t.Fatalf("unexpected summary for empty history: %+v", sum)
	}
}

func TestAppendValidatesDate(t *testing.T) {
	t.Parallel()
	tr := newTracker(t)
	entry := models.ProgressEntry{UserID: 1, Date: "01/02/2026", Weight: 80}
	if err := tr.Append(context.Background(), &entry); err == nil {
		t.Fatalf("expected error for malformed date")
	}

	// Missing date defaults to today.
	entry = models.ProgressEntry{UserID: 1, Weight: 80}
	if err := tr.Append(context.Background(), &entry); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if entry.Date == "" {
		t.Fatalf("date not defaulted")
	}
}
