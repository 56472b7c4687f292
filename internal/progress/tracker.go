// Package progress tracks weight and measurement history and derives
// trend metrics from it.
package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fitmitra/internal/models"
	"fitmitra/internal/store"
)

type Tracker struct {
	store store.ProgressStore
}

func NewTracker(s store.ProgressStore) *Tracker {
	return &Tracker{store: s}
}

// Append records a new entry. Entries are immutable once written.
func (t *Tracker) Append(ctx context.Context, e *models.ProgressEntry) error {
	if e.Date == "" {
		e.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", e.Date)
	}
	return t.store.AppendProgress(ctx, e)
}

// History returns all entries, newest first.
func (t *Tracker) History(ctx context.Context, userID int) ([]models.ProgressEntry, error) {
	return t.store.ProgressHistory(ctx, userID)
}

// Summary is the derived view over a user's history.
type Summary struct {
	Entries        int                    `json:"entries"`
	StartingWeight float64                `json:"starting_weight"`
	CurrentWeight  float64                `json:"current_weight"`
	WeightChange   float64                `json:"weight_change"` // start - current
	PercentToGoal  float64                `json:"percent_to_goal"`
	Message        string                 `json:"message"`
	Series         []models.ProgressEntry `json:"series"` // ascending by date, chart-ready
}

// Summarize computes starting/current weight, signed change, the clamped
// percent-to-goal and a motivational message.
func (t *Tracker) Summarize(ctx context.Context, userID int, goalWeight float64) (*Summary, error) {
	history, err := t.store.ProgressHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return &Summary{Message: Message(0)}, nil
	}

	asc := make([]models.ProgressEntry, len(history))
	copy(asc, history)
	sort.SliceStable(asc, func(i, j int) bool {
		if asc[i].Date != asc[j].Date {
			return asc[i].Date < asc[j].Date
		}
		return asc[i].ID < asc[j].ID
	})

	start := asc[0].Weight
	current := asc[len(asc)-1].Weight
	change := start - current
	pct := PercentToGoal(start, current, goalWeight)

	return &Summary{
		Entries:        len(asc),
		StartingWeight: start,
		CurrentWeight:  current,
		WeightChange:   change,
		PercentToGoal:  pct,
		Message:        Message(pct),
		Series:         asc,
	}, nil
}

// PercentToGoal measures how far the current weight has moved from the
// starting weight toward the goal, clamped to [0, 100] even when the goal
// is overshot in either direction.
func PercentToGoal(start, current, goal float64) float64 {
	if goal == start {
		return 100
	}
	var pct float64
	if goal < start {
		pct = (start - current) / (start - goal) * 100
	} else {
		pct = (current - start) / (goal - start) * 100
	}
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Message returns the motivational line for a progress percentage. Bands:
// 0-10, 10-25, 25-50, 50-75, 75-90, 90-100.
func Message(pct float64) string {
	switch {
	case pct < 10:
		return "Every journey begins with a single step. You've got this!"
	case pct < 25:
		return "Great start! Keep the momentum going!"
	case pct < 50:
		return "You're making solid progress! Stay consistent!"
	case pct < 75:
		return "Halfway there! Your dedication is paying off!"
	case pct < 90:
		return "Almost there! The finish line is in sight!"
	default:
		return "Outstanding! You're so close to your goal!"
	}
}
