// Package workout generates workout plans by sampling from a static
// exercise table keyed by location, category and experience level.
package workout

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"fitmitra/internal/models"
)

const (
	TypeStrength = "Strength Training"
	TypeCardio   = "Cardio"
	TypeHIIT     = "HIIT"
	TypeMixed    = "Mixed"
)

type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a time-seeded generator.
func NewGenerator() *Generator {
	return NewGeneratorWithSeed(time.Now().UnixNano())
}

// NewGeneratorWithSeed fixes the sampling sequence, mainly for tests.
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Plan produces a workout for the given parameters. The exercise count is
// duration/10 clamped to at least 4; if the pool is smaller than the target
// the whole pool is used, without repeats.
func (g *Generator) Plan(loc string, workoutType string, level models.ExperienceLevel, durationMinutes int) (*models.WorkoutPlan, error) {
	locKey := location(strings.ToLower(loc))
	byCategory, ok := exercisesDB[locKey]
	if !ok {
		return nil, fmt.Errorf("unknown location %q", loc)
	}
	levelKey := models.ExperienceLevel(strings.ToLower(string(level)))

	var pool []models.Exercise
	switch workoutType {
	case TypeStrength:
		pool = byCategory[strength][levelKey]
	case TypeCardio, TypeHIIT:
		pool = byCategory[cardio][levelKey]
	case TypeMixed:
		pool = append(g.sample(byCategory[strength][levelKey], 3), g.sample(byCategory[cardio][levelKey], 2)...)
	default:
		return nil, fmt.Errorf("unknown workout type %q", workoutType)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no exercises for %s/%s/%s", loc, workoutType, levelKey)
	}

	target := durationMinutes / 10
	if target < 4 {
		target = 4
	}
	selected := g.sample(pool, target)

	return &models.WorkoutPlan{
		Date:      time.Now().Format("2006-01-02"),
		Type:      workoutType,
		Location:  capitalize(string(locKey)),
		Level:     capitalize(string(levelKey)),
		Duration:  durationMinutes,
		Warmup:    warmupRoutine,
		Exercises: selected,
		Cooldown:  cooldownRoutine,
	}, nil
}

// sample draws n exercises without replacement; when n exceeds the pool it
// returns a shuffled copy of the whole pool.
func (g *Generator) sample(pool []models.Exercise, n int) []models.Exercise {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]models.Exercise, 0, n)
	for _, idx := range g.rng.Perm(len(pool))[:n] {
		out = append(out, pool[idx])
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
