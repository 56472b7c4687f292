package calculator

import (
	"encoding/json"
	"math"
	"os"

	"fitmitra/internal/models"
)

// Measurements carries the circumference and body inputs a body-fat
// prediction works from. Zero-valued fields use the documented defaults.
type Measurements struct {
	Gender  models.Gender `json:"gender"`
	Age     int           `json:"age"`
	Height  float64       `json:"height"` // cm
	Weight  float64       `json:"weight"` // kg
	Neck    float64       `json:"neck"`   // cm
	Chest   float64       `json:"chest"`
	Waist   float64       `json:"abdomen"`
	Hip     float64       `json:"hip"`
	Thigh   float64       `json:"thigh"`
	Knee    float64       `json:"knee"`
	Ankle   float64       `json:"ankle"`
	Biceps  float64       `json:"biceps"`
	Forearm float64       `json:"forearm"`
	Wrist   float64       `json:"wrist"`
}

// Predictor estimates body-fat percentage from measurements. The result is
// always clamped to [5, 50].
type Predictor interface {
	Predict(m Measurements) float64
}

// NewPredictor returns the fitted linear model when persisted weights exist
// at weightsPath, and the Navy circumference formula otherwise.
func NewPredictor(weightsPath string) Predictor {
	if w, err := loadWeights(weightsPath); err == nil {
		return &linearPredictor{weights: w}
	}
	return navyPredictor{}
}

// navyPredictor implements the U.S. Navy circumference method.
type navyPredictor struct{}

func (navyPredictor) Predict(m Measurements) float64 {
	height := defaultIfZero(m.Height, 170)
	waist := defaultIfZero(m.Waist, 85)
	neck := defaultIfZero(m.Neck, 37)
	hip := defaultIfZero(m.Hip, 95)

	// Log10 needs a positive girth; a tape reading that small clamps to
	// the floor instead of propagating NaN.
	var bf float64
	if m.Gender == models.Female {
		girth := waist + hip - neck
		if girth <= 0 {
			return clampBodyFat(0)
		}
		bf = 495/(1.29579-0.35004*math.Log10(girth)+0.22100*math.Log10(height)) - 450
	} else {
		girth := waist - neck
		if girth <= 0 {
			return clampBodyFat(0)
		}
		bf = 495/(1.0324-0.19077*math.Log10(girth)+0.15456*math.Log10(height)) - 450
	}
	return clampBodyFat(bf)
}

// modelWeights is the persisted form of a fitted linear regression.
// Coefficients follow the fixed feature order below; training happens
// offline and only the evaluated weights ship with a deployment.
type modelWeights struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// featureVector fixes the model's input order: age, weight, height, neck,
// chest, abdomen, hip, thigh, knee, ankle, biceps, forearm, wrist.
func featureVector(m Measurements) []float64 {
	return []float64{
		float64(m.Age), m.Weight, m.Height, m.Neck, m.Chest, m.Waist,
		m.Hip, m.Thigh, m.Knee, m.Ankle, m.Biceps, m.Forearm, m.Wrist,
	}
}

type linearPredictor struct {
	weights modelWeights
}

func (p *linearPredictor) Predict(m Measurements) float64 {
	features := featureVector(m)
	pred := p.weights.Intercept
	for i, c := range p.weights.Coefficients {
		if i >= len(features) {
			break
		}
		pred += c * features[i]
	}
	return clampBodyFat(pred)
}

func loadWeights(path string) (modelWeights, error) {
	var w modelWeights
	data, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return w, err
	}
	return w, nil
}

func clampBodyFat(v float64) float64 {
	return math.Max(5.0, math.Min(50.0, v))
}

func defaultIfZero(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
