// Package inference adapts an externally-trained attrition classifier.
// The engine never trains; it loads one serialized pipeline artifact at
// process start and evaluates feature vectors against it. The artifact
// mirrors the offline pipeline: standard-scaled numeric features,
// one-hot encoded categoricals, then a logistic layer.
package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

type numericFeature struct {
	Name string  `json:"name"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

type categoricalFeature struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// artifact is the on-disk model layout. Weights are ordered: one per
// numeric feature, then one per categorical value, block by block.
type artifact struct {
	Version     int                  `json:"version"`
	Numeric     []numericFeature     `json:"numeric_features"`
	Categorical []categoricalFeature `json:"categorical_features"`
	Weights     []float64            `json:"weights"`
	Bias        float64              `json:"bias"`
}

// Model is a loaded classifier.
type Model struct {
	art artifact
}

// Load reads and validates a model artifact.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}

	want := len(art.Numeric)
	for _, c := range art.Categorical {
		want += len(c.Values)
	}
	if len(art.Weights) != want {
		return nil, fmt.Errorf("model artifact: %d weights for %d features", len(art.Weights), want)
	}
	for _, n := range art.Numeric {
		if n.Std <= 0 {
			return nil, fmt.Errorf("model artifact: feature %s has non-positive std", n.Name)
		}
	}

	return &Model{art: art}, nil
}

// Predict evaluates one feature vector. The vector's field names,
// types and categorical domains must match what the model was trained
// on; any mismatch fails as FeatureMismatch rather than being coerced.
func (m *Model) Predict(ctx context.Context, f *domain.FeatureVector) (*domain.Prediction, error) {
	z := m.art.Bias
	w := m.art.Weights

	for _, n := range m.art.Numeric {
		v, err := numericValue(f, n.Name)
		if err != nil {
			return nil, err
		}
		z += w[0] * (v - n.Mean) / n.Std
		w = w[1:]
	}

	for _, c := range m.art.Categorical {
		v, err := categoricalValue(f, c.Name)
		if err != nil {
			return nil, err
		}
		hit := -1
		for i, known := range c.Values {
			if known == v {
				hit = i
				break
			}
		}
		if hit < 0 {
			return nil, &domain.FeatureMismatchError{
				Feature: c.Name,
				Reason:  fmt.Sprintf("value %q outside trained domain", v),
			}
		}
		z += w[hit]
		w = w[len(c.Values):]
	}

	p := sigmoid(z)
	label := "Safe"
	if p >= 0.5 {
		label = "Risk"
	}

	return &domain.Prediction{
		Label:       label,
		Probability: p,
		RiskLevel:   RiskBand(p),
	}, nil
}

// RiskBand maps a probability to the three-level banding. 0.7 itself
// is Medium, 0.4 itself is Low.
func RiskBand(p float64) string {
	switch {
	case p > 0.7:
		return "High"
	case p > 0.4:
		return "Medium"
	default:
		return "Low"
	}
}

func numericValue(f *domain.FeatureVector, name string) (float64, error) {
	var v float64
	switch name {
	case "Age":
		v = float64(f.Age)
	case "Salary":
		v = float64(f.Salary)
	case "JoiningYear":
		v = float64(f.JoiningYear)
	case "Rating":
		v = float64(f.Rating)
	case "ProjectsCompleted":
		v = float64(f.ProjectsCompleted)
	case "AvgDailyHours":
		v = f.AvgDailyHours
	default:
		return 0, &domain.FeatureMismatchError{Feature: name, Reason: "not a known numeric feature"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &domain.FeatureMismatchError{Feature: name, Reason: "value is not finite"}
	}
	return v, nil
}

func categoricalValue(f *domain.FeatureVector, name string) (string, error) {
	switch name {
	case "Department":
		return f.Department, nil
	case "Role":
		return f.Role, nil
	case "Gender":
		return f.Gender, nil
	}
	return "", &domain.FeatureMismatchError{Feature: name, Reason: "not a known categorical feature"}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
