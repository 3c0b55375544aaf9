package inference

import (
	"context"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/logger"
)

// Adapter holds the process-scoped classifier handle. A missing
// artifact is not fatal to the rest of the engine: the adapter starts
// unloaded and every Predict fails with ErrModelUnavailable until a
// model exists.
type Adapter struct {
	model *Model
}

// NewAdapter attempts to load the artifact at path and records the
// outcome. It never returns an error: an unloadable model only
// disables Predict.
func NewAdapter(ctx context.Context, path string) *Adapter {
	model, err := Load(path)
	if err != nil {
		logger.Warn(ctx, "classifier not loaded from %s: %v", path, err)
		return &Adapter{}
	}
	logger.Info(ctx, "classifier loaded from %s", path)
	return &Adapter{model: model}
}

// Loaded reports whether a classifier is available.
func (a *Adapter) Loaded() bool {
	return a.model != nil
}

// Predict evaluates f against the loaded classifier.
func (a *Adapter) Predict(ctx context.Context, f *domain.FeatureVector) (*domain.Prediction, error) {
	if a.model == nil {
		return nil, domain.ErrModelUnavailable
	}
	return a.model.Predict(ctx, f)
}
