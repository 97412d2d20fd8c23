package ml

import (
	"context"
	"errors"

	"healthdesk/internal/models"
)

// ErrModelNotLoaded is returned by Unavailable for every prediction.
var ErrModelNotLoaded = errors.New("model not loaded")

// Output is the raw classifier result. Classes is the classifier's fixed
// label order and Probabilities is aligned with it.
type Output struct {
	Label         string    `json:"predicted_category"`
	Classes       []string  `json:"classes"`
	Probabilities []float64 `json:"probabilities"`
}

// Classifier is the premium category model. Implementations must be safe
// for concurrent use.
type Classifier interface {
	Predict(ctx context.Context, features models.FeatureRecord) (*Output, error)
	Version() string
	Loaded() bool
}

// Unavailable stands in when no model could be loaded at start-up.
type Unavailable struct {
	version string
}

func NewUnavailable(version string) *Unavailable {
	return &Unavailable{version: version}
}

func (u *Unavailable) Predict(context.Context, models.FeatureRecord) (*Output, error) {
	return nil, ErrModelNotLoaded
}

func (u *Unavailable) Version() string { return u.version }

func (u *Unavailable) Loaded() bool { return false }
