package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"healthdesk/internal/apperror"
	"healthdesk/internal/features"
	"healthdesk/internal/metrics"
	"healthdesk/internal/ml"
	"healthdesk/internal/models"
)

const probabilityPrecision = 4

// Predictor is what the prediction controller depends on.
type Predictor interface {
	Predict(ctx context.Context, in models.UserInput) (models.PredictionResult, error)
	Health() models.HealthStatus
}

type PredictionService struct {
	classifier ml.Classifier
	tiers      *features.CityTiers
	log        *logrus.Logger
}

func NewPredictionService(classifier ml.Classifier, tiers *features.CityTiers, log *logrus.Logger) *PredictionService {
	return &PredictionService{classifier: classifier, tiers: tiers, log: log}
}

// Features builds the classifier input from a validated record.
func (s *PredictionService) Features(in models.UserInput) models.FeatureRecord {
	derived := in.Derive(s.tiers)
	return models.FeatureRecord{
		BMI:           derived.BMI,
		AgeGroup:      derived.AgeGroup,
		LifestyleRisk: derived.LifestyleRisk,
		CityTier:      derived.CityTier,
		IncomeLPA:     in.IncomeLPA,
		Occupation:    in.Occupation,
	}
}

// Predict calls the classifier exactly once. The caller's cancellation is not
// propagated; any classifier failure, including a panic, is returned as an
// upstream error carrying the original text.
func (s *PredictionService) Predict(ctx context.Context, in models.UserInput) (result models.PredictionResult, err error) {
	feats := s.Features(in)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = apperror.Upstream(fmt.Errorf("%v", r))
		}
		metrics.ClassifierDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.PredictionsTotal.WithLabelValues("error").Inc()
			s.log.WithError(err).WithField("features", feats).Error("Prediction failed")
			return
		}
		metrics.PredictionsTotal.WithLabelValues(result.PredictedCategory).Inc()
	}()

	out, err := s.classifier.Predict(context.WithoutCancel(ctx), feats)
	if err != nil {
		return models.PredictionResult{}, apperror.Upstream(err)
	}
	if err := checkOutput(out); err != nil {
		return models.PredictionResult{}, apperror.Upstream(err)
	}

	probs := make(models.ClassProbabilities, len(out.Classes))
	best := math.Inf(-1)
	for i, class := range out.Classes {
		probs[i] = models.ClassProbability{
			Label:       class,
			Probability: features.Round(out.Probabilities[i], probabilityPrecision),
		}
		best = math.Max(best, out.Probabilities[i])
	}

	return models.PredictionResult{
		PredictedCategory:  out.Label,
		Confidence:         features.Round(best, probabilityPrecision),
		ClassProbabilities: probs,
	}, nil
}

func checkOutput(out *ml.Output) error {
	switch {
	case out == nil:
		return errors.New("classifier returned no output")
	case out.Label == "":
		return errors.New("classifier returned no predicted category")
	case len(out.Classes) == 0:
		return errors.New("classifier returned no classes")
	case len(out.Classes) != len(out.Probabilities):
		return fmt.Errorf("classifier returned %d probabilities for %d classes", len(out.Probabilities), len(out.Classes))
	}
	for _, p := range out.Probabilities {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return errors.New("classifier returned a non-finite probability")
		}
	}
	return nil
}

func (s *PredictionService) Health() models.HealthStatus {
	return models.HealthStatus{
		Status:       "OK",
		ModelVersion: s.classifier.Version(),
		ModelLoaded:  s.classifier.Loaded(),
	}
}
