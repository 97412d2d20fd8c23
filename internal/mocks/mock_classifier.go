package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"healthdesk/internal/ml"
	"healthdesk/internal/models"
)

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(ctx context.Context, features models.FeatureRecord) (*ml.Output, error) {
	args := m.Called(ctx, features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ml.Output), args.Error(1)
}

func (m *MockClassifier) Version() string {
	return m.Called().String(0)
}

func (m *MockClassifier) Loaded() bool {
	return m.Called().Bool(0)
}

type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Predict(ctx context.Context, in models.UserInput) (models.PredictionResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.PredictionResult), args.Error(1)
}

func (m *MockPredictor) Health() models.HealthStatus {
	return m.Called().Get(0).(models.HealthStatus)
}
