package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"healthdesk/internal/models"
	"healthdesk/internal/store"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Load(ctx context.Context) (*store.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Document), args.Error(1)
}

func (m *MockDocumentStore) Save(ctx context.Context, doc *store.Document) error {
	return m.Called(ctx, doc).Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindAll(ctx context.Context) (*store.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Document), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id string) (models.PatientRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.PatientRecord), args.Error(1)
}

func (m *MockPatientRepository) Create(ctx context.Context, patient models.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *MockPatientRepository) Update(ctx context.Context, id string, update models.PatientUpdate) (models.PatientRecord, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(models.PatientRecord), args.Error(1)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPatientRepository) Sort(ctx context.Context, sortBy, order string) ([]models.PatientRecord, error) {
	args := m.Called(ctx, sortBy, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PatientRecord), args.Error(1)
}
