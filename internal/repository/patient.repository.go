package repository

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"healthdesk/internal/apperror"
	"healthdesk/internal/metrics"
	"healthdesk/internal/models"
	"healthdesk/internal/store"
	"healthdesk/internal/validation"
)

const (
	MsgPatientNotFound = "Patient not found"
	MsgPatientExists   = "Patient already exists"
	MsgInvalidSortBy   = "Invalid field select from ['height', 'weight', 'bmi']"
	MsgInvalidOrder    = "Invalid order select between asc and desc"
)

type PatientRepository interface {
	FindAll(ctx context.Context) (*store.Document, error)
	FindByID(ctx context.Context, id string) (models.PatientRecord, error)
	Create(ctx context.Context, patient models.Patient) error
	Update(ctx context.Context, id string, update models.PatientUpdate) (models.PatientRecord, error)
	Delete(ctx context.Context, id string) error
	Sort(ctx context.Context, sortBy, order string) ([]models.PatientRecord, error)
}

// patientRepository reads the whole document for every operation and writes
// it back after a mutation. Concurrent writers are not serialized.
type patientRepository struct {
	store store.DocumentStore
	log   *logrus.Logger
}

func NewPatientRepository(s store.DocumentStore, log *logrus.Logger) PatientRepository {
	return &patientRepository{store: s, log: log}
}

func (r *patientRepository) load(ctx context.Context) (*store.Document, error) {
	doc, err := r.store.Load(ctx)
	metrics.StoreOperations.WithLabelValues("load", metrics.Result(err)).Inc()
	if err != nil {
		r.log.WithError(err).Error("Failed to load patient document")
		return nil, err
	}
	return doc, nil
}

func (r *patientRepository) save(ctx context.Context, doc *store.Document) error {
	err := r.store.Save(ctx, doc)
	metrics.StoreOperations.WithLabelValues("save", metrics.Result(err)).Inc()
	if err != nil {
		r.log.WithError(err).Error("Failed to save patient document")
	}
	return err
}

func (r *patientRepository) FindAll(ctx context.Context) (*store.Document, error) {
	return r.load(ctx)
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (models.PatientRecord, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return models.PatientRecord{}, err
	}
	rec, ok := doc.Get(id)
	if !ok {
		return models.PatientRecord{}, apperror.NotFound(MsgPatientNotFound)
	}
	return rec, nil
}

func (r *patientRepository) Create(ctx context.Context, patient models.Patient) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	if doc.Has(patient.ID) {
		return apperror.Conflict(MsgPatientExists)
	}
	doc.Put(patient.ID, patient.Record())
	return r.save(ctx, doc)
}

// Update merges the supplied fields onto the stored record and validates the
// result before anything is written.
func (r *patientRepository) Update(ctx context.Context, id string, update models.PatientUpdate) (models.PatientRecord, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return models.PatientRecord{}, err
	}
	existing, ok := doc.Get(id)
	if !ok {
		return models.PatientRecord{}, apperror.NotFound(MsgPatientNotFound)
	}

	patient := existing.Patient(id)
	update.ApplyTo(&patient)
	if err := validation.CheckPatient(patient); err != nil {
		return models.PatientRecord{}, err
	}

	rec := patient.Record()
	doc.Put(id, rec)
	if err := r.save(ctx, doc); err != nil {
		return models.PatientRecord{}, err
	}
	return rec, nil
}

func (r *patientRepository) Delete(ctx context.Context, id string) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	if !doc.Delete(id) {
		return apperror.NotFound(MsgPatientNotFound)
	}
	return r.save(ctx, doc)
}

// Sort returns every record ordered by sortBy. Ties keep document order.
func (r *patientRepository) Sort(ctx context.Context, sortBy, order string) ([]models.PatientRecord, error) {
	key, ok := sortKey(sortBy)
	if !ok {
		return nil, apperror.BadRequest(MsgInvalidSortBy)
	}
	if order != "asc" && order != "desc" {
		return nil, apperror.BadRequest(MsgInvalidOrder)
	}

	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]models.PatientRecord, 0, doc.Len())
	for _, id := range doc.IDs() {
		rec, _ := doc.Get(id)
		records = append(records, rec)
	}

	desc := order == "desc"
	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return key(records[i]) > key(records[j])
		}
		return key(records[i]) < key(records[j])
	})
	return records, nil
}

func sortKey(field string) (func(models.PatientRecord) float64, bool) {
	switch field {
	case "height":
		return func(p models.PatientRecord) float64 { return p.Height }, true
	case "weight":
		return func(p models.PatientRecord) float64 { return p.Weight }, true
	case "bmi":
		return func(p models.PatientRecord) float64 { return p.BMI }, true
	}
	return nil, false
}
