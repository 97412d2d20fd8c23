package repository

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"healthdesk/internal/apperror"
	"healthdesk/internal/mocks"
	"healthdesk/internal/models"
	"healthdesk/internal/store"
	"healthdesk/internal/validation"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupFileRepo(t *testing.T) (PatientRepository, string) {
	path := filepath.Join(t.TempDir(), "patients.json")
	return NewPatientRepository(store.NewFileStore(path), quietLogger()), path
}

func patient(id string, height, weight float64) models.Patient {
	return models.Patient{ID: id, Name: "Patient " + id, City: "Pune", Age: 40, Gender: "female", Height: height, Weight: weight}
}

func TestCreateThenFind(t *testing.T) {
	repo, _ := setupFileRepo(t)
	ctx := context.Background()

	p := models.Patient{ID: "P001", Name: "Ananya Verma", City: "Guwahati", Age: 28, Gender: "female", Height: 1.65, Weight: 90}
	require.NoError(t, repo.Create(ctx, p))

	rec, err := repo.FindByID(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, p, rec.Patient("P001"))
	assert.Equal(t, 33.06, rec.BMI)
	assert.Equal(t, "Obese", rec.Verdict)
}

func TestFindUnknown(t *testing.T) {
	repo, _ := setupFileRepo(t)

	_, err := repo.FindByID(context.Background(), "P404")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, MsgPatientNotFound, err.Error())
}

func TestCreateDuplicateIsConflict(t *testing.T) {
	repo, _ := setupFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, patient("P001", 1.7, 60)))
	err := repo.Create(ctx, patient("P001", 1.8, 99))
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, MsgPatientExists, err.Error())

	doc, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())
	rec, _ := doc.Get("P001")
	assert.Equal(t, 60.0, rec.Weight)
}

func TestDeleteUnknownLeavesStoreUnchanged(t *testing.T) {
	repo, path := setupFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, patient("P001", 1.7, 60)))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = repo.Delete(ctx, "P999")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDelete(t *testing.T) {
	repo, _ := setupFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, patient("P001", 1.7, 60)))
	require.NoError(t, repo.Create(ctx, patient("P002", 1.7, 60)))
	require.NoError(t, repo.Delete(ctx, "P001"))

	doc, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"P002"}, doc.IDs())
}

func TestSortByBMIDesc(t *testing.T) {
	repo, _ := setupFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, patient("P1", 1, 18)))
	require.NoError(t, repo.Create(ctx, patient("P2", 1, 25)))
	require.NoError(t, repo.Create(ctx, patient("P3", 1, 30)))

	records, err := repo.Sort(ctx, "bmi", "desc")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []float64{30, 25, 18}, []float64{records[0].BMI, records[1].BMI, records[2].BMI})

	records, err = repo.Sort(ctx, "bmi", "asc")
	require.NoError(t, err)
	assert.Equal(t, []float64{18, 25, 30}, []float64{records[0].BMI, records[1].BMI, records[2].BMI})
}

func TestSortTiesKeepStoreOrder(t *testing.T) {
	repo, _ := setupFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, patient("B", 1.7, 70)))
	require.NoError(t, repo.Create(ctx, patient("A", 1.6, 70)))
	require.NoError(t, repo.Create(ctx, patient("C", 1.8, 70)))

	for _, order := range []string{"asc", "desc"} {
		records, err := repo.Sort(ctx, "weight", order)
		require.NoError(t, err)
		assert.Equal(t, []string{"Patient B", "Patient A", "Patient C"},
			[]string{records[0].Name, records[1].Name, records[2].Name}, order)
	}
}

func TestSortRejectsBadInput(t *testing.T) {
	repo, _ := setupFileRepo(t)

	_, err := repo.Sort(context.Background(), "age", "asc")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, MsgInvalidSortBy, err.Error())

	for _, order := range []string{"up", "", "ASC"} {
		_, err = repo.Sort(context.Background(), "height", order)
		assert.ErrorIs(t, err, apperror.ErrBadRequest, "order %q", order)
		assert.Equal(t, MsgInvalidOrder, err.Error())
	}
}

func TestUpdateMergesAndRecomputes(t *testing.T) {
	repo, _ := setupFileRepo(t)
	ctx := context.Background()

	original := models.Patient{ID: "P001", Name: "Ananya Verma", City: "Guwahati", Age: 28, Gender: "female", Height: 1.65, Weight: 90}
	require.NoError(t, repo.Create(ctx, original))

	weight := 70.0
	rec, err := repo.Update(ctx, "P001", models.PatientUpdate{Weight: &weight})
	require.NoError(t, err)

	assert.Equal(t, 25.71, rec.BMI)
	assert.Equal(t, "Normal", rec.Verdict)

	stored, err := repo.FindByID(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, rec, stored)
	assert.Equal(t, original.Name, stored.Name)
	assert.Equal(t, original.City, stored.City)
	assert.Equal(t, original.Age, stored.Age)
	assert.Equal(t, original.Gender, stored.Gender)
	assert.Equal(t, original.Height, stored.Height)
}

func TestUpdateUnknown(t *testing.T) {
	repo, _ := setupFileRepo(t)
	weight := 70.0

	_, err := repo.Update(context.Background(), "P404", models.PatientUpdate{Weight: &weight})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateInvalidMergeWritesNothing(t *testing.T) {
	repo, path := setupFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, patient("P001", 1.7, 60)))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	gender := "unknown"
	_, err = repo.Update(ctx, "P001", models.PatientUpdate{Gender: &gender})
	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"gender"}, verr.Fields())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStoreFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	ioErr := errors.New("disk on fire")

	loadFails := new(mocks.MockDocumentStore)
	loadFails.On("Load", mock.Anything).Return(nil, ioErr)
	repo := NewPatientRepository(loadFails, quietLogger())

	_, err := repo.FindAll(ctx)
	assert.ErrorIs(t, err, ioErr)
	_, err = repo.Sort(ctx, "bmi", "asc")
	assert.ErrorIs(t, err, ioErr)
	assert.ErrorIs(t, repo.Create(ctx, patient("P1", 1.7, 60)), ioErr)
	loadFails.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	saveFails := new(mocks.MockDocumentStore)
	saveFails.On("Load", mock.Anything).Return(store.NewDocument(), nil)
	saveFails.On("Save", mock.Anything, mock.Anything).Return(ioErr)
	repo = NewPatientRepository(saveFails, quietLogger())

	err = repo.Create(ctx, patient("P1", 1.7, 60))
	assert.ErrorIs(t, err, ioErr)
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusCode(err))
}

func TestConcurrentWritersLastWriterWins(t *testing.T) {
	t.Skip("concurrent writers are unsupported: each operation loads and saves the whole document without locking")
}
