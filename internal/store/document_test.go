package store

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthdesk/internal/models"
)

func record(name string, height, weight float64) models.PatientRecord {
	p := models.Patient{Name: name, City: "Pune", Age: 30, Gender: "male", Height: height, Weight: weight}
	return p.Record()
}

func TestDocumentKeepsInsertionOrder(t *testing.T) {
	doc := NewDocument()
	doc.Put("P003", record("c", 1.7, 70))
	doc.Put("P001", record("a", 1.7, 60))
	doc.Put("P002", record("b", 1.7, 80))

	assert.Equal(t, []string{"P003", "P001", "P002"}, doc.IDs())

	doc.Put("P001", record("a2", 1.7, 61))
	assert.Equal(t, []string{"P003", "P001", "P002"}, doc.IDs())
	rec, ok := doc.Get("P001")
	require.True(t, ok)
	assert.Equal(t, "a2", rec.Name)

	assert.True(t, doc.Delete("P003"))
	assert.False(t, doc.Delete("P003"))
	assert.Equal(t, []string{"P001", "P002"}, doc.IDs())
	assert.Equal(t, 2, doc.Len())
	assert.False(t, doc.Has("P003"))
}

func TestDocumentJSONPreservesOrder(t *testing.T) {
	input := `{"P9":{"name":"z","city":"Pune","age":30,"gender":"male","height":1.7,"weight":70,"bmi":24.22,"verdict":"Normal"},` +
		`"P1":{"name":"a","city":"Pune","age":30,"gender":"male","height":1.7,"weight":70,"bmi":24.22,"verdict":"Normal"}}`

	doc, err := ParseDocument([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"P9", "P1"}, doc.IDs())

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
	assert.Less(t, strings.Index(string(out), `"P9"`), strings.Index(string(out), `"P1"`))
}

func TestDocumentEmpty(t *testing.T) {
	doc, err := ParseDocument([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestDocumentRejectsNonObject(t *testing.T) {
	_, err := ParseDocument([]byte(`[1,2]`))
	assert.Error(t, err)

	_, err = ParseDocument([]byte(`{"P1": "not a record"}`))
	assert.Error(t, err)
}

func TestDocumentCloneIsIndependent(t *testing.T) {
	doc := NewDocument()
	doc.Put("P1", record("a", 1.7, 60))

	clone := doc.Clone()
	clone.Put("P2", record("b", 1.7, 60))
	clone.Delete("P1")

	assert.Equal(t, []string{"P1"}, doc.IDs())
	assert.Equal(t, []string{"P2"}, clone.IDs())
}

func TestDocumentPatients(t *testing.T) {
	doc := NewDocument()
	doc.Put("P2", record("b", 1.8, 81))
	doc.Put("P1", record("a", 1.6, 50))

	patients := doc.Patients()
	require.Len(t, patients, 2)
	assert.Equal(t, "P2", patients[0].ID)
	assert.Equal(t, 81.0, patients[0].Weight)
	assert.Equal(t, "P1", patients[1].ID)
}
