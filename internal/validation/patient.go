package validation

import (
	"errors"
	"math"
	"strings"

	"healthdesk/internal/models"
)

var patientFields = []string{"id", "name", "city", "age", "gender", "height", "weight"}

// Stored documents carry these derived keys; they are recomputed, never read.
var derivedPatientFields = []string{"bmi", "verdict"}

// ParsePatient validates a full patient record.
func ParsePatient(raw RawInput) (models.Patient, error) {
	c := &collector{}
	var p models.Patient
	p.ID, _ = required(c, raw, "id", validateText)
	p.Name, _ = required(c, raw, "name", validateText)
	p.City, _ = required(c, raw, "city", validateText)
	p.Age, _ = required(c, raw, "age", validateAge)
	p.Gender, _ = required(c, raw, "gender", validateGender)
	p.Height, _ = required(c, raw, "height", validatePositive)
	p.Weight, _ = required(c, raw, "weight", validatePositive)
	c.rejectUnknown(raw, patientFields, derivedPatientFields...)
	if err := c.err(); err != nil {
		return models.Patient{}, err
	}
	return p, nil
}

// ParsePatientUpdate validates a partial patient body. The id cannot be
// changed through an update and is ignored along with derived keys.
func ParsePatientUpdate(raw RawInput) (models.PatientUpdate, error) {
	c := &collector{}
	var u models.PatientUpdate
	u.Name = optional(c, raw, "name", validateText)
	u.City = optional(c, raw, "city", validateText)
	u.Age = optional(c, raw, "age", validateAge)
	u.Gender = optional(c, raw, "gender", validateGender)
	u.Height = optional(c, raw, "height", validatePositive)
	u.Weight = optional(c, raw, "weight", validatePositive)
	c.rejectUnknown(raw, patientFields[1:], append([]string{"id"}, derivedPatientFields...)...)
	if err := c.err(); err != nil {
		return models.PatientUpdate{}, err
	}
	return u, nil
}

// CheckPatient re-validates an already typed patient, e.g. after merging an
// update onto a stored record.
func CheckPatient(p models.Patient) error {
	c := &collector{}
	check := func(field string, err error) {
		if err != nil {
			c.add(field, err.Error())
		}
	}
	check("id", nonBlank(p.ID))
	check("name", nonBlank(p.Name))
	check("city", nonBlank(p.City))
	_, err := validateAge(p.Age)
	check("age", err)
	check("gender", oneOf(p.Gender, models.Genders))
	check("height", finitePositive(p.Height))
	check("weight", finitePositive(p.Weight))
	return c.err()
}

func validateText(v any) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	return s, nonBlank(s)
}

func validateGender(v any) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	return s, oneOf(s, models.Genders)
}

func validatePositive(v any) (float64, error) {
	f, err := toFloat(v, false)
	if err != nil {
		return 0, err
	}
	return f, greaterThanZero(f)
}

func nonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmpty
	}
	return nil
}

func finitePositive(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("must be a finite number")
	}
	return greaterThanZero(f)
}
