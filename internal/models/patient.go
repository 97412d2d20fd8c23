package models

import "healthdesk/internal/features"

// Genders is the closed set accepted for Patient.Gender.
var Genders = []string{"male", "female", "others"}

// Patient is a validated patient record keyed by ID.
type Patient struct {
	ID     string  `json:"id" example:"P001"`
	Name   string  `json:"name" example:"Ananya Verma"`
	City   string  `json:"city" example:"Guwahati"`
	Age    int     `json:"age" example:"28"`
	Gender string  `json:"gender" example:"female"`
	Height float64 `json:"height" example:"1.65"`
	Weight float64 `json:"weight" example:"90"`
}

func (p Patient) BMI() float64 {
	return features.Round(features.BMI(p.Weight, p.Height), features.PatientBMIPrecision)
}

func (p Patient) Verdict() string {
	return features.Verdict(p.BMI())
}

// Record flattens the patient into its stored form, with derived fields
// computed at write time.
func (p Patient) Record() PatientRecord {
	return PatientRecord{
		Name:    p.Name,
		City:    p.City,
		Age:     p.Age,
		Gender:  p.Gender,
		Height:  p.Height,
		Weight:  p.Weight,
		BMI:     p.BMI(),
		Verdict: p.Verdict(),
	}
}

// PatientRecord is the value side of the patient document, keyed by ID.
type PatientRecord struct {
	Name    string  `json:"name" example:"Ananya Verma"`
	City    string  `json:"city" example:"Guwahati"`
	Age     int     `json:"age" example:"28"`
	Gender  string  `json:"gender" example:"female"`
	Height  float64 `json:"height" example:"1.65"`
	Weight  float64 `json:"weight" example:"90"`
	BMI     float64 `json:"bmi" example:"33.06"`
	Verdict string  `json:"verdict" example:"Obese"`
}

// Patient rebuilds the base fields of a stored record.
func (r PatientRecord) Patient(id string) Patient {
	return Patient{
		ID:     id,
		Name:   r.Name,
		City:   r.City,
		Age:    r.Age,
		Gender: r.Gender,
		Height: r.Height,
		Weight: r.Weight,
	}
}

// PatientUpdate holds the fields supplied to a partial update. Nil means the
// caller did not send the field.
type PatientUpdate struct {
	Name   *string  `json:"name,omitempty"`
	City   *string  `json:"city,omitempty"`
	Age    *int     `json:"age,omitempty"`
	Gender *string  `json:"gender,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// ApplyTo overwrites the fields of p that were supplied in the update.
func (u PatientUpdate) ApplyTo(p *Patient) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
}

// PatientRow is the relational form of a document entry. Position keeps the
// document's iteration order.
type PatientRow struct {
	ID       string  `gorm:"primaryKey;size:64"`
	Position int     `gorm:"index;not null"`
	Name     string  `gorm:"not null"`
	City     string  `gorm:"not null"`
	Age      int     `gorm:"not null"`
	Gender   string  `gorm:"size:16;not null"`
	Height   float64 `gorm:"not null"`
	Weight   float64 `gorm:"not null"`
	BMI      float64 `gorm:"column:bmi;not null"`
	Verdict  string  `gorm:"size:16;not null"`
}

func (PatientRow) TableName() string {
	return "patients"
}
