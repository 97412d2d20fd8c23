package models

import "healthdesk/internal/features"

// Occupations is the closed set accepted for UserInput.Occupation.
var Occupations = []string{
	"retired",
	"freelancer",
	"student",
	"government_job",
	"business_owner",
	"unemployed",
	"private_job",
}

// UserInput is a validated prediction record. Values are only ever produced by
// the validation package, so every field is within its declared bounds.
type UserInput struct {
	Age        int     `json:"age" example:"30"`
	Weight     float64 `json:"weight" example:"65"`
	Height     float64 `json:"height" example:"1.7"`
	IncomeLPA  float64 `json:"income_lpa" example:"10"`
	Smoker     bool    `json:"smoker" example:"false"`
	City       string  `json:"city" example:"Mumbai"`
	Occupation string  `json:"occupation" example:"private_job"`
}

type Address struct {
	City  string `json:"city" example:"Aya Nagar"`
	State string `json:"state" example:"New Delhi"`
	Pin   int    `json:"pin" example:"110047"`
}

// ExtendedUserInput carries the optional profile fields accepted by the
// extended prediction schema. Omitted fields stay nil.
type ExtendedUserInput struct {
	UserInput
	Name           *string           `json:"name,omitempty"`
	Married        *bool             `json:"married,omitempty"`
	Allergies      []string          `json:"allergies,omitempty"`
	ContactDetails map[string]string `json:"contact_details,omitempty"`
	Email          *string           `json:"email,omitempty"`
	LinkedInURL    *string           `json:"linkedin_url,omitempty"`
	Address        *Address          `json:"address,omitempty"`
}

// DerivedAttributes is a read-only view computed from a UserInput.
type DerivedAttributes struct {
	BMI           float64 `json:"bmi"`
	AgeGroup      string  `json:"age_group"`
	LifestyleRisk string  `json:"lifestyle_risk"`
	CityTier      int     `json:"city_tier"`
}

func (u UserInput) BMI() float64 {
	return features.Round(features.BMI(u.Weight, u.Height), features.PredictionBMIPrecision)
}

func (u UserInput) AgeGroup() string {
	return features.AgeGroup(u.Age)
}

func (u UserInput) LifestyleRisk() string {
	return features.LifestyleRisk(u.Smoker, u.BMI())
}

func (u UserInput) CityTier(tiers *features.CityTiers) int {
	return tiers.Tier(u.City)
}

// Derive recomputes every derived attribute from the base fields.
func (u UserInput) Derive(tiers *features.CityTiers) DerivedAttributes {
	return DerivedAttributes{
		BMI:           u.BMI(),
		AgeGroup:      u.AgeGroup(),
		LifestyleRisk: u.LifestyleRisk(),
		CityTier:      u.CityTier(tiers),
	}
}
