package models

import (
	"bytes"
	"encoding/json"
)

// FeatureRecord is the exact input schema of the premium classifier.
type FeatureRecord struct {
	BMI           float64 `json:"bmi" example:"22.4913"`
	AgeGroup      string  `json:"age_group" example:"adult"`
	LifestyleRisk string  `json:"lifestyle_risk" example:"low"`
	CityTier      int     `json:"city_tier" example:"1"`
	IncomeLPA     float64 `json:"income_lpa" example:"10"`
	Occupation    string  `json:"occupation" example:"private_job"`
}

type ClassProbability struct {
	Label       string
	Probability float64
}

// ClassProbabilities keeps the classifier's label order when encoded as a
// JSON object.
type ClassProbabilities []ClassProbability

func (c ClassProbabilities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cp := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cp.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(cp.Probability)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type PredictionResult struct {
	PredictedCategory  string             `json:"predicted_category" example:"Low"`
	Confidence         float64            `json:"confidence" example:"0.8432"`
	ClassProbabilities ClassProbabilities `json:"class_probabilities" swaggertype:"object,number"`
}

type PredictionResponse struct {
	Response PredictionResult `json:"response"`
}

type HealthStatus struct {
	Status       string `json:"status" example:"OK"`
	ModelVersion string `json:"model_version" example:"1.0.0"`
	ModelLoaded  bool   `json:"model_loaded" example:"true"`
}
