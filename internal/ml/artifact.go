package ml

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"healthdesk/internal/models"
)

// Artifact is a multinomial logistic regression exported as JSON. Numeric
// features are standardized, categorical ones one-hot encoded as
// "name=value". A category outside the vocabulary encodes as all zeros.
type Artifact struct {
	Version     string                `json:"version"`
	Classes     []string              `json:"classes"`
	Numeric     []NumericFeature      `json:"numeric"`
	Categorical []CategoricalFeature  `json:"categorical"`
	Weights     map[string]ClassModel `json:"weights"`
}

type NumericFeature struct {
	Name  string  `json:"name"`
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
}

type CategoricalFeature struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type ClassModel struct {
	Bias         float64            `json:"bias"`
	Coefficients map[string]float64 `json:"coefficients"`
}

// ArtifactClassifier scores an in-memory Artifact. It is read-only after
// construction.
type ArtifactClassifier struct {
	artifact Artifact
	version  string
}

// LoadArtifactClassifier reads and checks the artifact at path. A non-empty
// version overrides the one stored in the file.
func LoadArtifactClassifier(path, version string) (*ArtifactClassifier, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(content, &artifact); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	return NewArtifactClassifier(artifact, version)
}

func NewArtifactClassifier(artifact Artifact, version string) (*ArtifactClassifier, error) {
	if len(artifact.Classes) == 0 {
		return nil, fmt.Errorf("model artifact has no classes")
	}
	for _, class := range artifact.Classes {
		if _, ok := artifact.Weights[class]; !ok {
			return nil, fmt.Errorf("model artifact missing weights for class %q", class)
		}
	}
	for _, nf := range artifact.Numeric {
		if _, ok := numericValue(models.FeatureRecord{}, nf.Name); !ok {
			return nil, fmt.Errorf("model artifact uses unknown numeric feature %q", nf.Name)
		}
		if nf.Scale == 0 {
			return nil, fmt.Errorf("model artifact feature %q has zero scale", nf.Name)
		}
	}
	for _, cf := range artifact.Categorical {
		if _, ok := categoricalValue(models.FeatureRecord{}, cf.Name); !ok {
			return nil, fmt.Errorf("model artifact uses unknown categorical feature %q", cf.Name)
		}
	}
	if version == "" {
		version = artifact.Version
	}
	return &ArtifactClassifier{artifact: artifact, version: version}, nil
}

func (c *ArtifactClassifier) Version() string { return c.version }

func (c *ArtifactClassifier) Loaded() bool { return true }

// Predict applies softmax over the per-class linear scores. The label is the
// first class with the highest probability.
func (c *ArtifactClassifier) Predict(_ context.Context, features models.FeatureRecord) (*Output, error) {
	encoded := c.encode(features)

	scores := make([]float64, len(c.artifact.Classes))
	for i, class := range c.artifact.Classes {
		weights := c.artifact.Weights[class]
		sum := weights.Bias
		for _, term := range encoded {
			sum += weights.Coefficients[term.key] * term.value
		}
		scores[i] = sum
	}

	probs := softmax(scores)
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}

	return &Output{
		Label:         c.artifact.Classes[best],
		Classes:       append([]string(nil), c.artifact.Classes...),
		Probabilities: probs,
	}, nil
}

type encodedTerm struct {
	key   string
	value float64
}

// encode lists the non-zero inputs in artifact order, numeric features first,
// so scores are summed in the same order on every call.
func (c *ArtifactClassifier) encode(f models.FeatureRecord) []encodedTerm {
	encoded := make([]encodedTerm, 0, len(c.artifact.Numeric)+len(c.artifact.Categorical))
	for _, nf := range c.artifact.Numeric {
		v, _ := numericValue(f, nf.Name)
		encoded = append(encoded, encodedTerm{key: nf.Name, value: (v - nf.Mean) / nf.Scale})
	}
	for _, cf := range c.artifact.Categorical {
		v, _ := categoricalValue(f, cf.Name)
		for _, known := range cf.Values {
			if known == v {
				encoded = append(encoded, encodedTerm{key: cf.Name + "=" + v, value: 1})
				break
			}
		}
	}
	return encoded
}

func numericValue(f models.FeatureRecord, name string) (float64, bool) {
	switch name {
	case "bmi":
		return f.BMI, true
	case "income_lpa":
		return f.IncomeLPA, true
	case "city_tier":
		return float64(f.CityTier), true
	}
	return 0, false
}

func categoricalValue(f models.FeatureRecord, name string) (string, bool) {
	switch name {
	case "age_group":
		return f.AgeGroup, true
	case "lifestyle_risk":
		return f.LifestyleRisk, true
	case "occupation":
		return f.Occupation, true
	case "city_tier":
		return fmt.Sprint(f.CityTier), true
	}
	return "", false
}

func softmax(scores []float64) []float64 {
	maxScore := math.Inf(-1)
	for _, s := range scores {
		maxScore = math.Max(maxScore, s)
	}
	out := make([]float64, len(scores))
	var total float64
	for i, s := range scores {
		out[i] = math.Exp(s - maxScore)
		total += out[i]
	}
	for i := range out {
		out[i] /= total
	}
	return out
}
