package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"healthdesk/internal/apperror"
	"healthdesk/internal/config"
	"healthdesk/internal/controllers"
	"healthdesk/internal/mocks"
	"healthdesk/internal/models"
)

func setupPredictionRouter(schema string) (*gin.Engine, *mocks.MockPredictor) {
	gin.SetMode(gin.TestMode)
	predictor := new(mocks.MockPredictor)
	ctrl := controllers.NewPredictionController(predictor, schema)

	router := gin.New()
	router.GET("/", ctrl.Home)
	router.GET("/health", ctrl.Health)
	router.POST("/predict", ctrl.Predict)
	return router, predictor
}

const validPredictBody = `{"age": 30, "weight": 65, "height": 1.7, "income_lpa": 10, "smoker": false, "city": "mumbai", "occupation": "private_job"}`

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPredictionHome(t *testing.T) {
	router, _ := setupPredictionRouter(config.SchemaBasic)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Insurance Premium Category Prediction API"}`, w.Body.String())
}

func TestPredictionHealth(t *testing.T) {
	router, predictor := setupPredictionRouter(config.SchemaBasic)
	predictor.On("Health").Return(models.HealthStatus{Status: "OK", ModelVersion: "1.0.0", ModelLoaded: false})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","model_version":"1.0.0","model_loaded":false}`, w.Body.String())
}

func TestPredict(t *testing.T) {
	router, predictor := setupPredictionRouter(config.SchemaBasic)

	expectedInput := models.UserInput{
		Age: 30, Weight: 65, Height: 1.7, IncomeLPA: 10, Smoker: false, City: "Mumbai", Occupation: "private_job",
	}
	predictor.On("Predict", mock.Anything, expectedInput).Return(models.PredictionResult{
		PredictedCategory: "Low",
		Confidence:        0.8432,
		ClassProbabilities: models.ClassProbabilities{
			{Label: "Medium", Probability: 0.1},
			{Label: "Low", Probability: 0.8432},
			{Label: "High", Probability: 0.0568},
		},
	}, nil).Once()

	w := postJSON(router, "/predict", validPredictBody)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`{"response":{"predicted_category":"Low","confidence":0.8432,"class_probabilities":{"Medium":0.1,"Low":0.8432,"High":0.0568}}}`,
		w.Body.String())
	predictor.AssertExpectations(t)
}

func TestPredictValidationFailures(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedFields []string
	}{
		{
			name:           "every violation reported",
			body:           `{"age": 0, "weight": 65, "height": 3, "income_lpa": 10, "smoker": false, "occupation": "pilot"}`,
			expectedFields: []string{"age", "height", "city", "occupation"},
		},
		{
			name:           "malformed json",
			body:           `{"age": `,
			expectedFields: []string{"body"},
		},
		{
			name:           "trailing data after object",
			body:           validPredictBody + ` {"age": 31}`,
			expectedFields: []string{"body"},
		},
		{
			name:           "unknown field",
			body:           `{"age": 30, "weight": 65, "height": 1.7, "income_lpa": 10, "smoker": false, "city": "Pune", "occupation": "student", "email": "a@hdfc.com"}`,
			expectedFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, predictor := setupPredictionRouter(config.SchemaBasic)

			w := postJSON(router, "/predict", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var resp controllers.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			fields := make([]string, 0, len(resp.Detail))
			for _, d := range resp.Detail {
				fields = append(fields, d.Field)
				assert.NotEmpty(t, d.Message)
			}
			assert.Equal(t, tt.expectedFields, fields)
			predictor.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything)
		})
	}
}

func TestPredictClassifierFailure(t *testing.T) {
	router, predictor := setupPredictionRouter(config.SchemaBasic)
	predictor.On("Predict", mock.Anything, mock.Anything).
		Return(models.PredictionResult{}, apperror.Upstream(errors.New("model not loaded")))

	w := postJSON(router, "/predict", validPredictBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"model not loaded"}`, w.Body.String())
}

func TestPredictExtendedSchema(t *testing.T) {
	router, predictor := setupPredictionRouter(config.SchemaExtended)
	predictor.On("Predict", mock.Anything, mock.MatchedBy(func(in models.UserInput) bool {
		return in.Age == 30 && in.City == "Mumbai"
	})).Return(models.PredictionResult{
		PredictedCategory:  "Low",
		Confidence:         1,
		ClassProbabilities: models.ClassProbabilities{{Label: "Low", Probability: 1}},
	}, nil).Once()

	body := `{"age": 30, "weight": 65, "height": 1.7, "income_lpa": 10, "smoker": false, "city": "mumbai",
		"occupation": "private_job", "name": "Asha", "email": "asha@sbi.com", "allergies": ["dust"]}`
	w := postJSON(router, "/predict", body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/predict", `{"age": 65, "weight": 65, "height": 1.7, "income_lpa": 10, "smoker": false, "city": "Pune", "occupation": "retired"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Client above 60 years must have income more than 10 lpa")

	predictor.AssertExpectations(t)
}
