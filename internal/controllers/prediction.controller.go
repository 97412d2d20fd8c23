package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthdesk/internal/config"
	"healthdesk/internal/metrics"
	"healthdesk/internal/models"
	"healthdesk/internal/services"
	"healthdesk/internal/validation"
)

const PredictionRootMessage = "Insurance Premium Category Prediction API"

type PredictionController struct {
	predictor services.Predictor
	schema    string
}

// NewPredictionController serves the basic body schema unless schema is
// config.SchemaExtended.
func NewPredictionController(predictor services.Predictor, schema string) *PredictionController {
	if schema != config.SchemaExtended {
		schema = config.SchemaBasic
	}
	return &PredictionController{predictor: predictor, schema: schema}
}

// Home godoc
// @Summary Service banner
// @Tags prediction
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (pc *PredictionController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: PredictionRootMessage})
}

// Health godoc
// @Summary Model health
// @Description Reports whether a model is loaded and which version is serving
// @Tags prediction
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (pc *PredictionController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, pc.predictor.Health())
}

// Predict godoc
// @Summary Predict the insurance premium category
// @Description Validates the applicant, derives bmi, age group, lifestyle risk and city tier, and asks the classifier for a category
// @Tags prediction
// @Accept json
// @Produce json
// @Param input body models.UserInput true "Applicant data"
// @Success 200 {object} models.PredictionResponse
// @Failure 422 {object} ValidationErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Classifier failure"
// @Router /predict [post]
func (pc *PredictionController) Predict(c *gin.Context) {
	raw, err := readRawInput(c)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(pc.schema).Inc()
		abortWithError(c, err)
		return
	}

	in, err := pc.parse(raw)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(pc.schema).Inc()
		abortWithError(c, err)
		return
	}

	result, err := pc.predictor.Predict(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PredictionResponse{Response: result})
}

func (pc *PredictionController) parse(raw validation.RawInput) (models.UserInput, error) {
	if pc.schema == config.SchemaExtended {
		ext, err := validation.ParseExtendedUserInput(raw)
		return ext.UserInput, err
	}
	return validation.ParseUserInput(raw)
}
