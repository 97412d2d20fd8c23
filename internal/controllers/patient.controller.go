package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthdesk/internal/metrics"
	"healthdesk/internal/repository"
	"healthdesk/internal/validation"
)

const (
	PatientRootMessage  = "Patient Management System API"
	PatientAboutMessage = "A fully functional API to manage your patient records."
)

type PatientController struct {
	repo repository.PatientRepository
}

func NewPatientController(repo repository.PatientRepository) *PatientController {
	return &PatientController{repo: repo}
}

// Home godoc
// @Summary Service banner
// @Tags patients
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (pc *PatientController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: PatientRootMessage})
}

// About godoc
// @Summary Service description
// @Tags patients
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /about [get]
func (pc *PatientController) About(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: PatientAboutMessage})
}

// View godoc
// @Summary List every patient
// @Description Returns the whole patient document keyed by id, in store order
// @Tags patients
// @Produce json
// @Success 200 {object} map[string]models.PatientRecord
// @Failure 500 {object} DetailResponse "Storage failure"
// @Router /view [get]
func (pc *PatientController) View(c *gin.Context) {
	doc, err := pc.repo.FindAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetPatient godoc
// @Summary Get one patient
// @Tags patients
// @Produce json
// @Param id path string true "ID of the patient in the DB" example(P001)
// @Success 200 {object} models.PatientRecord
// @Failure 404 {object} DetailResponse "Patient not found"
// @Router /patient/{id} [get]
func (pc *PatientController) GetPatient(c *gin.Context) {
	rec, err := pc.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// SortPatients godoc
// @Summary Sort patients
// @Tags patients
// @Produce json
// @Param sort_by query string true "Sort on the basis of height, weight or bmi" Enums(height, weight, bmi)
// @Param order query string false "sort in asc or desc order" Enums(asc, desc) default(asc)
// @Success 200 {array} models.PatientRecord
// @Failure 400 {object} DetailResponse "Invalid sort field or order"
// @Failure 422 {object} ValidationErrorResponse "Missing sort_by"
// @Router /sort [get]
func (pc *PatientController) SortPatients(c *gin.Context) {
	sortBy, ok := c.GetQuery("sort_by")
	if !ok {
		abortWithError(c, &validation.ValidationError{
			Errors: []validation.FieldError{{Field: "sort_by", Message: "field required"}},
		})
		return
	}

	records, err := pc.repo.Sort(c.Request.Context(), sortBy, c.DefaultQuery("order", "asc"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreatePatient godoc
// @Summary Create a patient
// @Description bmi and verdict are computed from height and weight
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param patient body models.Patient true "Patient data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} DetailResponse "Patient already exists"
// @Failure 422 {object} ValidationErrorResponse "Invalid patient"
// @Router /create [post]
func (pc *PatientController) CreatePatient(c *gin.Context) {
	raw, err := readRawInput(c)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("patient").Inc()
		abortWithError(c, err)
		return
	}
	patient, err := validation.ParsePatient(raw)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("patient").Inc()
		abortWithError(c, err)
		return
	}

	if err := pc.repo.Create(c.Request.Context(), patient); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "patient created successfully"})
}

// UpdatePatient godoc
// @Summary Update a patient
// @Description Only the supplied fields change; bmi and verdict are recomputed
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID of the patient"
// @Param patient body models.PatientUpdate true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} DetailResponse "Patient not found"
// @Failure 422 {object} ValidationErrorResponse "Invalid update"
// @Router /edit/{id} [put]
func (pc *PatientController) UpdatePatient(c *gin.Context) {
	raw, err := readRawInput(c)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("patient_update").Inc()
		abortWithError(c, err)
		return
	}
	update, err := validation.ParsePatientUpdate(raw)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("patient_update").Inc()
		abortWithError(c, err)
		return
	}

	if _, err := pc.repo.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "patient updated"})
}

// DeletePatient godoc
// @Summary Delete a patient
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID of the patient"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} DetailResponse "Patient not found"
// @Router /delete/{id} [delete]
func (pc *PatientController) DeletePatient(c *gin.Context) {
	if err := pc.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "patient deleted"})
}
