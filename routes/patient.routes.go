package routes

import (
	"github.com/gin-gonic/gin"

	"healthdesk/internal/controllers"
	"healthdesk/internal/middleware"
)

// RegisterPatientRoutes mounts the patient API. Mutating routes go through
// the bearer token guard, which is a no-op when jwtSecret is empty.
func RegisterPatientRoutes(router *gin.Engine, patientController *controllers.PatientController, jwtSecret string) {
	router.GET("/", patientController.Home)
	router.GET("/about", patientController.About)
	router.GET("/view", patientController.View)
	router.GET("/patient/:id", patientController.GetPatient)
	router.GET("/sort", patientController.SortPatients)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.POST("/create", patientController.CreatePatient)
		protected.PUT("/edit/:id", patientController.UpdatePatient)
		protected.DELETE("/delete/:id", patientController.DeletePatient)
	}
}
