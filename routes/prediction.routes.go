package routes

import (
	"github.com/gin-gonic/gin"

	"healthdesk/internal/controllers"
)

func RegisterPredictionRoutes(router *gin.Engine, predictionController *controllers.PredictionController) {
	router.GET("/", predictionController.Home)
	router.GET("/health", predictionController.Health)
	router.POST("/predict", predictionController.Predict)
}
