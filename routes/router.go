package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthdesk/internal/middleware"
)

// NewRouter builds the engine shared by both services: panic recovery,
// request ids, access logging and request metrics.
func NewRouter(log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Metrics(),
	)
	return router
}
