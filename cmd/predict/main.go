package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthdesk/docs"
	"healthdesk/internal/config"
	"healthdesk/internal/controllers"
	"healthdesk/internal/features"
	"healthdesk/internal/logger"
	"healthdesk/internal/ml"
	"healthdesk/internal/server"
	"healthdesk/internal/services"
	"healthdesk/routes"
)

func main() {
	envErr := config.LoadDotEnv()
	cfg := config.Load("8000")
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.WithError(envErr).Debug("No .env file loaded, using process environment")
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tiers := features.DefaultCityTiers()
	if cfg.CityTiersFile != "" {
		loaded, err := features.LoadCityTiers(cfg.CityTiersFile)
		if err != nil {
			log.WithError(err).WithField("file", cfg.CityTiersFile).Fatal("Failed to load city tiers")
		}
		tiers = loaded
	}

	classifier := ml.Load(ctx, cfg, log)
	predictionService := services.NewPredictionService(classifier, tiers, log)
	predictionController := controllers.NewPredictionController(predictionService, cfg.PredictSchema)

	router := routes.NewRouter(log)
	routes.RegisterPredictionRoutes(router, predictionController)
	routes.RegisterMetricsRoutes(router)
	routes.RegisterSwaggerRoutes(router, docs.PredictInstance(cfg.PredictSchema == config.SchemaExtended))

	log.WithFields(logrus.Fields{
		"port":         cfg.Port,
		"schema":       cfg.PredictSchema,
		"model_loaded": classifier.Loaded(),
		"docs":         "http://localhost:" + cfg.Port + "/swagger/index.html",
	}).Info("Insurance premium prediction API ready")

	if err := server.Run(ctx, server.New(cfg, router), log); err != nil {
		log.WithError(err).Fatal("Server failed")
	}
}
