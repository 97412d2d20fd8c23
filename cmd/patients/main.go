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
	"healthdesk/internal/logger"
	"healthdesk/internal/repository"
	"healthdesk/internal/server"
	"healthdesk/internal/store"
	"healthdesk/routes"
)

func main() {
	envErr := config.LoadDotEnv()
	cfg := config.Load("8001")
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.WithError(envErr).Debug("No .env file loaded, using process environment")
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	documentStore, closeStore, err := store.New(ctx, cfg, log)
	if err != nil {
		log.WithError(err).WithField("store", cfg.PatientStore).Fatal("Failed to open patient store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Warn("Failed to close patient store")
		}
	}()

	patientRepo := repository.NewPatientRepository(documentStore, log)
	patientController := controllers.NewPatientController(patientRepo)

	router := routes.NewRouter(log)
	routes.RegisterPatientRoutes(router, patientController, cfg.JWTSecretKey)
	routes.RegisterMetricsRoutes(router)
	routes.RegisterSwaggerRoutes(router, docs.PatientsInfo.InstanceName())

	if cfg.JWTSecretKey == "" {
		log.Warn("JWT_SECRET_KEY is empty, mutating routes are unauthenticated")
	}
	log.WithFields(logrus.Fields{
		"port":  cfg.Port,
		"store": cfg.PatientStore,
		"docs":  "http://localhost:" + cfg.Port + "/swagger/index.html",
	}).Info("Patient management API ready")

	if err := server.Run(ctx, server.New(cfg, router), log); err != nil {
		log.WithError(err).Error("Server failed")
	}
}
