package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"healthdesk/database"
	"healthdesk/internal/config"
	"healthdesk/internal/logger"
	"healthdesk/internal/seed"
	"healthdesk/internal/store"
)

func main() {
	if err := config.LoadDotEnv(".env", "../../.env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: No .env file found: %v\n", err)
	}
	cfg := config.Load("")
	log := logger.New(cfg.LogLevel, "text")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(cfg, log).Run(ctx, os.Args); err != nil {
		log.WithError(err).Error("Command failed")
		stop()
		os.Exit(1)
	}
}

func newApp(cfg *config.Config, log *logrus.Logger) *cli.Command {
	storeFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:    "store",
			Usage:   "Patient store backend: json, postgres or redis",
			Value:   cfg.PatientStore,
			Sources: cli.EnvVars("PATIENT_STORE"),
		}
	}

	return &cli.Command{
		Name:  "seed",
		Usage: "Manage the patient document behind the patient API",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create or update the patients table in PostgreSQL",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					db, err := database.ConnectDatabase(cfg, log)
					if err != nil {
						return err
					}
					sqlDB, err := db.DB()
					if err != nil {
						return err
					}
					defer sqlDB.Close()
					return database.MigrateDatabase(db, log)
				},
			},
			{
				Name:  "load",
				Usage: "Validate a patient JSON file and write it to the store",
				Description: `Every entry is validated like a create request and its bmi and verdict
are recomputed. Without --replace, ids already stored are overwritten in place
and new ids are appended.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Required: true,
						Usage:    "Path to a patient document (id -> record)",
					},
					&cli.BoolFlag{
						Name:  "replace",
						Usage: "Discard the stored document instead of merging",
					},
					storeFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					incoming, err := seed.ReadFile(cmd.String("file"))
					if err != nil {
						return err
					}
					return withStore(ctx, cfg, cmd.String("store"), log, func(s store.DocumentStore) error {
						res, err := seed.Load(ctx, s, incoming, cmd.Bool("replace"))
						if err != nil {
							return err
						}
						log.WithFields(logrus.Fields{
							"added":    res.Added,
							"replaced": res.Replaced,
							"total":    res.Total,
						}).Info("Patients loaded")
						return nil
					})
				},
			},
			{
				Name:  "clear",
				Usage: "Remove every patient from the store",
				Flags: []cli.Flag{storeFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withStore(ctx, cfg, cmd.String("store"), log, func(s store.DocumentStore) error {
						removed, err := seed.Clear(ctx, s)
						if err != nil {
							return err
						}
						log.WithField("removed", removed).Info("Patient store cleared")
						return nil
					})
				},
			},
		},
	}
}

func withStore(ctx context.Context, cfg *config.Config, backend string, log *logrus.Logger, fn func(store.DocumentStore) error) error {
	storeCfg := *cfg
	storeCfg.PatientStore = backend

	s, closeStore, err := store.New(ctx, &storeCfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Warn("Failed to close patient store")
		}
	}()
	return fn(s)
}
