package ml

import (
	"context"

	"github.com/sirupsen/logrus"

	"healthdesk/internal/config"
)

// Load picks the classifier for the configuration: the remote server when
// CLASSIFIER_URL is set, otherwise the artifact at MODEL_PATH. Failures are
// logged and yield Unavailable so the service still starts.
func Load(ctx context.Context, cfg *config.Config, log *logrus.Logger) Classifier {
	if cfg.ClassifierURL != "" {
		remote := NewRemoteClassifier(cfg.ClassifierURL, cfg.ClassifierTimeout, cfg.ModelVersion)
		if err := remote.Refresh(ctx); err != nil {
			log.WithError(err).WithField("url", cfg.ClassifierURL).
				Warn("Classifier metadata unavailable, predictions will be attempted anyway")
		} else {
			log.WithFields(logrus.Fields{"url": cfg.ClassifierURL, "version": remote.Version()}).
				Info("Remote classifier ready")
		}
		return remote
	}

	artifact, err := LoadArtifactClassifier(cfg.ModelPath, cfg.ModelVersion)
	if err != nil {
		log.WithError(err).WithField("path", cfg.ModelPath).Error("Failed to load model artifact")
		return NewUnavailable(cfg.ModelVersion)
	}
	log.WithFields(logrus.Fields{"path": cfg.ModelPath, "version": artifact.Version()}).Info("Model artifact loaded")
	return artifact
}
