package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	SchemaBasic    = "basic"
	SchemaExtended = "extended"

	StoreJSON     = "json"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	// Server
	Port         string
	GinMode      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Prediction
	ModelPath         string
	ModelVersion      string
	ClassifierURL     string
	ClassifierTimeout time.Duration
	PredictSchema     string
	CityTiersFile     string

	// Patient store
	PatientStore     string
	PatientsFile     string
	RedisURL         string
	RedisDocumentKey string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecretKey string
}

// LoadDotEnv reads a .env file into the process environment. It returns the
// error so callers can log a warning; a missing file is never fatal.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		return godotenv.Load()
	}
	var err error
	for _, p := range paths {
		if err = godotenv.Load(p); err == nil {
			return nil
		}
	}
	return err
}

// Load reads the configuration from the environment. defaultPort differs per
// binary.
func Load(defaultPort string) *Config {
	return &Config{
		Port:         getEnv("PORT", defaultPort),
		GinMode:      getChoice("GIN_MODE", gin.ReleaseMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode),
		ReadTimeout:  getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout: getDuration("WRITE_TIMEOUT", 30*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		ModelPath:         getEnv("MODEL_PATH", "artifacts/model.json"),
		ModelVersion:      getEnv("MODEL_VERSION", ""),
		ClassifierURL:     getEnv("CLASSIFIER_URL", ""),
		ClassifierTimeout: getDuration("CLASSIFIER_TIMEOUT", 0),
		PredictSchema:     getChoice("PREDICT_SCHEMA", SchemaBasic, SchemaBasic, SchemaExtended),
		CityTiersFile:     getEnv("CITY_TIERS_FILE", ""),

		PatientStore:     getChoice("PATIENT_STORE", StoreJSON, StoreJSON, StorePostgres, StoreRedis),
		PatientsFile:     getEnv("PATIENTS_FILE", "patients.json"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisDocumentKey: getEnv("REDIS_DOCUMENT_KEY", "healthdesk:patients"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "healthdesk"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// bare integers are read as seconds
		if secs := getIntEnv(key, -1); secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// getChoice lowercases the value and falls back to defaultValue when it is
// not one of allowed.
func getChoice(key, defaultValue string, allowed ...string) string {
	value := strings.ToLower(getEnv(key, defaultValue))
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return defaultValue
}
