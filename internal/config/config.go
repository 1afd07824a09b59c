package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Evaluator EvaluatorConfig
	Jobs      JobConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	PipelineTopic      string
	PipelineWorkers    int
}

type DatabaseConfig struct {
	Connection string
}

type EvaluatorConfig struct {
	BaseURL string
	APIKey  string

	// Three independent timeout tiers: connect is short, the request
	// ceiling covers a full multi-candidate evaluation, and the read
	// ceiling sits above it so a slow but progressing response stream is
	// not killed by the transport first.
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	HealthTimeout  time.Duration

	MaxAttempts   int
	RetryInterval time.Duration
}

type JobConfig struct {
	TTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			PipelineTopic:      getEnv("PIPELINE_TOPIC_NAME", "INTERVIEW_EVALUATION_PIPELINE"),
			PipelineWorkers:    getEnvAsInt("PIPELINE_WORKER_COUNT", 5),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Evaluator: EvaluatorConfig{
			BaseURL:        getEnv("EVALUATOR_BASE_URL", "http://localhost:8000"),
			APIKey:         getEnv("EVALUATOR_API_KEY", "internal-api-key"),
			ConnectTimeout: time.Duration(getEnvAsInt("EVALUATOR_CONNECT_TIMEOUT_SECONDS", 30)) * time.Second,
			RequestTimeout: time.Duration(getEnvAsInt("EVALUATOR_REQUEST_TIMEOUT_MINUTES", 10)) * time.Minute,
			ReadTimeout:    time.Duration(getEnvAsInt("EVALUATOR_READ_TIMEOUT_MINUTES", 12)) * time.Minute,
			HealthTimeout:  time.Duration(getEnvAsInt("EVALUATOR_HEALTH_TIMEOUT_SECONDS", 15)) * time.Second,
			MaxAttempts:    getEnvAsInt("EVALUATOR_MAX_ATTEMPTS", 3),
			RetryInterval:  time.Duration(getEnvAsInt("EVALUATOR_RETRY_INTERVAL_SECONDS", 10)) * time.Second,
		},
		Jobs: JobConfig{
			TTL: time.Duration(getEnvAsInt("JOB_TTL_HOURS", 24)) * time.Hour,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
