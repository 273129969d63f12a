package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Operation timeouts. The list deadline bounds a whole run; the card deadline
// bounds one LLM call; the board deadline bounds one board API call.
const (
	ListAnalysisTimeout = 240 * time.Second
	CardAnalysisTimeout = 30 * time.Second
	BoardAPITimeout     = 15 * time.Second
)

const (
	defaultHost              = "0.0.0.0"
	defaultPort              = 5001
	defaultVectorDBPath      = "./vector_db"
	defaultVectorCollection  = "talan_documents"
	defaultUploadFolder      = "./uploads"
	defaultMaxContentLength  = 16 * 1024 * 1024
	defaultAnalysisBatchSize = 8
	defaultLLMConcurrency    = 3
)

// Settings holds the service configuration, loaded once from the environment
// at startup. Database pool settings live in pkg/database.
type Settings struct {
	Host string
	Port int

	BoardAPIKey     string
	BoardAPIBaseURL string

	LLMAPIKey  string
	LLMModel   string
	LLMBaseURL string

	VectorDBPath     string
	VectorCollection string

	UploadFolder     string
	MaxContentLength int64

	CryptoSecretKey string

	AnalysisBatchSize int
	LLMConcurrency    int
	AgentRunInterval  time.Duration

	CORSAllowOrigins []string
}

// Load reads settings from the environment, applying defaults. Malformed
// numeric values are an error; missing required values are reported by
// Validate so tests can build partial settings.
func Load() (Settings, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", strconv.Itoa(defaultPort)))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid PORT: %w", err)
	}

	maxLen, err := strconv.ParseInt(getEnvOrDefault("MAX_CONTENT_LENGTH", strconv.Itoa(defaultMaxContentLength)), 10, 64)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid MAX_CONTENT_LENGTH: %w", err)
	}

	batchSize, err := strconv.Atoi(getEnvOrDefault("ANALYSIS_BATCH_SIZE", strconv.Itoa(defaultAnalysisBatchSize)))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid ANALYSIS_BATCH_SIZE: %w", err)
	}
	if batchSize < 1 {
		batchSize = defaultAnalysisBatchSize
	}

	concurrency, err := strconv.Atoi(getEnvOrDefault("LLM_CONCURRENCY", strconv.Itoa(defaultLLMConcurrency)))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid LLM_CONCURRENCY: %w", err)
	}

	var runInterval time.Duration
	if raw := os.Getenv("AGENT_RUN_INTERVAL"); raw != "" {
		runInterval, err = time.ParseDuration(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid AGENT_RUN_INTERVAL: %w", err)
		}
	}

	return Settings{
		Host:              getEnvOrDefault("HOST", defaultHost),
		Port:              port,
		BoardAPIKey:       os.Getenv("BOARD_API_KEY"),
		BoardAPIBaseURL:   os.Getenv("BOARD_API_BASE_URL"),
		LLMAPIKey:         os.Getenv("LLM_API_KEY"),
		LLMModel:          os.Getenv("LLM_MODEL"),
		LLMBaseURL:        os.Getenv("LLM_BASE_URL"),
		VectorDBPath:      getEnvOrDefault("VECTOR_DB_PATH", defaultVectorDBPath),
		VectorCollection:  getEnvOrDefault("VECTOR_COLLECTION", defaultVectorCollection),
		UploadFolder:      getEnvOrDefault("UPLOAD_FOLDER", defaultUploadFolder),
		MaxContentLength:  maxLen,
		CryptoSecretKey:   os.Getenv("CRYPTO_SECRET_KEY"),
		AnalysisBatchSize: batchSize,
		LLMConcurrency:    clampConcurrency(concurrency),
		AgentRunInterval:  runInterval,
		CORSAllowOrigins:  splitOrigins(getEnvOrDefault("CORS_ALLOW_ORIGINS", "*")),
	}, nil
}

// Validate checks the values the service cannot run without.
func (s Settings) Validate() error {
	if s.BoardAPIKey == "" {
		return fmt.Errorf("BOARD_API_KEY is required")
	}
	if s.LLMAPIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	if s.CryptoSecretKey == "" {
		return fmt.Errorf("CRYPTO_SECRET_KEY is required")
	}
	return nil
}

// Addr returns the HTTP bind address.
func (s Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LLM batches in flight stay between 2 and 4.
func clampConcurrency(n int) int {
	if n < 2 {
		return 2
	}
	if n > 4 {
		return 4
	}
	return n
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
