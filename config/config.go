package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	MaxUploadMB    int
}

// AnalysisConfig locates the external document-analysis service.
type AnalysisConfig struct {
	BaseURL string
	Path    string
	// Timeout of zero leaves the request unbounded.
	Timeout time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	LogFile     string
	Version     string
}

// Endpoint returns the absolute URL requests are posted to.
func (a AnalysisConfig) Endpoint() string {
	return strings.TrimRight(a.BaseURL, "/") + a.Path
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8090"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxUploadMB:    getEnvAsInt("MAX_UPLOAD_MB", 64),
		},
		Analysis: AnalysisConfig{
			BaseURL: getEnv("ANALYSIS_SERVICE_URL", "http://localhost:8000"),
			Path:    getEnv("ANALYSIS_PATH", "/api/analyze/"),
			Timeout: getEnvAsDuration("ANALYSIS_TIMEOUT", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFile:     getEnv("LOG_FILE", ""),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Analysis.BaseURL == "" {
		return fmt.Errorf("ANALYSIS_SERVICE_URL is required")
	}
	u, err := url.Parse(c.Analysis.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("ANALYSIS_SERVICE_URL must be an absolute URL, got %q", c.Analysis.BaseURL)
	}

	if !strings.HasPrefix(c.Analysis.Path, "/") {
		return fmt.Errorf("ANALYSIS_PATH must start with '/', got %q", c.Analysis.Path)
	}

	if c.Analysis.Timeout < 0 {
		return fmt.Errorf("ANALYSIS_TIMEOUT must not be negative")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
