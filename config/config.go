package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
//
// Every default reproduces the historical behavior of the calculator when the
// environment is empty: data file "cgpa_data.txt" in the working directory,
// courses capped at 100 per semester, grades on a 0-10 scale.
type Config struct {
	// Application
	App AppConfig

	// Data file
	Data DataConfig

	// Input validation bounds
	Input InputConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name    string
	Version string
}

// DataConfig holds settings for the persisted data file.
type DataConfig struct {
	// Path to the plain-text data file.
	Path string
}

// InputConfig holds bounds applied by the interactive input loop.
type InputConfig struct {
	// MaxCourses caps the number of courses per semester.
	MaxCourses int

	// GradeMin and GradeMax bound the accepted numeric grade.
	GradeMin float64
	GradeMax float64

	// CreditMin and CreditMax bound the accepted credit hours.
	// CreditMin must stay strictly positive: zero-credit courses would
	// poison the weighted average denominator.
	CreditMin float64
	CreditMax float64
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	// LogLevel: debug, info, warn, error
	LogLevel string

	// ReportCacheTTL is how long a rendered report stays cached.
	ReportCacheTTL time.Duration
}

// Load loads configuration from a .env file (if present) and environment
// variables. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "cgpa-tracker"),
			Version: getEnv("APP_VERSION", "0.1.0"),
		},
		Data: DataConfig{
			Path: getEnv("CGPA_DATA_PATH", "cgpa_data.txt"),
		},
		Input: InputConfig{
			MaxCourses: getEnvInt("CGPA_MAX_COURSES", 100),
			GradeMin:   getEnvFloat("CGPA_GRADE_MIN", 0.0),
			GradeMax:   getEnvFloat("CGPA_GRADE_MAX", 10.0),
			CreditMin:  getEnvFloat("CGPA_CREDIT_MIN", 0.01),
			CreditMax:  getEnvFloat("CGPA_CREDIT_MAX", 100.0),
		},
		Observability: ObservabilityConfig{
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			ReportCacheTTL: getEnvDuration("CGPA_REPORT_CACHE_TTL", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Data.Path == "" {
		errs = append(errs, "CGPA_DATA_PATH must not be empty")
	}

	if c.Input.MaxCourses < 1 {
		errs = append(errs, "CGPA_MAX_COURSES must be at least 1")
	}

	if c.Input.GradeMin > c.Input.GradeMax {
		errs = append(errs, "CGPA_GRADE_MIN must not exceed CGPA_GRADE_MAX")
	}

	if c.Input.CreditMin <= 0 {
		errs = append(errs, "CGPA_CREDIT_MIN must be positive")
	}

	if c.Input.CreditMin > c.Input.CreditMax {
		errs = append(errs, "CGPA_CREDIT_MIN must not exceed CGPA_CREDIT_MAX")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
