package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath   string
	LogDir     string
	PlansDir   string
	ReportsDir string

	// Simulation defaults, overridable per tool call.
	DefaultIterations  int
	DefaultUncertainty float64 // fraction, e.g. 0.2 for 20%
	SimulationSeed     int64   // 0 means use entropy

	EnableMermaidCharts bool
	EnableHTMLReports   bool
	OpenReports         bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	plansDir := getEnv("PLANS_FOLDER", filepath.Join(dataPath, "plans"))
	reportsDir := getEnv("REPORTS_FOLDER", filepath.Join(dataPath, "reports"))

	for _, dir := range []string{logDir, plansDir, reportsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Warn().Err(err).Str("path", dir).Msg("Failed to create data directory")
		}
	}

	seed, _ := strconv.ParseInt(getEnv("SIMULATION_SEED", "0"), 10, 64)

	cfg := &AppConfig{
		DataPath:            dataPath,
		LogDir:              logDir,
		PlansDir:            plansDir,
		ReportsDir:          reportsDir,
		DefaultIterations:   getEnvInt("DEFAULT_ITERATIONS", 1000),
		DefaultUncertainty:  getEnvFloat("DEFAULT_UNCERTAINTY", 0.2),
		SimulationSeed:      seed,
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
		EnableHTMLReports:   getEnvBool("ENABLE_HTML_REPORTS", false),
		OpenReports:         getEnvBool("OPEN_REPORTS", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}
