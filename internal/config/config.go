package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	RawCSVPath      string
	EnrichedCSVPath string
	OutputDir       string
	DBPath          string

	RemovedPreviewLimit int
	MaxErrorsShown      int
	MaxWarningsShown    int
	MinIngredients      int
	MaxIngredients      int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		RawCSVPath:      getEnv("RAW_CSV_PATH", filepath.Join(cwd, "data", "cocktails_rows.csv")),
		EnrichedCSVPath: getEnv("ENRICHED_CSV_PATH", filepath.Join(cwd, "data", "cocktails_enriched.csv")),
		OutputDir:       getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		DBPath:          getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),

		RemovedPreviewLimit: getEnvInt("REMOVED_PREVIEW_LIMIT", 20),
		MaxErrorsShown:      getEnvInt("MAX_ERRORS_SHOWN", 30),
		MaxWarningsShown:    getEnvInt("MAX_WARNINGS_SHOWN", 20),
		MinIngredients:      getEnvInt("MIN_INGREDIENTS", 2),
		MaxIngredients:      getEnvInt("MAX_INGREDIENTS", 15),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
