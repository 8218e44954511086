package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/Aniket-hybrid/Predictor/models"
)

// Load hydrates the config: struct defaults first, then environment
// overrides. godotenv is loaded by the caller before this runs.
func Load() (*models.Config, error) {
	cfg := &models.Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BIRTH_DATE"); v != "" {
		cfg.BirthDate = v
	}
	if v := os.Getenv("BIRTH_TIME"); v != "" {
		cfg.BirthTime = v
	}
	if v := os.Getenv("SERIES_FILE"); v != "" {
		cfg.SeriesFile = v
	}
	if v := os.Getenv("WEIGHTS_FILE"); v != "" {
		cfg.WeightsFile = v
	}

	var err error
	if cfg.TZOffsetHours, err = floatEnv("TZ_OFFSET_HOURS", cfg.TZOffsetHours); err != nil {
		return nil, err
	}
	if cfg.Latitude, err = floatEnv("LATITUDE", cfg.Latitude); err != nil {
		return nil, err
	}
	if cfg.Longitude, err = floatEnv("LONGITUDE", cfg.Longitude); err != nil {
		return nil, err
	}
	if cfg.ForecastHorizon, err = intEnv("FORECAST_HORIZON", cfg.ForecastHorizon); err != nil {
		return nil, err
	}
	if cfg.ForecastBudgetMS, err = intEnv("FORECAST_BUDGET_MS", cfg.ForecastBudgetMS); err != nil {
		return nil, err
	}
	if cfg.WorkHours, err = floatEnv("WORK_HOURS", cfg.WorkHours); err != nil {
		return nil, err
	}
	if cfg.SleepHours, err = floatEnv("SLEEP_HOURS", cfg.SleepHours); err != nil {
		return nil, err
	}
	if cfg.ExerciseMinutes, err = floatEnv("EXERCISE_MINUTES", cfg.ExerciseMinutes); err != nil {
		return nil, err
	}
	if cfg.MoodScore, err = floatEnv("MOOD_SCORE", cfg.MoodScore); err != nil {
		return nil, err
	}
	if cfg.MeetingsCount, err = floatEnv("MEETINGS_COUNT", cfg.MeetingsCount); err != nil {
		return nil, err
	}
	if cfg.CaffeineCups, err = floatEnv("CAFFEINE_CUPS", cfg.CaffeineCups); err != nil {
		return nil, err
	}
	if cfg.MeditationMinutes, err = floatEnv("MEDITATION_MINUTES", cfg.MeditationMinutes); err != nil {
		return nil, err
	}

	return cfg, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return parsed, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return parsed, nil
}

// BirthInstant parses the configured birth date/time with the
// configured UTC offset.
func BirthInstant(cfg *models.Config) (time.Time, error) {
	offset := time.FixedZone("birth", int(cfg.TZOffsetHours*3600))
	t, err := time.ParseInLocation("2006-01-02 15:04", cfg.BirthDate+" "+cfg.BirthTime, offset)
	if err != nil {
		return time.Time{}, models.NewInvalidInput("birth_instant", err.Error())
	}
	return t, nil
}

// LoadWeights reads the optional YAML override for the hybrid
// combination weights. A missing path yields nil (defaults apply).
func LoadWeights(path string) (*models.HybridWeights, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading weights file: %w", err)
	}

	weights := &models.HybridWeights{}
	if err := defaults.Set(weights); err != nil {
		return nil, fmt.Errorf("applying weight defaults: %w", err)
	}
	if err := yaml.Unmarshal(raw, weights); err != nil {
		return nil, fmt.Errorf("parsing weights file: %w", err)
	}
	return weights, nil
}
