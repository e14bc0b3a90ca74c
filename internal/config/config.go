package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BotToken            string
	OwnerTGID           int64
	LogLevel            string
	PollTimeoutSeconds  int
	DatabaseURL         string
	MaxWarnings         int
	MuteHours           int
	SimilarityThreshold float64
	HistoryLimit        int
}

func Load() (Config, error) {
	ownerTGID, err := getInt64([]string{"OWNER_TG_ID", "owner_tg_id"}, 0)
	if err != nil {
		return Config{}, err
	}

	pollTimeout, err := getInt([]string{"POLL_TIMEOUT_SECONDS"}, 30)
	if err != nil {
		return Config{}, err
	}

	maxWarnings, err := getInt([]string{"MAX_WARNINGS"}, 3)
	if err != nil {
		return Config{}, err
	}

	muteHours, err := getInt([]string{"MUTE_HOURS"}, 24)
	if err != nil {
		return Config{}, err
	}

	similarityThreshold, err := getFloat([]string{"SIMILARITY_THRESHOLD"}, 0.85)
	if err != nil {
		return Config{}, err
	}

	historyLimit, err := getInt([]string{"HISTORY_LIMIT"}, 100)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BotToken:            strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		OwnerTGID:           ownerTGID,
		LogLevel:            getString("LOG_LEVEL", "info"),
		PollTimeoutSeconds:  pollTimeout,
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		MaxWarnings:         maxWarnings,
		MuteHours:           muteHours,
		SimilarityThreshold: similarityThreshold,
		HistoryLimit:        historyLimit,
	}

	if cfg.PollTimeoutSeconds <= 0 {
		cfg.PollTimeoutSeconds = 30
	}
	if cfg.MaxWarnings <= 0 {
		cfg.MaxWarnings = 3
	}
	if cfg.MuteHours <= 0 {
		cfg.MuteHours = 24
	}
	if cfg.SimilarityThreshold <= 0 || cfg.SimilarityThreshold > 1 {
		cfg.SimilarityThreshold = 0.85
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 100
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getInt64(keys []string, fallback int64) (int64, error) {
	raw, key := getFirstDefined(keys)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getInt(keys []string, fallback int) (int, error) {
	raw, key := getFirstDefined(keys)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getFloat(keys []string, fallback float64) (float64, error) {
	raw, key := getFirstDefined(keys)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getFirstDefined(keys []string) (string, string) {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value, key
		}
	}
	if len(keys) == 0 {
		return "", ""
	}
	return "", keys[0]
}
