package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Schedule modes selectable through SYNC_SCHEDULE_MODE.
const (
	ScheduleModeDaily    = "daily"
	ScheduleModeInterval = "interval"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Feed settings
	FeedBaseURL string
	FeedTimeout time.Duration

	// Sync schedule: either a fixed time of day or a repeating interval.
	SyncScheduleMode string
	SyncHour         int
	SyncMinute       int
	SyncInterval     time.Duration

	// Public API rate limit in ulule/limiter formatted notation, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("FEED_BASE_URL", "https://www.cbr.ru/scripts/XML_daily.asp")
	viper.SetDefault("FEED_TIMEOUT", "30s")
	viper.SetDefault("SYNC_SCHEDULE_MODE", ScheduleModeDaily)
	viper.SetDefault("SYNC_TIME_OF_DAY", "12:00")
	viper.SetDefault("SYNC_INTERVAL", "24h")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.FeedBaseURL = viper.GetString("FEED_BASE_URL")

	feedTimeoutStr := viper.GetString("FEED_TIMEOUT")
	feedTimeout, err := time.ParseDuration(feedTimeoutStr)
	if err != nil {
		feedTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for FEED_TIMEOUT ('%s'). Defaulting to %s.\n", feedTimeoutStr, feedTimeout)
	}
	cfg.FeedTimeout = feedTimeout

	cfg.SyncScheduleMode = viper.GetString("SYNC_SCHEDULE_MODE")
	if cfg.SyncScheduleMode != ScheduleModeDaily && cfg.SyncScheduleMode != ScheduleModeInterval {
		return nil, fmt.Errorf("invalid SYNC_SCHEDULE_MODE %q: must be %q or %q",
			cfg.SyncScheduleMode, ScheduleModeDaily, ScheduleModeInterval)
	}

	timeOfDayStr := viper.GetString("SYNC_TIME_OF_DAY")
	timeOfDay, err := time.Parse("15:04", timeOfDayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_TIME_OF_DAY %q: expected HH:MM: %w", timeOfDayStr, err)
	}
	cfg.SyncHour = timeOfDay.Hour()
	cfg.SyncMinute = timeOfDay.Minute()

	syncIntervalStr := viper.GetString("SYNC_INTERVAL")
	syncInterval, err := time.ParseDuration(syncIntervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_INTERVAL %q: %w", syncIntervalStr, err)
	}
	if syncInterval <= 0 {
		// A zero interval would make the scheduler fire back-to-back cycles.
		return nil, fmt.Errorf("invalid SYNC_INTERVAL %q: must be positive", syncIntervalStr)
	}
	cfg.SyncInterval = syncInterval

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
