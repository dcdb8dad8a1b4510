package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"bookie/database"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Odds provider configuration
	OddsAPIBaseURL string
	OddsAPIKey     string
	OddsSportKey   string

	// Settlement configuration
	PollSchedule string // six-field cron expression

	// NATS configuration
	NATSServers string

	// Discord notification configuration (optional)
	DiscordToken        string
	SettlementChannelID string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL from base URL and name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// NotificationsEnabled reports whether Discord settlement notices are configured
func (c *Config) NotificationsEnabled() bool {
	return c.DiscordToken != "" && c.SettlementChannelID != ""
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		OddsAPIBaseURL: getEnvWithDefault("ODDS_API_BASE_URL", "https://api.the-odds-api.com"),
		OddsAPIKey:     os.Getenv("ODDS_API_KEY"),
		OddsSportKey:   getEnvWithDefault("ODDS_SPORT_KEY", "americanfootball_nfl"),

		// Every 5 minutes
		PollSchedule: getEnvWithDefault("POLL_SCHEDULE", "0 */5 * * * *"),

		NATSServers: getEnvWithDefault("NATS_SERVERS", "nats://nats:4222"),

		DiscordToken:        os.Getenv("DISCORD_TOKEN"),
		SettlementChannelID: os.Getenv("SETTLEMENT_CHANNEL_ID"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.OddsAPIKey == "" {
			return nil, fmt.Errorf("ODDS_API_KEY is required")
		}
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:  "test",
		PollSchedule: "0 */5 * * * *",
		OddsSportKey: "americanfootball_nfl",
	}
}
