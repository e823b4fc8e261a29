package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the dice applications
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Dice    DiceConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DiceConfig holds dice behavior configuration
type DiceConfig struct {
	// Seed for the roller; zero seeds from the clock
	Seed int64

	// SpinDuration is how long dice spin before settling
	SpinDuration time.Duration

	// CanZero shifts every die's legal range to include 0
	CanZero bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Dice: DiceConfig{
			Seed:         int64(getEnvAsIntOrDefault("TINYDICES_SEED", 0)),
			SpinDuration: getEnvAsDurationOrDefault("TINYDICES_SPIN_DURATION", 2*time.Second),
			CanZero:      os.Getenv("TINYDICES_CAN_ZERO") == "true",
		},
	}

	if cfg.Dice.SpinDuration < 0 {
		return nil, fmt.Errorf("TINYDICES_SPIN_DURATION must not be negative")
	}

	return cfg, nil
}

// LoadDiscord loads configuration and requires the Discord fields
func LoadDiscord() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
