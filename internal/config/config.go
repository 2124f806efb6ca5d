package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	cfg := Config{
		Backend:       getEnvOr("BACKEND", BackendSQLite),
		DBName:        getEnvOr("DB_NAME", "pongbot.db"),
		MigrationsDir: "./migrations",
		Port:          getEnvOr("PORT", "8080"),
		Slack: SlackConfig{
			BotToken:       getEnv("SLACK_BOT_TOKEN"),
			AppToken:       getEnv("SLACK_APP_TOKEN"),
			AnswerChannels: splitChannels(os.Getenv("ANSWER_IN_CHANNELS")),
		},
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOr("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		ProjectID: os.Getenv("GCP_PROJECT"),
	}
	return cfg
}

// splitChannels parses a comma-separated channel list. An empty result means
// the bot answers in every channel it is invited to.
func splitChannels(raw string) []string {
	if raw == "" {
		return nil
	}
	var channels []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			channels = append(channels, c)
		}
	}
	return channels
}
