package config

// Config holds all configuration for the application.
type Config struct {
	Backend       string
	DBName        string
	MigrationsDir string
	Port          string
	Slack         SlackConfig
	Turso         TursoConfig
	Redis         RedisConfig
	ProjectID     string
}

// SlackConfig carries the bot and app tokens plus the channels the bot
// answers in.
type SlackConfig struct {
	BotToken       string
	AppToken       string
	AnswerChannels []string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type RedisConfig struct {
	Addr     string
	Password string
}

// Backend selector values.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)
