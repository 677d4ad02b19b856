package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Telegram TelegramConfig
	SQLite   SQLiteConfig
	Routine  RoutineConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken        string
	WebhookURL      string
	WebhookSecret   string
	RateLimitPerMin int
}

type SQLiteConfig struct {
	Path string
}

// RoutineConfig tunes the conversation session store and date resolution.
type RoutineConfig struct {
	Timezone     string
	SessionLimit int
	SessionTTL   time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	cfg.Telegram.RateLimitPerMin = viper.GetInt("telegram.rate_limit_per_min")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if tgSecret := viper.GetString("telegram_webhook_secret"); tgSecret != "" {
		cfg.Telegram.WebhookSecret = tgSecret
	}

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	if dbPath := viper.GetString("sqlite_path"); dbPath != "" {
		cfg.SQLite.Path = dbPath
	}

	// Routine domain
	cfg.Routine.Timezone = viper.GetString("routine.timezone")
	cfg.Routine.SessionLimit = viper.GetInt("routine.session_limit")
	cfg.Routine.SessionTTL = viper.GetDuration("routine.session_ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("telegram.rate_limit_per_min", 30)
	viper.SetDefault("sqlite.path", "bot_mem.sqlite")
	viper.SetDefault("routine.timezone", "UTC")
	viper.SetDefault("routine.session_limit", 1024)
	viper.SetDefault("routine.session_ttl", 30*time.Minute)
}
