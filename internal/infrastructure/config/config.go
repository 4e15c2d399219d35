package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "anishop/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Auth       sharedConfig.AuthConfig       `mapstructure:"auth"`
	API        sharedConfig.APIConfig        `mapstructure:"api"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Email      sharedConfig.EmailConfig      `mapstructure:"email"`
	Telegram   sharedConfig.TelegramConfig   `mapstructure:"telegram"`
	BotWebhook sharedConfig.BotWebhookConfig `mapstructure:"bot_webhook"`
	Business   sharedConfig.BusinessConfig   `mapstructure:"business"`
	RateLimit  sharedConfig.RateLimitConfig  `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("ANISHOP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "anishop_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.password.bcrypt_cost", 12)
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 60)

	// API key for the bot surface (must be configured in production)
	viper.SetDefault("api.key", "")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Email fallback defaults (site settings override at send time)
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@anishop.local")
	viper.SetDefault("email.from_name", "AniShop")

	// Telegram bot defaults
	viper.SetDefault("telegram.bot_token", "")
	viper.SetDefault("telegram.api_base_url", "http://localhost:8080")
	viper.SetDefault("telegram.webhook_port", 8081)

	// Where the server pushes order updates for subscribed chats
	viper.SetDefault("bot_webhook.url", "")

	// Business timezone for daily-limit day boundaries
	viper.SetDefault("business.timezone", "Asia/Ho_Chi_Minh")

	// Public API per-IP limits (0 disables a window)
	viper.SetDefault("rate_limit.requests_per_minute", 30)
	viper.SetDefault("rate_limit.requests_per_hour", 300)
	viper.SetDefault("rate_limit.requests_per_day", 1000)
}
