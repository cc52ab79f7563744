package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Store selects where accounts live: "memory" or "mongo".
	Store string `env:"STORE, default=memory"`

	// AdviceProvider selects the advice backend: "mock" or "gemini".
	AdviceProvider string `env:"ADVICE_PROVIDER, default=mock"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Gemini GeminiConfig
	SMTP   SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=career_advisor"`
}

type RedisConfig struct {
	// Addr left empty disables Redis. Contact deduplication then degrades
	// to relaying every message.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL, default=gemini-2.5-flash"`
}

type SMTPConfig struct {
	Host      string `env:"SMTP_HOST"`
	Port      int    `env:"SMTP_PORT, default=587"`
	Username  string `env:"SMTP_USER"`
	Password  string `env:"SMTP_PASS"`
	Recipient string `env:"CONTACT_RECIPIENT"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate rejects combinations that cannot produce a working server.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	switch c.Store {
	case "memory", "mongo":
	default:
		return fmt.Errorf("config: unknown STORE %q (want memory or mongo)", c.Store)
	}
	switch c.AdviceProvider {
	case "mock":
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("config: GEMINI_API_KEY is required when ADVICE_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("config: unknown ADVICE_PROVIDER %q (want mock or gemini)", c.AdviceProvider)
	}
	return nil
}
