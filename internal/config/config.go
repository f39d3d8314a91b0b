package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	LLM    LLMConfig
	Auth   AuthConfig
	Logger LoggerConfig
	Cache  CacheConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

// DBConfig selects the SQL driver. For sqlite3 the DSN is a file path.
type DBConfig struct {
	Driver      string
	DSN         string
	AutoMigrate bool
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LLMConfig struct {
	Provider        string
	Model           string
	APIKey          string
	BaseURL         string
	OllamaServerURL string
	Timeout         time.Duration
	Temperature     float64
	MaxInputTokens  int
}

type AuthConfig struct {
	Password   string
	JWTSecret  string
	SessionTTL time.Duration
	CookieName string
}

type LoggerConfig struct {
	Env   string
	Level string
}

type CacheConfig struct {
	DraftTTL time.Duration
}

const (
	DriverSQLite = "sqlite3"
	DriverOracle = "oracle"

	ProviderOpenAI    = "openai"
	ProviderOpenAISDK = "openai-sdk"
	ProviderOllama    = "ollama"
	ProviderMock      = "mock"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.body_limit", 10*1024*1024)

	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.dsn", "medmcq.db")
	v.SetDefault("db.auto_migrate", true)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.model", "o4-mini")
	v.SetDefault("llm.ollama_server_url", "http://localhost:11434")
	v.SetDefault("llm.timeout", "120s")
	v.SetDefault("llm.temperature", 1.0)
	v.SetDefault("llm.max_input_tokens", 0)

	v.SetDefault("auth.session_ttl", "12h")
	v.SetDefault("auth.cookie_name", "medmcq_session")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("cache.ttl.draft", "24h")
}

// LoadConfig reads config.yaml (if present) and environment overrides.
// Environment keys are upper-cased with "." replaced by "_", e.g. AUTH_PASSWORD.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		DB: DBConfig{
			Driver:      v.GetString("db.driver"),
			DSN:         v.GetString("db.dsn"),
			AutoMigrate: v.GetBool("db.auto_migrate"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			Provider:        v.GetString("llm.provider"),
			Model:           v.GetString("llm.model"),
			APIKey:          v.GetString("llm.api_key"),
			BaseURL:         v.GetString("llm.base_url"),
			OllamaServerURL: v.GetString("llm.ollama_server_url"),
			Timeout:         v.GetDuration("llm.timeout"),
			Temperature:     v.GetFloat64("llm.temperature"),
			MaxInputTokens:  v.GetInt("llm.max_input_tokens"),
		},
		Auth: AuthConfig{
			Password:   v.GetString("auth.password"),
			JWTSecret:  v.GetString("auth.jwt_secret"),
			SessionTTL: v.GetDuration("auth.session_ttl"),
			CookieName: v.GetString("auth.cookie_name"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Cache: CacheConfig{
			DraftTTL: v.GetDuration("cache.ttl.draft"),
		},
	}
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Auth.Password == "" {
		return fmt.Errorf("auth.password must be set")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must be set")
	}
	switch c.DB.Driver {
	case DriverSQLite, DriverOracle:
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("db.dsn must be set")
	}
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderOpenAISDK:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key must be set for provider %q", c.LLM.Provider)
		}
	case ProviderOllama, ProviderMock:
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model must be set")
	}
	return nil
}
