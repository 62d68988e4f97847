package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
	EnvProvision   = "provision"
)

// Logger levels accepted by LOGGER_LEVEL.
const (
	LevelLog     = "log"
	LevelError   = "error"
	LevelWarn    = "warn"
	LevelDebug   = "debug"
	LevelVerbose = "verbose"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name string `validate:"required"`
	Env  string `validate:"required,oneof=development production test provision"`
}

type ServerConfig struct {
	Host string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`
}

type DatabaseConfig struct {
	Host          string `validate:"required"`
	Port          int    `validate:"min=1,max=65535"`
	Name          string `validate:"required"`
	User          string `validate:"required"`
	Password      string `validate:"required"`
	SSLMode       string `validate:"required"`
	MaxOpenConns  int    `validate:"min=0"`
	MaxIdleConns  int    `validate:"min=0"`
	RetryAttempts int    `validate:"min=0"`
	RetryDelay    time.Duration
}

type LoggerConfig struct {
	Level  string `validate:"required,oneof=log error warn debug verbose"`
	Format string `validate:"required,oneof=json console"`
}

// RedisConfig configures the optional exercise cache.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// IsProduction reports whether the process runs with NODE_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Load reads the environment (and an optional .env file), validates it against
// Schema and returns the typed configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	Schema.SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return FromViper(v)
}

// FromViper validates the values resolved by v and builds the configuration
// from the parsed schema values.
func FromViper(v *viper.Viper) (*Config, error) {
	vals, err := Schema.Parse(v)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	cfg.App = AppConfig{
		Name: vals.String("APP_NAME"),
		Env:  vals.String("NODE_ENV"),
	}

	cfg.Server = ServerConfig{
		Host: vals.String("SERVER_HOST"),
		Port: vals.Int("SERVER_PORT"),
	}

	cfg.Database = DatabaseConfig{
		Host:          vals.String("DATABASE_HOST"),
		Port:          vals.Int("DATABASE_PORT"),
		Name:          vals.String("DATABASE_NAME"),
		User:          vals.String("DATABASE_USER"),
		Password:      vals.String("DATABASE_PASSWORD"),
		SSLMode:       vals.String("DATABASE_SSL_MODE"),
		MaxOpenConns:  vals.Int("DATABASE_MAX_OPEN_CONNS"),
		MaxIdleConns:  vals.Int("DATABASE_MAX_IDLE_CONNS"),
		RetryAttempts: vals.Int("DATABASE_RETRY_ATTEMPTS"),
		RetryDelay:    vals.Duration("DATABASE_RETRY_DELAY"),
	}

	cfg.Logger = LoggerConfig{
		Level:  vals.String("LOGGER_LEVEL"),
		Format: vals.String("LOGGER_FORMAT"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  vals.Bool("REDIS_ENABLED"),
		Host:     vals.String("REDIS_HOST"),
		Port:     vals.Int("REDIS_PORT"),
		Password: vals.String("REDIS_PASSWORD"),
		DB:       vals.Int("REDIS_DB"),
		TTL:      vals.Duration("CACHE_TTL"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(vals.String("ALLOWED_ORIGINS"))}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
