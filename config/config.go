package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingJWTSecret   = errors.New("missing JWT_SECRET environment variable")
	ErrMissingDatabaseURL = errors.New("missing DATABASE_URL environment variable")
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port         string `mapstructure:"port"`
		MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
	} `mapstructure:"server"`
	CORS struct {
		Origin string `mapstructure:"origin"`
	} `mapstructure:"cors"`
	JWT struct {
		SecretKey string        `mapstructure:"secret_key"`
		TTL       time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`
	Redis struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"redis"`
	RabbitMQ struct {
		URL      string `mapstructure:"url"`
		Exchange string `mapstructure:"exchange"`
	} `mapstructure:"rabbitmq"`
	Demo struct {
		AccountNumber string `mapstructure:"account_number"`
	} `mapstructure:"demo"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// AllowedOrigins splits the CORS origin setting into a list. "*" allows every origin.
func (c Config) AllowedOrigins() []string {
	raw := strings.TrimSpace(c.CORS.Origin)
	if raw == "" || raw == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

var AppConfig Config

// LoadConfig reads an optional config.yml from path and overlays environment variables.
// JWT_SECRET and DATABASE_URL are required.
func LoadConfig(path string) error {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("server.port", "3000")
	viper.SetDefault("server.max_body_bytes", int64(50<<20))
	viper.SetDefault("cors.origin", "*")
	viper.SetDefault("jwt.ttl", 24*time.Hour)
	viper.SetDefault("rabbitmq.exchange", "bank_events")
	viper.SetDefault("demo.account_number", "DEMO0001")
	viper.SetDefault("log.level", "info")

	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("server.max_body_bytes", "MAX_BODY_BYTES")
	_ = viper.BindEnv("cors.origin", "CORS_ORIGIN")
	_ = viper.BindEnv("jwt.secret_key", "JWT_SECRET")
	_ = viper.BindEnv("jwt.ttl", "TOKEN_TTL")
	_ = viper.BindEnv("redis.url", "REDIS_URL")
	_ = viper.BindEnv("rabbitmq.url", "RABBITMQ_URL")
	_ = viper.BindEnv("rabbitmq.exchange", "EVENTS_EXCHANGE")
	_ = viper.BindEnv("demo.account_number", "DEMO_ACCOUNT_NUMBER")
	_ = viper.BindEnv("log.level", "LOG_LEVEL")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.JWT.SecretKey) == "" {
		return ErrMissingJWTSecret
	}
	if strings.TrimSpace(cfg.Database.URL) == "" {
		return ErrMissingDatabaseURL
	}

	AppConfig = cfg
	return nil
}
