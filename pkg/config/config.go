package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Server configuration struct.
// CacheControl is sent on the public read endpoints.
type ServerConfiguration struct {
	Port           string
	AllowedOrigins []string
	CacheControl   string
}

// Database configuration struct.
type DatabaseConfiguration struct {
	DSN            string
	Database       string
	MigrationsPath string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Bucket configuration, used for the import drops and the run logs.
type BucketConfiguration struct {
	Region       string
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
	ImportBucket string
}

// Quiz configuration.
// The bot token is the secret used to verify the Telegram init data.
type QuizConfiguration struct {
	Key         string
	MaxAttempts int
	RewardURL   string
	BotToken    string
}

type LogConfiguration struct {
	Level string
}

// Config is the full application configuration.
type Config struct {
	Environment string
	Server      ServerConfiguration
	Database    DatabaseConfiguration
	Redis       RedisConfiguration
	Bucket      BucketConfiguration
	Quiz        QuizConfiguration
	Log         LogConfiguration
}

// Default CORS allowlist, same origins the frontends are deployed on.
var defaultAllowedOrigins = []string{
	"https://wildriftallstats.ru",
	"https://wildriftchampions-data.vercel.app",
	"http://localhost:3000",
	"https://web.telegram.org",
	"https://gektorquiz.vercel.app",
}

// Load the variables.
// The .env file is only read when not running on Docker.
func Load() (*Config, error) {
	environment := getEnv("ENVIRONMENT", "local")
	if environment != "docker" {
		// A missing .env is fine, the variables may come from the environment.
		_ = godotenv.Load()
	}

	maxAttempts, err := getEnvInt("QUIZ_MAX_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: environment,
		Server: ServerConfiguration{
			Port:           getEnv("SERVER_PORT", "8080"),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
			CacheControl:   getEnv("CACHE_CONTROL", "public, s-maxage=300, stale-while-revalidate=1800"),
		},
		Database: DatabaseConfiguration{
			DSN:            os.Getenv("DATABASE_URL"),
			Database:       getEnv("POSTGRES_DB", "wrstats"),
			MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		},
		Redis: RedisConfiguration{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfiguration{
			Region:       getEnv("BUCKET_REGION", "us-east-1"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			LogBucket:    os.Getenv("BUCKET_LOG_BUCKET"),
			ImportBucket: os.Getenv("BUCKET_IMPORT_BUCKET"),
		},
		Quiz: QuizConfiguration{
			Key:         getEnv("QUIZ_KEY", "lol_quiz"),
			MaxAttempts: maxAttempts,
			RewardURL:   os.Getenv("QUIZ_REWARD_URL"),
			BotToken:    os.Getenv("TG_BOT_TOKEN"),
		},
		Log: LogConfiguration{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that can't have a sane default.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("DATABASE_URL is required")
	}

	if c.Quiz.MaxAttempts < 1 {
		return fmt.Errorf("QUIZ_MAX_ATTEMPTS must be at least 1, got %d", c.Quiz.MaxAttempts)
	}

	return nil
}

// Address of the redis server.
func (r RedisConfiguration) Addr() string {
	return r.Host + ":" + r.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

// Comma separated list, empty entries are dropped.
func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	var list []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
