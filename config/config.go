package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	State    StateConfig
	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	AI       AIConfig
	S3       S3Config
	Admin    AdminConfig
	Pricing  PricingConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
	LogFormat   string
}

// StateConfig selects where the persisted admin blobs live.
type StateConfig struct {
	Backend    string // postgres, sqlite, redis
	SQLitePath string
	KeyPrefix  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
	DocumentFolder  string
}

type AdminConfig struct {
	DefaultPassphrase string
}

type PricingConfig struct {
	Markup string
}

const (
	StateBackendPostgres = "postgres"
	StateBackendSQLite   = "sqlite"
	StateBackendRedis    = "redis"
)

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogFormat:   getEnv("LOG_FORMAT", "console"),
		},
		State: StateConfig{
			Backend:    strings.ToLower(getEnv("STATE_BACKEND", StateBackendSQLite)),
			SQLitePath: getEnv("SQLITE_PATH", "pcbuild.db"),
			KeyPrefix:  getEnv("STATE_KEY_PREFIX", "pcbuild:"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "1234"),
			DBName:   getEnv("DB_NAME", "pcbuild"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		AI: AIConfig{
			APIKey:  getEnv("AI_API_KEY", ""),
			BaseURL: getEnv("AI_BASE_URL", "https://api.openai.com"),
			Model:   getEnv("AI_MODEL", "gpt-4o-mini-2024-07-18"),
			Timeout: parseDuration(getEnv("AI_TIMEOUT", "60s"), 60*time.Second),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "ap-northeast-2"),
			Bucket:          getEnv("AWS_S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			BaseURL:         getEnv("AWS_S3_BASE_URL", ""),
			DocumentFolder:  getEnv("AWS_S3_DOCUMENT_FOLDER", "documents"),
		},
		Admin: AdminConfig{
			DefaultPassphrase: getEnv("ADMIN_DEFAULT_PASSPHRASE", "admin"),
		},
		Pricing: PricingConfig{
			Markup: getEnv("PRICING_MARKUP", "1.15"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.State.Backend {
	case StateBackendPostgres, StateBackendSQLite, StateBackendRedis:
	default:
		return fmt.Errorf("unsupported STATE_BACKEND %q", c.State.Backend)
	}
	if c.Admin.DefaultPassphrase == "" {
		return fmt.Errorf("ADMIN_DEFAULT_PASSPHRASE must not be empty")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// S3Enabled reports whether document publishing has a bucket to write to.
func (c *S3Config) S3Enabled() bool {
	return c.Bucket != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
