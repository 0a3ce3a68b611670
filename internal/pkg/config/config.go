package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, rate limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSL_MODE" default:"disable"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

// RateLimitConfig bounds how often a single client identity may invoke
// verification. Backend "memory" is a per-process sliding window; "redis"
// is a shared fixed window for multi-process deployments.
type RateLimitConfig struct {
	Backend     string        `envconfig:"RATE_LIMIT_BACKEND" default:"memory"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"30s"`
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"10"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type SMTPConfig struct {
	Host        string        `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port        int           `envconfig:"SMTP_PORT" default:"465"`
	User        string        `envconfig:"SMTP_USER" default:""`
	Password    string        `envconfig:"SMTP_PASSWORD" default:""`
	ContactAddr string        `envconfig:"CONTACT_EMAIL" default:""`
	Timeout     time.Duration `envconfig:"SMTP_TIMEOUT" default:"15s"`
}

type AdminConfig struct {
	// bcrypt hash of the operator password for the admin API.
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, int(c.ConnectTimeout.Seconds()),
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:           "localhost",
			Port:           "15433", // Test DB port
			User:           "test",
			Password:       "test",
			DBName:         "test_db",
			SSLMode:        "disable",
			ConnectTimeout: 5 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		RateLimit: RateLimitConfig{
			Backend:     "memory",
			Window:      30 * time.Second,
			MaxRequests: 10,
		},
		Admin: AdminConfig{
			// bcrypt("password")
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		},
	}
}
