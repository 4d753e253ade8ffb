package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Loyalty   LoyaltyConfig
	Mail      MailConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`

	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"15"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	AcquireTimeout  time.Duration `envconfig:"DB_ACQUIRE_TIMEOUT" default:"5s"`
	LockTimeout     time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// LoyaltyConfig holds the calendar the ledger dates purchases and prizes in.
type LoyaltyConfig struct {
	TimeZone string `envconfig:"LOYALTY_TIMEZONE" default:"America/Sao_Paulo"`
}

type MailConfig struct {
	Host      string  `envconfig:"SMTP_HOST"`
	Port      string  `envconfig:"SMTP_PORT" default:"587"`
	Username  string  `envconfig:"SMTP_USERNAME"`
	Password  string  `envconfig:"SMTP_PASSWORD"`
	From      string  `envconfig:"MAIL_FROM" default:"no-reply@localhost"`
	BrandName string  `envconfig:"MAIL_BRAND_NAME" default:"Loyalty Club"`
	Workers   int     `envconfig:"MAIL_WORKERS" default:"2"`
	QueueSize int     `envconfig:"MAIL_QUEUE_SIZE" default:"256"`
	RatePerS  float64 `envconfig:"MAIL_RATE_PER_SECOND" default:"5"`
}

type SchedulerConfig struct {
	Enabled        bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	BirthdayAt     string `envconfig:"SCHEDULER_BIRTHDAY_AT" default:"08:00"`
	InactivityAt   string `envconfig:"SCHEDULER_INACTIVITY_AT" default:"11:00"`
	InactivityDays int    `envconfig:"SCHEDULER_INACTIVITY_DAYS" default:"45"`
	RedisAddr      string `envconfig:"SCHEDULER_REDIS_ADDR"`
	RedisPassword  string `envconfig:"SCHEDULER_REDIS_PASSWORD"`
	RedisDB        int    `envconfig:"SCHEDULER_REDIS_DB" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *LoyaltyConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid LOYALTY_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *MailConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

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
			Host:            "localhost",
			Port:            "15433", // Test DB port
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "America/Sao_Paulo",
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			AcquireTimeout:  5 * time.Second,
			LockTimeout:     5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-loyalty-ledger",
			Duration: 12 * time.Hour,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Loyalty: LoyaltyConfig{
			TimeZone: "America/Sao_Paulo",
		},
		Mail: MailConfig{
			From:      "no-reply@test.local",
			BrandName: "Test Club",
			Workers:   1,
			QueueSize: 16,
			RatePerS:  100,
		},
		Scheduler: SchedulerConfig{
			Enabled:        false,
			BirthdayAt:     "08:00",
			InactivityAt:   "11:00",
			InactivityDays: 45,
		},
	}
}
