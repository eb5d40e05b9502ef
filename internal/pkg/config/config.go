package config

import (
	"fmt"
	"os"
	"time"

	"lounge-scheduler/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Broker    BrokerConfig
	Expiry    ExpiryConfig
	Report    ReportConfig
	Pricing   PricingConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BrokerConfig enables RabbitMQ delivery of notices when URL is set.
type BrokerConfig struct {
	URL      string `envconfig:"BROKER_URL"`
	Exchange string `envconfig:"BROKER_EXCHANGE" default:"lounge.events"`
}

type ExpiryConfig struct {
	Threshold time.Duration `envconfig:"EXPIRY_THRESHOLD" default:"72h"`
	Interval  time.Duration `envconfig:"EXPIRY_INTERVAL" default:"1m"`
	Disabled  bool          `envconfig:"EXPIRY_RUNNER_DISABLED" default:"false"`
}

type ReportConfig struct {
	CacheTTL time.Duration `envconfig:"REPORT_CACHE_TTL" default:"30s"`
}

type PricingConfig struct {
	File                   string `envconfig:"PRICING_FILE"`
	DefaultHourlyRateCents int64  `envconfig:"PRICING_DEFAULT_HOURLY_RATE_CENTS" default:"1200"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	return LoadConfigWithFile(".env")
}

// LoadConfigWithFile loads envFile into the environment if it exists, then
// processes the environment. Variables already set are not overwritten.
func LoadConfigWithFile(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, errs.Mark(errs.Wrap(err, "error loading .env file"), errs.ErrConfiguration)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errs.Mark(errs.Wrap(err, "failed to process env config"), errs.ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.DB.User == "" || c.DB.Password == "" || c.DB.DBName == "" {
			return errs.Mark(errs.New("DB_USER, DB_PASSWORD and DB_NAME are required for the postgres driver"), errs.ErrConfiguration)
		}
	default:
		return errs.Mark(errs.Newf("unknown STORAGE_DRIVER %q", c.Storage.Driver), errs.ErrConfiguration)
	}
	if c.Expiry.Threshold <= 0 {
		return errs.Mark(errs.New("EXPIRY_THRESHOLD must be positive"), errs.ErrConfiguration)
	}
	if c.Pricing.DefaultHourlyRateCents < 0 {
		return errs.Mark(errs.New("PRICING_DEFAULT_HOURLY_RATE_CENTS cannot be negative"), errs.ErrConfiguration)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Expiry: ExpiryConfig{
			Threshold: 72 * time.Hour,
			Interval:  time.Minute,
			Disabled:  true,
		},
		Report: ReportConfig{
			CacheTTL: 0,
		},
		Pricing: PricingConfig{
			DefaultHourlyRateCents: 1200,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
	}
}
