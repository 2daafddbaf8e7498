package app

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_NAME" envDefault:"commissioning"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// DSN renders the connection URL. User and password are escaped.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     p.Host + ":" + p.Port,
		Path:     "/" + p.Name,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}

type OtelEnv struct {
	Enabled     bool    `env:"OTEL_ENABLED"`
	ServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"commissioning"`
	Environment string  `env:"OTEL_ENVIRONMENT"`
	Endpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Headers     string  `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	Insecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE"`
	SampleRatio float64 `env:"OTEL_SAMPLER_RATIO" envDefault:"0.1"`
}

type Config struct {
	DatabaseDSN string `env:"DATABASE_DSN"`
	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"`
	Postgres    PostgresConfig

	Port string `env:"PORT" envDefault:"8080"`

	LogMode string `env:"LOG_MODE" envDefault:"development"`
	LogFile string `env:"LOG_FILE"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`

	ImportAtomic   bool  `env:"IMPORT_ATOMIC" envDefault:"false"`
	ImportMaxBytes int64 `env:"IMPORT_MAX_BYTES" envDefault:"10485760"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	MetricsEnabled  bool          `env:"METRICS_ENABLED"`
	MetricsInterval time.Duration `env:"METRICS_SCRAPE_INTERVAL" envDefault:"10s"`

	Otel OtelEnv
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.normalize()
}

func (c *Config) normalize() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER: unsupported driver %q", c.DBDriver)
	}
	c.Port = strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if c.Port == "" {
		return fmt.Errorf("PORT: empty")
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return nil
}

// DSN is DATABASE_DSN when set, otherwise the URL built from POSTGRES_*.
func (c Config) DSN() string {
	if dsn := strings.TrimSpace(c.DatabaseDSN); dsn != "" {
		return dsn
	}
	return c.Postgres.DSN()
}

func (c Config) Addr() string { return ":" + c.Port }
