package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds the server settings read from the environment
type Config struct {
	Environment     string        `env:"ENVIRONMENT,default=dev"`
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,default=3001"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS,separator=|"`

	// database settings
	DatabaseURL       string        `env:"DATABASE_URL"`
	PostgresUser      string        `env:"POSTGRES_USER,default=postgres"`
	PostgresPassword  string        `env:"POSTGRES_PASSWORD,default=postgres"`
	PostgresHost      string        `env:"POSTGRES_HOST,default=localhost"`
	PostgresPort      int           `env:"POSTGRES_PORT,default=5432"`
	PostgresDB        string        `env:"POSTGRES_DB,default=photodb"`
	DBMaxConnections  int32         `env:"DB_MAX_CONNECTIONS,default=10"`
	DBMinConnections  int32         `env:"DB_MIN_CONNECTIONS,default=2"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME,default=60m"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME,default=30m"`
	AutoMigrate       bool          `env:"AUTO_MIGRATE,default=true"`

	// auth settings
	JWTSecret  string        `env:"JWT_SECRET,required=true"`
	JWTTTL     time.Duration `env:"JWT_TTL,default=24h"`
	BcryptCost int           `env:"BCRYPT_COST,default=10"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

// Load reads an optional .env file and then binds the process environment into a Config.
func Load() (*Config, error) {
	// .env is optional (e.g. in production)
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConnString returns DATABASE_URL or, when it is unset, a URL built from the POSTGRES_* variables.
func (c *Config) ConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", c.Environment)
	}
	if c.DBMaxConnections < 1 {
		return fmt.Errorf("DB_MAX_CONNECTIONS must be at least 1")
	}
	if c.DBMinConnections < 0 {
		return fmt.Errorf("DB_MIN_CONNECTIONS must be 0 or greater")
	}
	if c.DBMinConnections > c.DBMaxConnections {
		return fmt.Errorf("DB_MIN_CONNECTIONS (%d) cannot be greater than DB_MAX_CONNECTIONS (%d)",
			c.DBMinConnections, c.DBMaxConnections)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
