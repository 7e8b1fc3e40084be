package mockapi

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings of the development API server.
//
//   - Addr: listen address.
//   - APIKey: bearer key required on /users; empty disables the check.
//   - SecretKey: HMAC secret for session tokens (HS256).
//   - TokenTTL: lifetime of an issued session token.
//   - PerPage: page size of GET /users.
//   - Password: password shared by all seeded users.
type Config struct {
	Addr            string        `envconfig:"ADDR"`
	APIKey          string        `envconfig:"API_KEY"`
	SecretKey       string        `envconfig:"SECRET_KEY"`
	TokenTTL        time.Duration `envconfig:"TOKEN_TTL"`
	PerPage         int           `envconfig:"PER_PAGE"`
	Password        string        `envconfig:"PASSWORD"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `envconfig:"LOG_LEVEL"`
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MOCKAPI"

// LoadDefaults populates c with development defaults. They are not meant
// for anything but local use.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.APIKey = "reqres-free-v1"
	c.SecretKey = "secretKey"
	c.TokenTTL = time.Hour
	c.PerPage = 6
	c.Password = "cityslicka"
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig applies the defaults and then MOCKAPI_* environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.PerPage <= 0 {
		return nil, fmt.Errorf("per page must be positive, got %d", cfg.PerPage)
	}
	return cfg, nil
}
