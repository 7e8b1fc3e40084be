package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the console.
type Config struct {
	// APIBaseURL prefixes every API path, e.g. "https://reqres.in/api".
	APIBaseURL string `envconfig:"API_BASE_URL"`
	// AuthorizationKey is sent as "Authorization: Bearer <key>" on every call.
	AuthorizationKey string `envconfig:"AUTHORIZATION_KEY"`
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT"`

	// SessionDB is the SQLite DSN of the session table.
	SessionDB string `envconfig:"SESSION_DB"`
	// PersistSession keeps the session table when the console exits.
	PersistSession bool `envconfig:"PERSIST_SESSION"`

	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE"`
	LogLevel       string        `envconfig:"LOG_LEVEL"`
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CONSOLE"

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.AuthorizationKey = "reqres-free-v1"
	c.RequestTimeout = 30 * time.Second
	c.SessionDB = "session.db"
	c.PersistSession = false
	c.SearchDebounce = 300 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig builds a Config from args (without the program name). Later
// sources override earlier ones: defaults, JSON file, dotenv file and
// environment, flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("config: api base url is empty")
	}
	return cfg, nil
}
