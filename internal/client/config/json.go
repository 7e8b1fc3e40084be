package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
	"github.com/dmitrijs2005/userconsole/internal/timex"
)

// JSONConfig is the file form of Config. Durations accept "30s" or integer
// nanoseconds. Absent keys leave the current value untouched.
type JSONConfig struct {
	APIBaseURL       *string         `json:"api_base_url"`
	AuthorizationKey *string         `json:"authorization_key"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	SessionDB        *string         `json:"session_db"`
	PersistSession   *bool           `json:"persist_session"`
	SearchDebounce   *timex.Duration `json:"search_debounce"`
	LogLevel         *string         `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c or -config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setIf(&cfg.AuthorizationKey, jc.AuthorizationKey)
	setIf(&cfg.SessionDB, jc.SessionDB)
	setIf(&cfg.PersistSession, jc.PersistSession)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SearchDebounce != nil {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
