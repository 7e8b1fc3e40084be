package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// parseEnv loads the dotenv file (the one named by -e/-env, else ".env"
// when present) into the process environment and then overlays cfg with
// the CONSOLE_* variables. Variables already set in the environment win
// over the file.
func parseEnv(cfg *Config, args []string) error {
	file := flagx.EnvFile(args)
	if file != "" {
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load env file %s: %w", file, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("process env: %w", err)
	}
	return nil
}
