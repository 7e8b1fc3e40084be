package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/flagx"
)

var ownFlags = []string{"-a", "-k", "-t", "-d", "-l", "-p"}

// parseFlags overlays cfg with command-line flags.
//
//	-a string  API base URL
//	-k string  authorization key
//	-t int     request timeout (seconds)
//	-d string  session database DSN
//	-l string  log level
//	-p         keep the session after exit
//
// Flags owned by other loaders (-c, -e) are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, ownFlags)

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.AuthorizationKey, "k", cfg.AuthorizationKey, "authorization key")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.PersistSession, "p", cfg.PersistSession, "keep the session after exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
