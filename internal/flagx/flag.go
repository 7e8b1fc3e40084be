// Package flagx helps several loaders share one command line: each loader
// picks only the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args made of allowed flags and their
// values. Both "-c conf.json" and "-c=conf.json" forms are recognised; a
// following token that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFile extracts the JSON config path given with -c or -config.
// It returns "" when neither is present.
func ConfigFile(args []string) string {
	return stringFlag(args, "config", "c")
}

// EnvFile extracts the dotenv path given with -e or -env.
// It returns "" when neither is present.
func EnvFile(args []string) string {
	return stringFlag(args, "env", "e")
}

func stringFlag(args []string, long, short string) string {
	var v string

	filtered := FilterArgs(args, []string{"-" + short, "-" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&v, long, "", "")
	fs.StringVar(&v, short, "", "")
	_ = fs.Parse(filtered)

	return v
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
