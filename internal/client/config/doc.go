// Package config loads runtime configuration for the console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. A dotenv file (-e/-env, else ./.env when present) and CONSOLE_*
//     environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL
//	-k string   authorization key
//	-t int      request timeout (seconds)
//	-d string   session database DSN
//	-l string   log level (debug, info, warn, error)
//	-p          keep the session after exit
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "https://reqres.in/api",
//	  "authorization_key": "reqres-free-v1",
//	  "request_timeout": "30s",
//	  "session_db": "session.db",
//	  "persist_session": false,
//	  "search_debounce": "300ms",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	CONSOLE_API_BASE_URL, CONSOLE_AUTHORIZATION_KEY, CONSOLE_REQUEST_TIMEOUT,
//	CONSOLE_SESSION_DB, CONSOLE_PERSIST_SESSION, CONSOLE_SEARCH_DEBOUNCE,
//	CONSOLE_LOG_LEVEL
package config
