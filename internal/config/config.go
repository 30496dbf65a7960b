package config // package config loads application configuration from environment variables

import "os"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a default so the server can be
// started with no environment at all, which matches how the service is
// deployed: a single binary next to its data file.
type Config struct {
	Env      string // application environment (e.g. "dev", "prod")
	Port     string // HTTP port to listen on
	DataFile string // path of the JSON file holding all reservations
}

// Load reads configuration values from environment variables and returns a
// Config.  Missing variables fall back to defaults rather than aborting:
// the service has no required secrets or connection strings.
func Load() Config {
	return Config{
		Env:      getenv("APP_ENV", "dev"),               // environment (dev/test/prod)
		Port:     getenv("APP_PORT", "3000"),             // port to bind the HTTP server
		DataFile: getenv("DATA_FILE", "reservations.json"), // reservation store location
	}
}

// getenv retrieves an environment variable, returning def when the variable
// is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
