package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath is the config.json document to read and rewrite.
	ConfigPath string

	LogFormat string
	LogLevel  string
}
