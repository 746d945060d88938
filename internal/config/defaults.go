package config

// Default values for settings not present in the environment.
const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 8888
	DefaultLogLevel       = "info"
	DefaultBaseURL        = "https://api.devrev.ai"
	DefaultTimeoutSeconds = 30
	DefaultRetries        = 3
)
