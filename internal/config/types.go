package config

// GeminiConfig holds the Gemini API client settings.
type GeminiConfig struct {
	APIKey          string
	CandidateModels []string
	Temperature     float64
	MaxOutputTokens int
	TimeoutSeconds  int
}

// Configured reports whether an API key was present at startup.
func (g GeminiConfig) Configured() bool {
	return g.APIKey != ""
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// HTTPRateLimitConfig holds request throttling settings.
// A zero RequestsPerMinute disables throttling.
type HTTPRateLimitConfig struct {
	RequestsPerMinute int
	CacheSize         int
	CacheTTLSeconds   int
}

// Config is the full application configuration.
type Config struct {
	Gemini        GeminiConfig
	Logging       LoggingConfig
	HTTP          HTTPConfig
	HTTPRateLimit HTTPRateLimitConfig
}
