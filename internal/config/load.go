package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load reads the environment-backed configuration once per process.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig loads and validates the configuration.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Gemini.CandidateModels) == 0 {
		return errors.New("gemini candidate model list is empty")
	}
	for _, model := range c.Gemini.CandidateModels {
		if strings.TrimSpace(model) == "" {
			return errors.New("gemini candidate model name is blank")
		}
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return errors.New("http port out of range")
	}
	return nil
}

// LogEnvStatus reports the effective environment to the logger.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	logger.Debug(
		"env_status",
		"env_file", fileExists(".env"),
		"api_key", maskSecret(cfg.Gemini.APIKey),
		"candidate_models", cfg.Gemini.CandidateModels,
		"temperature", cfg.Gemini.Temperature,
		"max_output_tokens", cfg.Gemini.MaxOutputTokens,
		"timeout", cfg.Gemini.TimeoutSeconds,
	)

	if !cfg.Gemini.Configured() {
		logger.Error("env_missing_gemini_api_key")
	}
}

func buildConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKey:          strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			CandidateModels: parseCandidateModels(),
			Temperature:     getEnvFloat("GEMINI_TEMPERATURE", 0.7),
			MaxOutputTokens: getEnvInt("GEMINI_MAX_TOKENS", 500),
			TimeoutSeconds:  getEnvInt("GEMINI_TIMEOUT", 60),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "0.0.0.0"),
			Port:         getEnvInt("HTTP_PORT", 5000),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", false),
		},
		HTTPRateLimit: HTTPRateLimitConfig{
			RequestsPerMinute: getEnvNonNegativeInt("HTTP_RATE_LIMIT_RPM", 0),
			CacheSize:         max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_SIZE", 10000)),
			CacheTTLSeconds:   max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_TTL_SECONDS", 120)),
		},
	}
}
