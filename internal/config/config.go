/*
Package config reads the service configuration from the environment once at
process start. The resulting *Config is passed by pointer into the server,
the plan generator and the CLI.
*/
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultModel              = "google/gemini-2.0-flash-exp:free"
	DefaultSiteURL            = "http://localhost:3000"
	DefaultSiteName           = "AI Fitness Coach"
	DefaultCompletionURL      = "https://openrouter.ai/api/v1/chat/completions"
	DefaultImageBaseURL       = "https://source.unsplash.com/featured/512x512/"
	DefaultPort               = 8080
	DefaultPlanRequestTimeout = 60 * time.Second
	DefaultPlanRateLimit      = 10
)

// Config holds every recognised option.
type Config struct {
	// OpenRouterAPIKey enables the completion service. Empty means the
	// generator only ever returns the baseline plan.
	OpenRouterAPIKey string

	// Model is the model identifier sent in every completion request.
	Model string

	// SiteURL and SiteName are forwarded as the HTTP-Referer and X-Title headers.
	SiteURL  string
	SiteName string

	// CompletionURL is the chat completions endpoint.
	CompletionURL string

	// ImageBaseURL is the featured-image search endpoint; the query is appended after "?".
	ImageBaseURL string

	// PlanRequestTimeout bounds the outbound completion call. Zero disables the deadline.
	PlanRequestTimeout time.Duration

	// PlanRateLimitPerMinute caps plan requests per client IP. Zero disables limiting.
	PlanRateLimitPerMinute int

	Port      int
	LogLevel  zerolog.Level
	LogPretty bool
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	// A missing .env is normal in containers.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded, using process environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	return &Config{
		OpenRouterAPIKey:       strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		Model:                  getEnv("OPENROUTER_MODEL", DefaultModel),
		SiteURL:                getEnv("OPENROUTER_SITE_URL", DefaultSiteURL),
		SiteName:               getEnv("OPENROUTER_SITE_NAME", DefaultSiteName),
		CompletionURL:          getEnv("OPENROUTER_API_URL", DefaultCompletionURL),
		ImageBaseURL:           getEnv("IMAGE_BASE_URL", DefaultImageBaseURL),
		PlanRequestTimeout:     getDuration("PLAN_REQUEST_TIMEOUT", DefaultPlanRequestTimeout),
		PlanRateLimitPerMinute: getInt("PLAN_RATE_LIMIT_PER_MINUTE", DefaultPlanRateLimit),
		Port:                   getInt("PORT", DefaultPort),
		LogLevel:               getLevel("LOG_LEVEL", zerolog.InfoLevel),
		LogPretty:              getBool("LOG_PRETTY", false),
	}
}

// HasCredential reports whether the completion service can be called.
func (c *Config) HasCredential() bool {
	return c.OpenRouterAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid integer in environment, using default")
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if raw == "0" {
		return 0
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration in environment, using default")
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getLevel(key string, fallback zerolog.Level) zerolog.Level {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid log level, using default")
		return fallback
	}
	return lvl
}
