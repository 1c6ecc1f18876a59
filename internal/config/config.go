package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // API key for authentication

	// Rules
	RulesPath        string
	EscalationCap    float64
	DefaultMaxStack  int
	ProgramCacheSize int

	// RNGSeed fixes every generation to one deterministic sequence when non-zero.
	RNGSeed int64

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		APIKey:      getEnv("API_KEY", ""),

		RulesPath:        getEnv("RULES_PATH", ConfigPathRules),
		DefaultMaxStack:  getEnvAsInt("DEFAULT_MAX_STACK", DefaultMaxStack),
		ProgramCacheSize: getEnvAsInt("CEL_PROGRAM_CACHE", DefaultProgramCache),

		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", DefaultReadTimeoutSec*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", DefaultWriteTimeoutSec*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownSec*time.Second),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seed, err := strconv.ParseInt(getEnv("RNG_SEED", strconv.Itoa(DefaultRNGSeed)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RNG_SEED value: %w", err)
	}
	cfg.RNGSeed = seed

	escalationCap, err := strconv.ParseFloat(getEnv("ESCALATION_CAP", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ESCALATION_CAP value: %w", err)
	}
	if escalationCap != 0 && escalationCap < 1 {
		return nil, fmt.Errorf("ESCALATION_CAP must be >= 1.0, got %v", escalationCap)
	}
	cfg.EscalationCap = escalationCap

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// IsDeterministic returns true if a fixed RNG seed is configured
func (c *Config) IsDeterministic() bool {
	return c.RNGSeed != 0
}
