package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "FAIRSHARE_"
	configFileEnv = envPrefix + "CONFIG_FILE"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string
	LogLevel string

	OperatorWorkers   int
	OperatorQueueSize int

	RateLimitPerSecond float64
	RateLimitBurst     int
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]any{
	"postgres.address":     "localhost",
	"postgres.port":        "5433",
	"postgres.db":          "postgres",
	"postgres.username":    "postgres",
	"postgres.password":    "testpassword",
	"http.port":            "8080",
	"log.level":            "info",
	"operator.workers":     5,
	"operator.queue_size":  1000,
	"ratelimit.per_second": 20.0,
	"ratelimit.burst":      40,
}

// ProcessEnvironmentVariables builds the config from defaults, then the YAML
// file named by FAIRSHARE_CONFIG_FILE if set, then FAIRSHARE_* variables.
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Config{
		PostgresAddress:    k.String("postgres.address"),
		PostgresPort:       k.String("postgres.port"),
		PostgresDB:         k.String("postgres.db"),
		PostgresUsername:   k.String("postgres.username"),
		PostgresPassword:   k.String("postgres.password"),
		HTTPPort:           k.String("http.port"),
		LogLevel:           k.String("log.level"),
		OperatorWorkers:    k.Int("operator.workers"),
		OperatorQueueSize:  k.Int("operator.queue_size"),
		RateLimitPerSecond: k.Float64("ratelimit.per_second"),
		RateLimitBurst:     k.Int("ratelimit.burst"),
	}
	if cfg.OperatorWorkers <= 0 {
		return nil, fmt.Errorf("operator.workers must be positive, got %d", cfg.OperatorWorkers)
	}
	if cfg.OperatorQueueSize <= 0 {
		return nil, fmt.Errorf("operator.queue_size must be positive, got %d", cfg.OperatorQueueSize)
	}
	return &cfg, nil
}

// envKey maps FAIRSHARE_POSTGRES_ADDRESS to postgres.address. Only the first
// underscore separates the section, so FAIRSHARE_OPERATOR_QUEUE_SIZE becomes
// operator.queue_size.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// PostgresConnectionString returns the lib/pq URL for the configured database.
func (c *Config) PostgresConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
