package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/deanrtaylor1/gosource/stem"
)

type Config struct {
	ModelDir            string `yaml:"model_dir"`
	Stemmer             string `yaml:"stemmer"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	ServerPort          string `yaml:"server_port"`
	Color               bool   `yaml:"color"`
	TopWords            int    `yaml:"top_words"`
}

// DefaultPath is read by Load when no path is given and the file exists
const DefaultPath = "gosource.yaml"

func Default() *Config {
	return &Config{
		ModelDir:            "./models",
		Stemmer:             stem.HeuristicName,
		FetchTimeoutSeconds: 30,
		ServerPort:          "8080",
		Color:               true,
		TopWords:            10,
	}
}

// Load builds the configuration from defaults, the YAML file at configPath and
// finally the environment (a .env file in the working directory is loaded first).
// An empty configPath reads DefaultPath if it exists.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	config := Default()

	path := configPath
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && configPath == "":
	default:
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	config.ModelDir = getEnv("GOSOURCE_MODEL_DIR", config.ModelDir)
	config.Stemmer = getEnv("GOSOURCE_STEMMER", config.Stemmer)
	config.FetchTimeoutSeconds = getEnvInt("GOSOURCE_FETCH_TIMEOUT_SECONDS", config.FetchTimeoutSeconds)
	config.ServerPort = getEnv("GOSOURCE_SERVER_PORT", config.ServerPort)
	config.Color = getEnvBool("GOSOURCE_COLOR", config.Color)
	config.TopWords = getEnvInt("GOSOURCE_TOP_WORDS", config.TopWords)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ModelDir) == "" {
		return errors.New("model_dir must not be empty")
	}
	switch strings.ToLower(c.Stemmer) {
	case stem.HeuristicName, stem.SnowballName:
	default:
		return fmt.Errorf("unknown stemmer %q", c.Stemmer)
	}
	if c.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("fetch_timeout_seconds must be positive, got %d", c.FetchTimeoutSeconds)
	}
	if c.TopWords <= 0 {
		return fmt.Errorf("top_words must be positive, got %d", c.TopWords)
	}
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("server_port %q is not a number", c.ServerPort)
	}
	return nil
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
