package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultAPIBaseURL = "http://localhost:5000"
	defaultTimeout    = 15 * time.Second
)

type Config struct {
	DataDir    string
	DBPath     string
	LogPath    string
	APIBaseURL string
	Timeout    time.Duration
}

// fileConfig is the on-disk shape under <data-dir>/config.yaml.
type fileConfig struct {
	APIBaseURL     string `yaml:"api_base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// New resolves the effective configuration. Precedence, lowest to
// highest: built-in defaults, config.yaml, environment (including a
// .env file in the working directory), then the dataDir argument for
// the data directory itself.
func New(dataDir string) (Config, error) {
	_ = godotenv.Load()

	if dataDir == "" {
		dataDir = os.Getenv("SKILLBRIDGE_DATA_DIR")
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".skillbridge")
	}

	cfg := Config{
		DataDir:    dataDir,
		DBPath:     filepath.Join(dataDir, "skillbridge.db"),
		LogPath:    filepath.Join(dataDir, "logs", "skillbridge.log"),
		APIBaseURL: defaultAPIBaseURL,
		Timeout:    defaultTimeout,
	}

	if err := cfg.loadFile(filepath.Join(dataDir, "config.yaml")); err != nil {
		return Config{}, err
	}
	if url := os.Getenv("SKILLBRIDGE_API_URL"); url != "" {
		cfg.APIBaseURL = url
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if fc.APIBaseURL != "" {
		c.APIBaseURL = fc.APIBaseURL
	}
	if fc.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	return nil
}
