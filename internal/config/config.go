package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	dirName  = ".video-transcriber"
	fileName = "config.yaml"

	DefaultServerURL = "http://localhost:8000"
	DefaultTimeout   = 60 * time.Minute
)

// Environment variables read by Load
const (
	EnvServerURL   = "TRANSCRIBER_SERVER_URL"
	EnvTimeout     = "TRANSCRIBER_TIMEOUT"
	EnvDownloadDir = "TRANSCRIBER_DOWNLOAD_DIR"
	EnvLogFile     = "TRANSCRIBER_LOG_FILE"
)

// Config represents the user's configuration
type Config struct {
	ServerURL   string        `yaml:"server_url" validate:"required,url"`
	Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`
	DownloadDir string        `yaml:"download_dir" validate:"required"`
	LogFile     string        `yaml:"log_file,omitempty"`

	// Source is the config file that was read, empty when only defaults apply
	Source string `yaml:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   DefaultServerURL,
		Timeout:     DefaultTimeout,
		DownloadDir: defaultDownloadDir(),
		LogFile:     defaultLogFile(),
	}
}

// defaultDownloadDir is ~/Downloads when it exists, else the working directory
func defaultDownloadDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, "Downloads")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "."
}

func defaultLogFile() string {
	dir, err := globalConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "video-transcriber.log")
	}
	return filepath.Join(dir, "transcriber.log")
}

// globalConfigDir returns the global config directory path (~/.video-transcriber)
func globalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName), nil
}

// GlobalConfigPath returns the global config file path (~/.video-transcriber/config.yaml)
func GlobalConfigPath() (string, error) {
	dir, err := globalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// ProjectConfigPath returns the project-level config path (.video-transcriber/config.yaml in cwd)
func ProjectConfigPath() string {
	return filepath.Join(dirName, fileName)
}

// Load builds the configuration from defaults, a config file, a .env file and
// the environment, in increasing order of precedence. An explicit path must
// exist; otherwise the project config is tried first, then the global one.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := DefaultConfig()

	if path != "" {
		if err := readFile(path, cfg); err != nil {
			return nil, err
		}
	} else {
		for _, candidate := range candidatePaths() {
			err := readFile(candidate, cfg)
			if err == nil {
				break
			}
			if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func candidatePaths() []string {
	paths := []string{ProjectConfigPath()}
	if global, err := GlobalConfigPath(); err == nil {
		paths = append(paths, global)
	}
	return paths
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Source = path
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv(EnvDownloadDir); v != "" {
		cfg.DownloadDir = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	return nil
}

// Validate checks the configuration after all overrides have been applied
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Save writes the configuration as YAML to path, creating parent directories
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
