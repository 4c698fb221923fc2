package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"

	"github.com/inoxlang/protohelpers/internal/logs"
	"github.com/inoxlang/protohelpers/internal/remotecall"
	"github.com/inoxlang/protohelpers/internal/utils"
)

const (
	APP_NAME = "protohelpers"

	CONFIG_FILE_NAME    = "config.yaml"
	CONFIG_FILE_RELPATH = APP_NAME + "/" + CONFIG_FILE_NAME

	DEFAULT_HOST                 = "http://localhost"
	DEFAULT_PERIODICAL_FREQUENCY = 10.0
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")

	//set from the environment at init.
	NO_COLOR    bool
	FORCE_COLOR bool
)

func init() {
	if s, ok := os.LookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	if s, ok := os.LookupEnv("NO_COLOR"); ok {
		NO_COLOR = len(s) != 0 && s != "false" && s != "0"
	}
}

type Config struct {
	//Scheme and authority prepended to routed URLs.
	Host string `yaml:"host"`

	DefaultPeriodicalFrequency float64 `yaml:"default-periodic-frequency"`

	ValidateOutput bool   `yaml:"validate-output"`
	CompactOutput  bool   `yaml:"compact-output"`
	ScriptNonce    string `yaml:"script-nonce,omitempty"`
	LogLevel       string `yaml:"log-level,omitempty"`

	ForgeryProtection *remotecall.ForgeryProtection `yaml:"forgery-protection,omitempty"`
}

func Default() Config {
	return Config{
		Host:                       DEFAULT_HOST,
		DefaultPeriodicalFrequency: DEFAULT_PERIODICAL_FREQUENCY,
	}
}

// Validate returns an error wrapping ErrInvalidConfig and describing all the problems of the configuration.
func (c Config) Validate() error {
	var errs []error

	if c.Host != "" {
		u, err := url.Parse(c.Host)
		if err != nil {
			errs = append(errs, fmt.Errorf("host: %w", err))
		} else if u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("host: %q should have a scheme and a host", c.Host))
		} else if u.RawQuery != "" || u.Fragment != "" {
			errs = append(errs, fmt.Errorf("host: %q should not have a query nor a fragment", c.Host))
		}
	}

	if c.DefaultPeriodicalFrequency <= 0 {
		errs = append(errs, errors.New("default-periodic-frequency: should be positive"))
	}

	if _, err := logs.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log-level: %w", err))
	}

	if c.ForgeryProtection != nil && c.ForgeryProtection.TokenName == "" {
		errs = append(errs, errors.New("forgery-protection: token-name is required"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, utils.CombineErrors(errs...))
}

// Parse parses a YAML configuration, missing keys keep their default value.
func Parse(data []byte) (Config, error) {
	config := Default()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Load reads the configuration file at path, if path is empty the file is searched in the XDG config
// directories and the default configuration is returned if there is no file.
func Load(path string) (Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
		if err != nil {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return Parse(data)
}

// DefaultConfigFilePath returns the path where the configuration file is expected in the user's
// config directory, the file may not exist.
func DefaultConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, CONFIG_FILE_RELPATH)
}
