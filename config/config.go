// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultApiBase      = "https://www.instapaper.com/api/1"
	DefaultDirName      = "instapaper-sorter"
	DefaultConfigFile   = "config.toml"
	DefaultPageSize     = 25
	DefaultMaxAttempts  = 6
	DefaultInitialDelay = 600 * time.Millisecond
	DefaultTimeout      = 30 * time.Second
	MaxPageSize         = 500

	ENV_CONSUMER_KEY    = "INSTAPAPER_CONSUMER_KEY"
	ENV_CONSUMER_SECRET = "INSTAPAPER_CONSUMER_SECRET"
	ENV_USERNAME        = "INSTAPAPER_USERNAME"
	ENV_PASSWORD        = "INSTAPAPER_PASSWORD"
)

type Config struct {
	ConsumerKey    string
	ConsumerSecret string

	// only needed until an access token is cached
	Username string
	Password *string

	ApiBase string

	// RulesFile, CredentialsFile and Database are relative to ConfigDir
	// unless absolute
	ConfigDir       string
	RulesFile       string
	CredentialsFile string
	Database        string

	PageSize     int
	MaxAttempts  int
	InitialDelay time.Duration
	Timeout      time.Duration

	DryRun    bool
	AutoApply bool

	Loglevel *string
	// log output goes to stderr unless set, relative to ConfigDir
	LogFile string
}

// DefaultConfigPath is config.toml in the per-user configuration directory.
func DefaultConfigPath() (string, error) {
	dir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// ReadConfig decodes filename on top of the defaults and applies the
// environment, including a .env file in the working directory. The config
// file itself is optional unless mustExist is set.
func ReadConfig(filename string, mustExist bool) (*Config, error) {
	configDir, err := defaultConfigDir()
	if err != nil {
		return nil, err
	}

	config := &Config{
		ApiBase:         DefaultApiBase,
		ConfigDir:       configDir,
		RulesFile:       "rules.json",
		CredentialsFile: "credentials.json",
		Database:        "history.db",
		PageSize:        DefaultPageSize,
		MaxAttempts:     DefaultMaxAttempts,
		InitialDelay:    DefaultInitialDelay,
		Timeout:         DefaultTimeout,
	}

	_, err = toml.DecodeFile(filename, config)
	if err != nil && (mustExist || !errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}
	config.applyEnvironment()

	config.RulesFile = config.resolve(config.RulesFile)
	config.CredentialsFile = config.resolve(config.CredentialsFile)
	config.Database = config.resolve(config.Database)
	config.LogFile = config.resolve(config.LogFile)

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyEnvironment() {
	if v := os.Getenv(ENV_CONSUMER_KEY); len(v) > 0 {
		c.ConsumerKey = v
	}
	if v := os.Getenv(ENV_CONSUMER_SECRET); len(v) > 0 {
		c.ConsumerSecret = v
	}
	if v := os.Getenv(ENV_USERNAME); len(v) > 0 {
		c.Username = v
	}
	// an empty password is valid for instapaper accounts
	if v, ok := os.LookupEnv(ENV_PASSWORD); ok {
		c.Password = &v
	}
}

func (c *Config) resolve(path string) string {
	if len(path) == 0 || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ConfigDir, path)
}

// Level is the configured log level, warn if none is set.
func (c *Config) Level() string {
	if c.Loglevel == nil {
		return "warn"
	}
	return *c.Loglevel
}

// HasLogin reports whether an xAuth exchange can be attempted.
func (c *Config) HasLogin() bool {
	return len(strings.TrimSpace(c.Username)) > 0 && c.Password != nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.ConsumerKey, "ConsumerKey must not be empty, set it in the config file or "+ENV_CONSUMER_KEY); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ConsumerSecret, "ConsumerSecret must not be empty, set it in the config file or "+ENV_CONSUMER_SECRET); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.ApiBase, "ApiBase must not be empty, set to the base url of the instapaper api"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.RulesFile, "RulesFile must not be empty, set to a filename for the rule table"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.CredentialsFile, "CredentialsFile must not be empty, set to a filename for the access token"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if c.PageSize < 1 || c.PageSize > MaxPageSize {
		return fmt.Errorf("PageSize must be between 1 and %d", MaxPageSize)
	}

	if c.MaxAttempts < 1 {
		return errors.New("MaxAttempts must be at least 1")
	}

	if c.InitialDelay <= 0 {
		return errors.New("InitialDelay must be positive")
	}

	if c.Timeout <= 0 {
		return errors.New("Timeout must be positive")
	}

	return nil
}

func defaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(dir, DefaultDirName), nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
