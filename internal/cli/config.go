package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/andyh1203/npyi/pkg/errors"
	"github.com/andyh1203/npyi/pkg/integrations"
	"github.com/andyh1203/npyi/pkg/npyi"
)

// Output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
)

var validOutputs = []string{outputTable, outputJSON}

// Config is the CLI configuration file.
//
//	base_url    = "https://npiregistry.cms.hhs.gov/api/"
//	api_version = "2.1"
//	timeout     = "10s"
//	limit       = 20
//	output      = "table"
type Config struct {
	BaseURL    string `toml:"base_url"`
	APIVersion string `toml:"api_version"`
	Timeout    string `toml:"timeout"`
	Limit      int    `toml:"limit,omitempty"`
	Output     string `toml:"output"`
}

func defaultConfig() Config {
	return Config{
		BaseURL:    npyi.DefaultBaseURL,
		APIVersion: npyi.DefaultVersion,
		Timeout:    integrations.DefaultTimeout.String(),
		Output:     outputTable,
	}
}

func (c Config) timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid timeout %q", c.Timeout)
	}
	if d <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "timeout must be positive, got %s", c.Timeout)
	}
	return d, nil
}

// validate checks the values the CLI interprets itself. The API version is
// left to the library so its error message stays the same everywhere.
func (c Config) validate() error {
	if err := errors.ValidateURL(c.BaseURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid base_url")
	}
	if _, err := c.timeout(); err != nil {
		return err
	}
	if c.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "limit must not be negative, got %d", c.Limit)
	}
	return errors.ValidateOneOf(errors.ErrCodeInvalidConfig, "output", c.Output, validOutputs)
}

// configDir returns the config directory using the XDG standard (~/.config/npyi/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// resolveConfigPath returns the config file to read and whether the user
// named it explicitly.
func (c *CLI) resolveConfigPath() (string, bool, error) {
	if c.configPath != "" {
		return c.configPath, true, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, "config.toml"), false, nil
}

// readConfig decodes path over the defaults. A missing file is only an error
// when explicit is set.
func readConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// loadConfig reads the config file and applies persistent flag overrides.
func (c *CLI) loadConfig(cmd *cobra.Command) (Config, error) {
	path, explicit, err := c.resolveConfigPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := readConfig(path, explicit)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = c.baseURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = c.timeout
	}

	loggerFromContext(cmd.Context()).Debug("Loaded config", "path", path, "base_url", cfg.BaseURL)
	return cfg, cfg.validate()
}

// configCommand creates the config command and its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the npyi configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	})

	return cmd
}
