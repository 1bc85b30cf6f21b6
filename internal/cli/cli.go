// Package cli implements the npyi command-line interface.
//
// # Commands
//
//   - search: query the registry with one flag per search parameter
//   - lookup: fetch a single provider by NPI
//   - params: list valid parameters, versions and address purposes
//   - config: show the config file location and effective settings
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/andyh1203/npyi/pkg/npyi"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "npyi"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flag values, read by loadConfig.
	configPath string
	baseURL    string
	timeout    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Client Factory
// =============================================================================

// newClient builds a registry client from the effective configuration.
func newClient(cfg Config, logger *log.Logger) (*npyi.Client, error) {
	timeout, err := cfg.timeout()
	if err != nil {
		return nil, err
	}
	return npyi.NewClient(
		npyi.WithBaseURL(cfg.BaseURL),
		npyi.WithTimeout(timeout),
		npyi.WithLogger(logger),
	), nil
}

// searchOptions turns config defaults into per-search options.
func searchOptions(cfg Config) []npyi.SearchOption {
	opts := []npyi.SearchOption{npyi.WithVersion(cfg.APIVersion)}
	if cfg.Limit > 0 {
		opts = append(opts, npyi.WithLimit(cfg.Limit))
	}
	return opts
}
