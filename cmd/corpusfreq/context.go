package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/pflag"

	"github.com/cognicore/corpusfreq/internal/logging"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/config"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type commandContext struct {
	configFlag string
	overrides  config.Config
	format     string

	flags  *pflag.FlagSet
	stdout io.Writer
	stderr io.Writer

	configOnce sync.Once
	config     config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

// ensureConfig loads the config file (or defaults), applies explicitly set
// flags and builds the logger.
func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		cfg := config.Default()
		if path := strings.TrimSpace(c.configFlag); path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				c.configErr = err
				return
			}
			cfg = loaded
		}
		c.applyOverrides(&cfg)

		switch c.format {
		case formatTable, formatJSON:
		default:
			c.configErr = fmt.Errorf("output format: unsupported value %q", c.format)
			return
		}

		logger, err := logging.New(logging.Options{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			Output: c.stderr,
		})
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cfg *config.Config) {
	changed := func(name string) bool {
		return c.flags != nil && c.flags.Changed(name)
	}
	o := c.overrides
	if changed("input") {
		cfg.Input = o.Input
	}
	if changed("category") {
		cfg.Category = o.Category
	}
	if changed("sample-size") {
		cfg.SampleSize = o.SampleSize
	}
	if changed("seed") {
		cfg.Seed = o.Seed
	}
	// An explicit stoplist file wins over a language selection.
	if changed("language") {
		cfg.Language = o.Language
		cfg.Stopwords = ""
	}
	if changed("stopwords") {
		cfg.Stopwords = o.Stopwords
	}
	if changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if changed("log-format") {
		cfg.LogFormat = o.LogFormat
	}
}
