// Package config loads server settings from defaults, an optional TOML file
// and COLOR_MCP_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Environment variables read by Load.
const (
	EnvConfig    = "COLOR_MCP_CONFIG"
	EnvLogLevel  = "COLOR_MCP_LOG_LEVEL"
	EnvStrict    = "COLOR_MCP_STRICT"
	EnvPrecision = "COLOR_MCP_PRECISION"
	EnvOCRLang   = "COLOR_MCP_OCR_LANG"
)

// Config holds the server settings.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// Strict rejects out-of-range color components instead of clamping them.
	Strict bool `toml:"strict"`

	// Precision is the default number of decimals for converted colors.
	// color.DefaultPrecision (-1) uses each space's own default and
	// color.FullPrecision (-2) disables rounding.
	Precision int `toml:"precision"`

	// CacheConversions memoizes parse-and-convert results.
	CacheConversions bool `toml:"cache_conversions"`

	// CacheLimit bounds the conversion cache. Zero selects
	// color.DefaultCacheLimit.
	CacheLimit int `toml:"cache_limit"`

	// OCRLanguage is the Tesseract language used by the text audit.
	OCRLanguage string `toml:"ocr_language"`

	// MinOCRConfidence drops recognized words scored below it (0-1).
	MinOCRConfidence float64 `toml:"min_ocr_confidence"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:         "info",
		Precision:        color.DefaultPrecision,
		CacheConversions: true,
		OCRLanguage:      "eng",
		MinOCRConfidence: 0.5,
	}
}

// Load builds a Config from the defaults, the TOML file at path (or the file
// named by COLOR_MCP_CONFIG when path is empty) and then the environment.
// A missing path and an unset COLOR_MCP_CONFIG mean no file is read.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return fmt.Errorf("config %s: %s", path, strictErr.String())
		}
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvStrict); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrict, err)
		}
		c.Strict = b
	}
	if v, ok := lookup(EnvPrecision); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPrecision, err)
		}
		c.Precision = n
	}
	if v, ok := lookup(EnvOCRLang); ok {
		c.OCRLanguage = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Precision < color.FullPrecision {
		return fmt.Errorf("precision %d below %d", c.Precision, color.FullPrecision)
	}
	if c.CacheLimit < 0 {
		return fmt.Errorf("cache_limit %d is negative", c.CacheLimit)
	}
	if c.MinOCRConfidence < 0 || c.MinOCRConfidence > 1 {
		return fmt.Errorf("min_ocr_confidence %v outside [0, 1]", c.MinOCRConfidence)
	}
	if c.OCRLanguage == "" {
		return errors.New("ocr_language is empty")
	}
	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", name)
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}
