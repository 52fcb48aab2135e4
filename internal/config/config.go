package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-ldocfilter/internal/fileutil"
	"github.com/alnah/go-ldocfilter/internal/pipeline"
	"github.com/alnah/go-ldocfilter/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidSentinel = errors.New("invalid TOC sentinel")
)

// MaxSentinelLength bounds each TOC sentinel.
const MaxSentinelLength = 200

// configDirName is the directory searched under the user config directory.
const configDirName = "go-ldocfilter"

// Config holds all configuration for a filtering run.
// Boolean fields are pointers so an omitted key keeps its default.
type Config struct {
	TOC    TOCConfig    `yaml:"toc"`
	Tables TablesConfig `yaml:"tables"`
}

// TOCConfig defines TOC block stripping.
type TOCConfig struct {
	Enabled *bool  `yaml:"enabled"` // default true
	Start   string `yaml:"start"`   // default "<!--toc:start-->"
	End     string `yaml:"end"`     // default "<!--toc:end-->"
}

// TablesConfig defines pipe table conversion.
type TablesConfig struct {
	Enabled    *bool `yaml:"enabled"`    // default true
	InlineCode *bool `yaml:"inlineCode"` // default true
}

// TOCEnabled reports whether TOC blocks are stripped.
func (c *Config) TOCEnabled() bool {
	return boolOr(c.TOC.Enabled, true)
}

// TablesEnabled reports whether pipe tables are converted.
func (c *Config) TablesEnabled() bool {
	return boolOr(c.Tables.Enabled, true)
}

// InlineCodeEnabled reports whether `code` in cells becomes <code>.
func (c *Config) InlineCodeEnabled() bool {
	return boolOr(c.Tables.InlineCode, true)
}

// Sentinels returns the TOC sentinels with defaults applied.
func (c *Config) Sentinels() (start, end string) {
	start, end = c.TOC.Start, c.TOC.End
	if start == "" {
		start = pipeline.DefaultTOCStart
	}
	if end == "" {
		end = pipeline.DefaultTOCEnd
	}
	return start, end
}

// Validate checks sentinel values. Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateFieldLength("toc.start", c.TOC.Start, MaxSentinelLength); err != nil {
		return err
	}
	if err := validateFieldLength("toc.end", c.TOC.End, MaxSentinelLength); err != nil {
		return err
	}

	if !c.TOCEnabled() {
		return nil
	}
	start, end := c.Sentinels()
	if strings.ContainsAny(start+end, "\r\n") {
		return fmt.Errorf("%w: toc.start and toc.end cannot contain line breaks", ErrInvalidSentinel)
	}
	if start == end {
		return fmt.Errorf("%w: toc.start and toc.end must differ (both %q)", ErrInvalidSentinel, start)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with every stage enabled and the
// default sentinels.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists, in order, the files tried for a config name:
// the current directory first, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
