package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Endpoint string `yaml:"endpoint" json:"endpoint"`
	Page     int    `yaml:"page" json:"page"`

	HTTP struct {
		UserAgent string        `yaml:"userAgent" json:"userAgent"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	} `yaml:"http" json:"http"`

	MarkupFile string `yaml:"markupFile" json:"markupFile"`

	Output struct {
		Format string `yaml:"format" json:"format"`
		Path   string `yaml:"path" json:"path"`
		Font   string `yaml:"font" json:"font"`
	} `yaml:"output" json:"output"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their defaults. Flags should already have
// been parsed; this lets the file supply values while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Endpoint == "" && fc.Endpoint != "" {
		cfg.Endpoint = fc.Endpoint
	}
	if (cfg.Page == 0 || cfg.Page == defaultPage) && fc.Page > 0 {
		cfg.Page = fc.Page
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == defaultUserAgent) && fc.HTTP.UserAgent != "" {
		cfg.UserAgent = fc.HTTP.UserAgent
	}
	if cfg.Timeout == 0 && fc.HTTP.Timeout > 0 {
		cfg.Timeout = fc.HTTP.Timeout
	}
	if cfg.MarkupFile == "" && fc.MarkupFile != "" {
		cfg.MarkupFile = fc.MarkupFile
	}
	if (cfg.Format == "" || cfg.Format == defaultFormat) && fc.Output.Format != "" {
		cfg.Format = fc.Output.Format
	}
	if cfg.OutputPath == "" && fc.Output.Path != "" {
		cfg.OutputPath = fc.Output.Path
	}
	if cfg.PDFFontPath == "" && fc.Output.Font != "" {
		cfg.PDFFontPath = fc.Output.Font
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig rejects settings the pipeline cannot act on.
func ValidateConfig(cfg Config) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", FormatText, FormatJSON:
	case FormatPDF:
		if strings.TrimSpace(cfg.OutputPath) == "" {
			return errors.New("config: pdf output requires an output path")
		}
	default:
		return fmt.Errorf("config: unknown output format %q", cfg.Format)
	}
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	if cfg.Page < 0 {
		return errors.New("config: negative page is not allowed")
	}
	return nil
}
