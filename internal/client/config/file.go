package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/clientdesk/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used only for decoding config files. Pointer fields
// tell "absent" apart from "empty", so a file only overrides the keys it sets.
// Durations go through timex.Duration and accept "300ms" or nanoseconds.
type fileConfig struct {
	APIURL         *string         `json:"api_url" yaml:"api_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	SearchDebounce *timex.Duration `json:"search_debounce" yaml:"search_debounce"`
	TimeLayout     *string         `json:"time_layout" yaml:"time_layout"`
	TimeZone       *string         `json:"time_zone" yaml:"time_zone"`
	LogFile        *string         `json:"log_file" yaml:"log_file"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogFormat      *string         `json:"log_format" yaml:"log_format"`
}

// LoadFile overlays cfg with the values found in path. Files ending in .yaml
// or .yml are decoded as YAML, anything else as JSON.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if fc.APIURL != nil {
		cfg.APIURL = *fc.APIURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.SearchDebounce != nil {
		cfg.SearchDebounce = fc.SearchDebounce.Duration
	}
	if fc.TimeLayout != nil {
		cfg.TimeLayout = *fc.TimeLayout
	}
	if fc.TimeZone != nil {
		cfg.TimeZone = *fc.TimeZone
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
}
