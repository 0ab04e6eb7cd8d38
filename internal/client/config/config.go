package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

// Config holds runtime settings for the clientdesk terminal client.
//
// Fields:
//   - APIURL: collection URL of the clients REST resource.
//   - RequestTimeout: upper bound for a single backend request.
//   - SearchDebounce: quiet period after the last keystroke before searching.
//   - TimeLayout, TimeZone: how created/updated timestamps are shown.
//   - LogFile, LogLevel, LogFormat: where and how the client logs.
type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	SearchDebounce time.Duration
	TimeLayout     string
	TimeZone       string
	LogFile        string
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:3000/api/clients"
	c.RequestTimeout = 10 * time.Second
	c.SearchDebounce = 300 * time.Millisecond
	c.TimeLayout = "02.01.2006, 15:04:05"
	c.TimeZone = "Local"
	c.LogFile = "clientdesk.log"
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
}

// Default returns a Config with defaults applied.
func Default() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("api url %q must be an absolute http(s) URL", c.APIURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.SearchDebounce <= 0 {
		return errors.New("search debounce must be positive")
	}
	if c.TimeLayout == "" {
		return errors.New("time layout is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON, logging.FormatZap:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Location resolves TimeZone. An empty value means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
