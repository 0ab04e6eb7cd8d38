package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the command-line flags that override Config fields.
// Flag defaults are taken from cfg, so call LoadDefaults first.
//
//	-a, --api-url        collection URL of the clients resource
//	-t, --timeout        per-request timeout
//	-d, --debounce       search debounce interval
//	    --time-layout    Go layout for created/updated columns
//	    --time-zone      IANA zone for timestamps ("Local" by default)
//	    --log-file       log destination of the interactive UI
//	    --log-level      debug, info, warn or error
//	    --log-format     text, json or zap
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.APIURL, "api-url", "a", cfg.APIURL, "clients collection URL of the backend")
	fs.DurationVarP(&cfg.RequestTimeout, "timeout", "t", cfg.RequestTimeout, "timeout of a single backend request")
	fs.DurationVarP(&cfg.SearchDebounce, "debounce", "d", cfg.SearchDebounce, "delay after the last keystroke before searching")
	fs.StringVar(&cfg.TimeLayout, "time-layout", cfg.TimeLayout, "Go time layout for timestamps")
	fs.StringVar(&cfg.TimeZone, "time-zone", cfg.TimeZone, "time zone for timestamps")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file of the interactive UI")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text, json, zap")
}

// Resolve applies the config file at path (if any) underneath the flags the
// user set explicitly, then validates the result. Precedence, lowest first:
// defaults, config file, command-line flags.
func Resolve(cfg *Config, path string, fs *pflag.FlagSet) error {
	if path != "" {
		// The file overwrites the bound fields, so remember what was typed.
		set := map[string]string{}
		fs.Visit(func(f *pflag.Flag) {
			set[f.Name] = f.Value.String()
		})

		if err := LoadFile(cfg, path); err != nil {
			return err
		}

		for name, value := range set {
			if err := fs.Set(name, value); err != nil {
				return err
			}
		}
	}
	return cfg.Validate()
}
