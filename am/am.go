// Package am holds widgetgen configuration ("I am"): export defaults, preview
// palette overrides, watch and serve settings, and logging.
package am

import "time"

// Config represents the widgetgen configuration
type Config struct {
	Export  ExportConfig  `mapstructure:"export"`
	Preview PreviewConfig `mapstructure:"preview"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Serve   ServeConfig   `mapstructure:"serve"`
	Log     LogConfig     `mapstructure:"log"`
}

// ExportConfig configures code export
type ExportConfig struct {
	Shape      string `mapstructure:"shape"`       // full, widgets or function (default: full)
	OutputDir  string `mapstructure:"output_dir"`  // "" or "-" writes to stdout
	FilePrefix string `mapstructure:"file_prefix"` // export file name prefix (default: widgets)
}

// PreviewConfig configures the HTML preview
type PreviewConfig struct {
	Background string            `mapstructure:"background"` // terminal surface colour name (default: black)
	Colors     map[string]string `mapstructure:"colors"`     // colour name -> CSS value overrides
}

// WatchConfig configures layout file watching
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"` // 0 = watcher default
}

// ServeConfig configures the live preview server
type ServeConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON logs instead of console
}

// Config file names and locations
const (
	ProjectConfigName = "widgetgen.toml"
	UserConfigDir     = ".widgetgen"
	UserConfigName    = "config.toml"
	EnvPrefix         = "WIDGETGEN"
)

// Debounce returns the watch debounce as a duration. Zero means the watcher
// picks its own default.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}
