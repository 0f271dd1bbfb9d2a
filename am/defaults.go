package am

import (
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultShape      = "full"
	DefaultFilePrefix = "widgets"
	DefaultBackground = "black"
	DefaultDebounceMS = 300
	DefaultServeAddr  = "127.0.0.1:8877"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Export defaults
	v.SetDefault("export.shape", DefaultShape)
	v.SetDefault("export.output_dir", "") // stdout
	v.SetDefault("export.file_prefix", DefaultFilePrefix)

	// Preview defaults
	v.SetDefault("preview.background", DefaultBackground)
	v.SetDefault("preview.colors", map[string]string{})

	// Watch defaults
	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)

	// Serve defaults
	v.SetDefault("serve.addr", DefaultServeAddr)
	v.SetDefault("serve.allowed_origins", []string{
		"http://localhost",
		"http://127.0.0.1",
	})

	// Log defaults
	v.SetDefault("log.json", false)
}
