package am

import (
	"strings"

	"github.com/teranos/widgetgen/errors"
	"github.com/teranos/widgetgen/export"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := export.ParseShape(c.Export.Shape); err != nil {
		return errors.Wrap(err, "export.shape")
	}

	if strings.ContainsAny(c.Export.FilePrefix, `/\`) {
		return errors.Newf("export.file_prefix must not contain path separators, got %q", c.Export.FilePrefix)
	}

	// Watch debounce: 0 = watcher default, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	if c.Serve.Addr == "" {
		return errors.New("serve.addr cannot be empty")
	}

	for name, value := range c.Preview.Colors {
		if value == "" {
			return errors.Newf("preview.colors.%s cannot be empty", name)
		}
	}

	return nil
}
