package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/teranos/widgetgen/am"
	"github.com/teranos/widgetgen/errors"
	"gopkg.in/yaml.v3"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage widgetgen configuration",
	Long: `am - Manage widgetgen configuration ("I am")

Display and validate widgetgen configuration settings.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (WIDGETGEN_* prefix, e.g. WIDGETGEN_EXPORT_SHAPE)
3. Project config (./widgetgen.toml, searched upward)
4. User config (~/.widgetgen/config.toml)
5. Default values

Examples:
  widgetgen am show                    # Show current configuration
  widgetgen am show --format json      # Show configuration in JSON format
  widgetgen am validate                # Validate current configuration
  widgetgen am where                   # Show which config files are read`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current widgetgen configuration merged from all sources",
	RunE:  runAmShow,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runAmValidate,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runAmWhere,
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
}

// configView mirrors am.Config with the key names used in config files.
type configView struct {
	Export struct {
		Shape      string `toml:"shape" json:"shape" yaml:"shape"`
		OutputDir  string `toml:"output_dir" json:"output_dir" yaml:"output_dir"`
		FilePrefix string `toml:"file_prefix" json:"file_prefix" yaml:"file_prefix"`
	} `toml:"export" json:"export" yaml:"export"`
	Preview struct {
		Background string            `toml:"background" json:"background" yaml:"background"`
		Colors     map[string]string `toml:"colors" json:"colors" yaml:"colors"`
	} `toml:"preview" json:"preview" yaml:"preview"`
	Watch struct {
		DebounceMS int `toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"`
	} `toml:"watch" json:"watch" yaml:"watch"`
	Serve struct {
		Addr           string   `toml:"addr" json:"addr" yaml:"addr"`
		AllowedOrigins []string `toml:"allowed_origins" json:"allowed_origins" yaml:"allowed_origins"`
	} `toml:"serve" json:"serve" yaml:"serve"`
	Log struct {
		JSON bool `toml:"json" json:"json" yaml:"json"`
	} `toml:"log" json:"log" yaml:"log"`
}

func newConfigView(cfg *am.Config) configView {
	var v configView
	v.Export.Shape = cfg.Export.Shape
	v.Export.OutputDir = cfg.Export.OutputDir
	v.Export.FilePrefix = cfg.Export.FilePrefix
	v.Preview.Background = cfg.Preview.Background
	v.Preview.Colors = cfg.Preview.Colors
	v.Watch.DebounceMS = cfg.Watch.DebounceMS
	v.Serve.Addr = cfg.Serve.Addr
	v.Serve.AllowedOrigins = cfg.Serve.AllowedOrigins
	v.Log.JSON = cfg.Log.JSON
	return v
}

// marshalConfig encodes cfg in format.
func marshalConfig(cfg *am.Config, format string) ([]byte, error) {
	view := newConfigView(cfg)
	switch format {
	case "json":
		return json.MarshalIndent(view, "", "  ")
	case "yaml":
		return yaml.Marshal(view)
	case "toml":
		return toml.Marshal(view)
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported format: %s", format),
			"supported formats are toml, json, yaml")
	}
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := marshalConfig(cfg, configFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if configFormat != "json" {
		fmt.Fprintln(out, "# widgetgen configuration")
	}
	fmt.Fprint(out, string(data))
	if configFormat == "json" {
		fmt.Fprintln(out)
	}
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	statusSuccess.Println("Configuration is valid")
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  [DEFAULT]  Built-in defaults")

	for _, path := range am.ConfigPaths() {
		status := "missing"
		if _, err := os.Stat(path); err == nil {
			status = "found"
		}
		fmt.Fprintf(out, "  [FILE]     %s (%s)\n", path, status)
	}
	fmt.Fprintf(out, "  [ENV]      %s_* environment variables\n", am.EnvPrefix)
	return nil
}
