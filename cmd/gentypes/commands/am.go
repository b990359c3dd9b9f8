package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/gentypes/am"
	"github.com/teranos/gentypes/display"
	"github.com/teranos/gentypes/errors"
	"gopkg.in/yaml.v3"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage gentypes configuration",
	Long: `am - Manage gentypes configuration ("I am")

Display and validate the resolved configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (GEN_TYPES_* and NODE_ENV)
3. Project config (./gentypes.toml, searched upward)
4. User config (~/.gentypes/gentypes.toml)
5. Default values

Examples:
  gentypes am show                    # Show current configuration
  gentypes am show --format json      # Show configuration in JSON format
  gentypes am get output.location     # Get specific config value
  gentypes am validate                # Validate current configuration`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the resolved gentypes configuration from all sources",
	RunE:  runAmShow,
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., output.location, filter.include)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmGet,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate the resolved configuration and report unknown keys in config files",
	RunE:  runAmValidate,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long: `Show the configuration cascade and which files were checked.

Lists all configuration files in order of precedence, showing
which files exist and which are missing.`,
	RunE: runAmWhere,
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := renderConfig(cfg, configFormat)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// renderConfig marshals cfg in the requested format
func renderConfig(cfg *am.Config, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := display.MarshalJSON(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to JSON")
		}
		return append(data, '\n'), nil

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to YAML")
		}
		return append([]byte("# gentypes configuration\n"), data...), nil

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to TOML")
		}
		return append([]byte("# gentypes configuration\n"), data...), nil

	default:
		return nil, errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := am.GetViper()
	if !v.IsSet(key) {
		return errors.Newf("configuration key %q not found", key)
	}

	fmt.Println(am.Get(key))
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	var warnings int
	for _, path := range existingConfigFiles() {
		unknown, err := am.CheckFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to parse %s", path)
		}
		for _, key := range unknown {
			pterm.Warning.Printfln("%s: unknown key %q", path, key)
			warnings++
		}
	}

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	if warnings > 0 {
		pterm.Success.Printfln("Configuration is valid (%d unknown key(s) ignored)", warnings)
	} else {
		pterm.Success.Println("Configuration is valid")
	}
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	fmt.Println("Configuration cascade (later overrides earlier):")
	fmt.Println("  1. [DEFAULT]  Built-in defaults")
	fmt.Println("  2. [USER]     ~/" + am.UserConfigDirName + "/" + am.ConfigFileName)
	fmt.Println("  3. [PROJECT]  ./" + am.ConfigFileName + " (searches up directories)")
	fmt.Println("  4. [ENV]      GEN_TYPES_* and NODE_ENV environment variables")
	fmt.Println()

	fmt.Println("Files:")
	paths := am.ConfigPaths()
	if len(paths) == 0 {
		fmt.Println("  (none found)")
	}
	for _, path := range paths {
		status := "missing"
		if _, err := os.Stat(path); err == nil {
			status = "loaded"
		}
		fmt.Printf("  %-8s %s\n", status, path)
	}

	if vars := setEnvVars(); len(vars) > 0 {
		fmt.Println()
		fmt.Println("Environment:")
		for _, kv := range vars {
			fmt.Printf("  %s\n", kv)
		}
	}
	return nil
}

func existingConfigFiles() []string {
	var existing []string
	for _, path := range am.ConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return existing
}

// setEnvVars lists configuration variables present in the environment
func setEnvVars() []string {
	var vars []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "GEN_TYPES_") || strings.HasPrefix(kv, "GENTYPES_") || strings.HasPrefix(kv, "NODE_ENV=") {
			vars = append(vars, kv)
		}
	}
	return vars
}
