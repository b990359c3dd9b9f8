package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("environment", EnvDevelopment)

	// Output defaults
	v.SetDefault("output.location", DefaultOutputLocation)
	v.SetDefault("output.single_file", false)
	v.SetDefault("output.clear", false)
	v.SetDefault("output.single_quote", true)

	// Filter defaults: everything passes
	v.SetDefault("filter.include", []string{})
	v.SetDefault("filter.exclude", []string{})

	// Schema roots, relative to the working directory
	v.SetDefault("schema.api_dir", DefaultAPIDir)
	v.SetDefault("schema.components_dir", DefaultComponentsDir)

	// Server configuration defaults
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost",
		"https://localhost",
		"http://127.0.0.1",
		"https://127.0.0.1",
	})

	v.SetDefault("log.json", false)
}

// BindEnvVars binds the GEN_TYPES_* environment variables.
// Names predate the config file and are kept stable for existing pipelines.
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("environment", "GEN_TYPES_ENV", "NODE_ENV")
	v.BindEnv("output.location", "GEN_TYPES_OUTPUT_LOCATION")
	v.BindEnv("output.single_file", "GEN_TYPES_SINGLE_FILE")
	v.BindEnv("output.clear", "GEN_TYPES_CLEAR_OUTPUT")
	v.BindEnv("output.single_quote", "GEN_TYPES_SINGLE_QUOTE")
	v.BindEnv("filter.include", "GEN_TYPES_INCLUDE")
	v.BindEnv("filter.exclude", "GEN_TYPES_EXCLUDE")
	v.BindEnv("server.port", "GEN_TYPES_PORT")
	v.BindEnv("log.json", "GEN_TYPES_LOG_JSON")
}
