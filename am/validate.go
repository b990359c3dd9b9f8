package am

import (
	"github.com/BurntSushi/toml"
	"github.com/teranos/gentypes/errors"
)

// Validate checks that the configuration is valid.
// Failures wrap errors.ErrInvalidConfig and must stop startup.
func (c *Config) Validate() error {
	if c.Output.Location == "" {
		return errors.WithHint(
			errors.NewInvalidConfigError("output.location is required"),
			"set output.location in gentypes.toml or GEN_TYPES_OUTPUT_LOCATION",
		)
	}

	if c.Server.Port < 0 {
		return errors.NewInvalidConfigError("server.port must not be negative, got %d", c.Server.Port)
	}

	if c.Schema.APIDir == "" && c.Schema.ComponentsDir == "" {
		return errors.NewInvalidConfigError("schema.api_dir and schema.components_dir cannot both be empty")
	}

	return nil
}

// CheckFile decodes a config file strictly and returns the keys it does not recognise.
// Viper silently ignores unknown keys, so typos like `singel_file` would otherwise go unnoticed.
func CheckFile(path string) ([]string, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}
