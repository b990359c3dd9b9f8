package am

// Config represents the gentypes configuration
type Config struct {
	Environment string            `mapstructure:"environment" toml:"environment" json:"environment" yaml:"environment"`
	Output      OutputConfig      `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Filter      FilterConfig      `mapstructure:"filter" toml:"filter" json:"filter" yaml:"filter"`
	Schema      SchemaConfig      `mapstructure:"schema" toml:"schema" json:"schema" yaml:"schema"`
	ExtendTypes ExtendTypesConfig `mapstructure:"extend_types" toml:"extend_types" json:"extend_types" yaml:"extend_types"`
	Server      ServerConfig      `mapstructure:"server" toml:"server" json:"server" yaml:"server"`
	Log         LogConfig         `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// OutputConfig controls where and how generated TypeScript is written
type OutputConfig struct {
	Location    string `mapstructure:"location" toml:"location" json:"location" yaml:"location"`             // File path in single-file mode, directory otherwise
	SingleFile  bool   `mapstructure:"single_file" toml:"single_file" json:"single_file" yaml:"single_file"` // Emit one consolidated file
	Clear       bool   `mapstructure:"clear" toml:"clear" json:"clear" yaml:"clear"`                         // Remove previous output before writing
	SingleQuote bool   `mapstructure:"single_quote" toml:"single_quote" json:"single_quote" yaml:"single_quote"`
}

// FilterConfig holds model identifier glob patterns
type FilterConfig struct {
	Include []string `mapstructure:"include" toml:"include" json:"include" yaml:"include"`
	Exclude []string `mapstructure:"exclude" toml:"exclude" json:"exclude" yaml:"exclude"`
}

// SchemaConfig locates the schema roots
type SchemaConfig struct {
	APIDir        string `mapstructure:"api_dir" toml:"api_dir" json:"api_dir" yaml:"api_dir"`
	ComponentsDir string `mapstructure:"components_dir" toml:"components_dir" json:"components_dir" yaml:"components_dir"`
}

// ExtendTypesConfig holds raw field declarations appended to the built-in interfaces.
// Keys are case-insensitive in TOML (User, user and USER all bind here).
type ExtendTypesConfig struct {
	User        string `mapstructure:"user" toml:"user,omitempty" json:"user,omitempty" yaml:"user,omitempty"`
	Role        string `mapstructure:"role" toml:"role,omitempty" json:"role,omitempty" yaml:"role,omitempty"`
	Media       string `mapstructure:"media" toml:"media,omitempty" json:"media,omitempty" yaml:"media,omitempty"`
	MediaFormat string `mapstructure:"mediaformat" toml:"mediaformat,omitempty" json:"mediaformat,omitempty" yaml:"mediaformat,omitempty"`
	FindOne     string `mapstructure:"findone" toml:"findone,omitempty" json:"findone,omitempty" yaml:"findone,omitempty"`
	FindMany    string `mapstructure:"findmany" toml:"findmany,omitempty" json:"findmany,omitempty" yaml:"findmany,omitempty"`
}

// IsEmpty reports whether no built-in interface is extended
func (e ExtendTypesConfig) IsEmpty() bool {
	return e == ExtendTypesConfig{}
}

// ServerConfig configures the control surface
type ServerConfig struct {
	Port           int      `mapstructure:"port" toml:"port" json:"port" yaml:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins" toml:"allowed_origins" json:"allowed_origins" yaml:"allowed_origins"`
}

// LogConfig configures structured logging
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// Environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// IsDevelopment reports whether the resolved environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// IsProduction reports whether the resolved environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// HasFilters reports whether any include or exclude pattern is configured
func (c *Config) HasFilters() bool {
	return len(c.Filter.Include) > 0 || len(c.Filter.Exclude) > 0
}

// Default values
const (
	DefaultOutputLocation = "src/genTypes"
	DefaultAPIDir         = "src/api"
	DefaultComponentsDir  = "src/components"
	DefaultServerPort     = 1338
	ConfigFileName        = "gentypes.toml"
	UserConfigDirName     = ".gentypes"
	DefaultDirPermissions = 0755
)
