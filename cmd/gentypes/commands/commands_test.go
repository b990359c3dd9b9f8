package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/gentypes/am"
	"github.com/teranos/gentypes/errors"
	"github.com/teranos/gentypes/typegen"
	"gopkg.in/yaml.v3"
)

const vehicleSchema = `{
  "attributes": {
    "vin": {"type": "string", "required": true},
    "owner": {"type": "relation", "relation": "manyToOne", "target": "plugin::users-permissions.user"}
  }
}`

// testConfig points a development config at a temp project with one content type
func testConfig(t *testing.T) *am.Config {
	t.Helper()
	root := t.TempDir()
	apiDir := filepath.Join(root, "src", "api")
	schemaPath := filepath.Join(apiDir, "vehicle", "content-types", "vehicle", "schema.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(schemaPath), 0755))
	require.NoError(t, os.WriteFile(schemaPath, []byte(vehicleSchema), 0644))

	return &am.Config{
		Environment: am.EnvDevelopment,
		Output: am.OutputConfig{
			Location:    filepath.Join(root, "src", "genTypes"),
			SingleQuote: true,
		},
		Schema: am.SchemaConfig{
			APIDir:        apiDir,
			ComponentsDir: filepath.Join(root, "src", "components"),
		},
		Server: am.ServerConfig{Port: am.DefaultServerPort, AllowedOrigins: []string{"http://localhost"}},
	}
}

func freshGenerator(cfg *am.Config) *typegen.Generator {
	return newGenerator(context.Background(), cfg)
}

func TestNewGenerator_SharesInjectedStats(t *testing.T) {
	cfg := testConfig(t)
	stats := typegen.NewStats()
	ctx := WithStats(context.Background(), stats)

	first := newGenerator(ctx, cfg)
	second := newGenerator(ctx, cfg)
	assert.Same(t, stats, first.Stats())
	assert.Same(t, stats, second.Stats())

	require.NoError(t, first.Run(optionsFromConfig(cfg)))
	assert.Equal(t, typegen.StatusSuccess, second.Stats().Current().Status)
}

func TestNewGenerator_FreshStatsWithoutInjection(t *testing.T) {
	cfg := testConfig(t)

	a := newGenerator(context.Background(), cfg)
	b := newGenerator(context.Background(), cfg)
	require.NotNil(t, a.Stats())
	assert.NotSame(t, a.Stats(), b.Stats())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.SingleFile = true
	cfg.Output.Clear = true
	cfg.Filter.Include = []string{"api::vehicle.*"}
	cfg.ExtendTypes.User = "firstName?: string;"
	cfg.ExtendTypes.FindMany = "total?: number;"

	opts := optionsFromConfig(cfg)

	assert.Equal(t, cfg.Output.Location, opts.OutputLocation)
	assert.True(t, opts.SingleFile)
	assert.True(t, opts.ClearOutput)
	assert.True(t, opts.SingleQuote)
	assert.Equal(t, []string{"api::vehicle.*"}, opts.Filter.Include)
	assert.Empty(t, opts.Filter.Exclude)
	assert.Equal(t, "firstName?: string;", opts.ExtendTypes.User)
	assert.Equal(t, "total?: number;", opts.ExtendTypes.FindMany)
	assert.Empty(t, opts.ExtendTypes.Role)
}

func TestServerConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Environment = am.EnvProduction

	srvCfg := serverConfig(cfg)

	assert.Equal(t, am.EnvProduction, srvCfg.Environment)
	assert.Equal(t, am.DefaultServerPort, srvCfg.Port)
	assert.Equal(t, []string{"http://localhost"}, srvCfg.AllowedOrigins)
	assert.Equal(t, cfg.Output.Location, srvCfg.Options.OutputLocation)
}

func TestSchemaRoots(t *testing.T) {
	cfg := testConfig(t)
	assert.Len(t, schemaRoots(cfg), 2)

	cfg.Schema.ComponentsDir = ""
	assert.Equal(t, []string{cfg.Schema.APIDir}, schemaRoots(cfg))
}

func TestGenerateFlags_Apply(t *testing.T) {
	base := *testConfig(t)
	flags := generateFlags{
		output:     "web/types/index.ts",
		singleFile: true,
		clear:      true,
		include:    []string{"api::vehicle.*"},
		exclude:    []string{"component::fleet.*"},
	}

	tests := []struct {
		name    string
		changed []string
		check   func(t *testing.T, cfg am.Config)
	}{
		{
			name:    "nothing changed keeps config",
			changed: nil,
			check: func(t *testing.T, cfg am.Config) {
				assert.Equal(t, base.Output, cfg.Output)
				assert.Empty(t, cfg.Filter.Include)
			},
		},
		{
			name:    "output and layout",
			changed: []string{"output", "single-file"},
			check: func(t *testing.T, cfg am.Config) {
				assert.Equal(t, "web/types/index.ts", cfg.Output.Location)
				assert.True(t, cfg.Output.SingleFile)
				assert.False(t, cfg.Output.Clear)
			},
		},
		{
			name:    "filters",
			changed: []string{"include", "exclude", "clear"},
			check: func(t *testing.T, cfg am.Config) {
				assert.Equal(t, []string{"api::vehicle.*"}, cfg.Filter.Include)
				assert.Equal(t, []string{"component::fleet.*"}, cfg.Filter.Exclude)
				assert.True(t, cfg.Output.Clear)
				assert.Equal(t, base.Output.Location, cfg.Output.Location)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := make(map[string]bool)
			for _, name := range tt.changed {
				set[name] = true
			}
			changed := func(name string) bool { return set[name] }

			tt.check(t, flags.apply(changed, base))
		})
	}
}

func TestGenerateOnce_Development(t *testing.T) {
	cfg := testConfig(t)
	gen := freshGenerator(cfg)

	ran, err := generateOnce(cfg, gen)
	require.NoError(t, err)
	assert.True(t, ran)

	content, err := os.ReadFile(filepath.Join(cfg.Output.Location, "vehicle.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "import { User } from './user';")
	assert.Equal(t, typegen.StatusSuccess, gen.Stats().Current().Status)
}

func TestGenerateOnce_SkippedOutsideDevelopment(t *testing.T) {
	for _, env := range []string{am.EnvProduction, "staging", "test"} {
		t.Run(env, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Environment = env
			gen := freshGenerator(cfg)

			ran, err := generateOnce(cfg, gen)
			require.NoError(t, err)
			assert.False(t, ran)

			_, statErr := os.Stat(cfg.Output.Location)
			assert.True(t, os.IsNotExist(statErr))
			assert.Equal(t, typegen.StatusNeverRun, gen.Stats().Current().Status)
		})
	}
}

func TestRegenerateOnChange(t *testing.T) {
	t.Run("development writes output", func(t *testing.T) {
		cfg := testConfig(t)
		gen := freshGenerator(cfg)

		require.NoError(t, regenerateOnChange(gen, cfg.Environment, optionsFromConfig(cfg))())
		_, err := os.Stat(filepath.Join(cfg.Output.Location, "vehicle.ts"))
		assert.NoError(t, err)
	})

	t.Run("production refusal is swallowed and not recorded", func(t *testing.T) {
		cfg := testConfig(t)
		gen := freshGenerator(cfg)

		require.NoError(t, regenerateOnChange(gen, am.EnvProduction, optionsFromConfig(cfg))())
		assert.Equal(t, typegen.StatusNeverRun, gen.Stats().Current().Status)
	})

	t.Run("generation failure is returned", func(t *testing.T) {
		cfg := testConfig(t)
		broken := filepath.Join(cfg.Schema.APIDir, "broken", "content-types", "broken", "schema.json")
		require.NoError(t, os.MkdirAll(filepath.Dir(broken), 0755))
		require.NoError(t, os.WriteFile(broken, []byte(`{"attributes": `), 0644))
		gen := freshGenerator(cfg)

		err := regenerateOnChange(gen, cfg.Environment, optionsFromConfig(cfg))()
		require.Error(t, err)
		assert.Equal(t, typegen.StatusError, gen.Stats().Current().Status)
	})
}

func TestStaleError(t *testing.T) {
	assert.NoError(t, staleError(&typegen.CheckResult{UpToDate: true}))

	err := staleError(&typegen.CheckResult{Differences: []string{"vehicle.ts", "user.ts (missing)"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 file(s) differ")
	assert.Contains(t, errors.FlattenHints(err), "gentypes generate")
}

func TestCheck_AfterGenerate(t *testing.T) {
	cfg := testConfig(t)
	gen := freshGenerator(cfg)
	_, err := generateOnce(cfg, gen)
	require.NoError(t, err)

	result, err := typegen.Check(gen, optionsFromConfig(cfg))
	require.NoError(t, err)
	assert.NoError(t, staleError(result))
}

func TestRenderConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExtendTypes.User = "firstName?: string;"

	t.Run("toml", func(t *testing.T) {
		data, err := renderConfig(cfg, "toml")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "# gentypes configuration\n"))
		assert.Contains(t, string(data), "[output]")
		assert.Contains(t, string(data), "firstName?: string;")
	})

	t.Run("json", func(t *testing.T) {
		data, err := renderConfig(cfg, "json")
		require.NoError(t, err)

		var decoded am.Config
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, cfg.Output.Location, decoded.Output.Location)
		assert.Equal(t, cfg.ExtendTypes.User, decoded.ExtendTypes.User)
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := renderConfig(cfg, "yaml")
		require.NoError(t, err)

		var decoded am.Config
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, cfg.Schema.APIDir, decoded.Schema.APIDir)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := renderConfig(cfg, "ini")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}
