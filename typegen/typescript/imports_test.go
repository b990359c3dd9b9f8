package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportLine(t *testing.T) {
	tests := []struct {
		model string
		quote string
		want  string
	}{
		{"Vehicle", SingleQuote, "import { Vehicle } from './vehicle';"},
		{"MaintenanceRecord", SingleQuote, "import { MaintenanceRecord } from './maintenanceRecord';"},
		{"FleetServiceRecord", DoubleQuote, `import { FleetServiceRecord } from "./fleetServiceRecord";`},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, ImportLine(tt.model, tt.quote))
		})
	}
}

func TestQuoteFor(t *testing.T) {
	assert.Equal(t, "'", QuoteFor(true))
	assert.Equal(t, `"`, QuoteFor(false))
}

func TestRenderModelFile(t *testing.T) {
	iface := &Interface{
		Name:    "Vehicle",
		Imports: []string{"MaintenanceRecord", "Vehicle", "Media"},
		Body:    "export interface Vehicle {\n};\n",
	}

	got := RenderModelFile(iface, SingleQuote)
	assert.Equal(t, "import { MaintenanceRecord } from './maintenanceRecord';\nimport { Media } from './media';\n\nexport interface Vehicle {\n};\n", got)
}

func TestRenderModelFile_NoImports(t *testing.T) {
	iface := &Interface{Name: "Fleet", Body: "export interface Fleet {\n};\n"}
	assert.Equal(t, "\n\nexport interface Fleet {\n};\n", RenderModelFile(iface, SingleQuote))
}

func TestRenderBuiltinFile(t *testing.T) {
	user := Builtins(Extensions{})[1]
	got := RenderBuiltinFile(user, SingleQuote)
	assert.Equal(t, "import { Role } from './role';\n"+user.Body, got)

	role := Builtins(Extensions{})[2]
	assert.Equal(t, role.Body, RenderBuiltinFile(role, DoubleQuote))
}

func TestImportSet_Unresolved(t *testing.T) {
	set := NewImportSet()
	set.Add("MaintenanceRecord", "User", "Media")
	set.Add("MaintenanceRecord", "Author", "FindMany")

	declared := map[string]bool{"MaintenanceRecord": true, "Vehicle": true}
	assert.Equal(t, []string{"Author"}, set.Unresolved(declared))
	assert.Empty(t, NewImportSet().Unresolved(nil))
}
