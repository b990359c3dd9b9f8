package schema

import (
	"path/filepath"
	"strings"

	"github.com/teranos/gentypes/typegen/util"
)

// Core model identifiers. They are exempt from include filtering.
const (
	CoreUserID = "plugin::users-permissions.user"
	CoreRoleID = "plugin::users-permissions.role"
)

// Identifier namespaces
const (
	ContentTypeNamespace = "api"
	ComponentNamespace   = "component"
)

// Identity names a schema file for filtering and emission
type Identity struct {
	// ID is the model identifier matched by filters: api::vehicle.vehicle, component::fleet.service-record
	ID string
	// ModelName is the per-file model name: vehicle, fleet.service-record
	ModelName string
	// DisplayName is the interface name: Vehicle, FleetServiceRecord
	DisplayName string
	// FileName is the multi-file output name: vehicle.ts, fleetServiceRecord.ts
	FileName string
	// ListingName keys the interface-string map.
	// Components list under their category only, so a category with several
	// components collapses to one entry there while still emitting one file each.
	ListingName string
}

// ContentTypeIdentity derives identity from the schema's parent directory
func ContentTypeIdentity(path string) Identity {
	dir := filepath.Base(filepath.Dir(path))
	return Identity{
		ID:          ContentTypeNamespace + "::" + dir + "." + dir,
		ModelName:   dir,
		DisplayName: util.ToPascalCase(dir),
		FileName:    util.ToCamelCase(dir) + ".ts",
		ListingName: dir,
	}
}

// ComponentIdentity derives identity from <category>/<name>.json
func ComponentIdentity(path string) Identity {
	category := filepath.Base(filepath.Dir(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	model := category + "." + name
	return Identity{
		ID:          ComponentID(model),
		ModelName:   model,
		DisplayName: util.ToPascalCase(model),
		FileName:    util.ToCamelCase(model) + ".ts",
		ListingName: category,
	}
}

// ComponentID returns the identifier for a component reference such as "fleet.service-record"
func ComponentID(component string) string {
	return ComponentNamespace + "::" + component
}

// DisplayNameFromTarget derives an interface name from a relation target.
// "plugin::users-permissions.user" -> "User", "api::maintenance-record.maintenance-record" -> "MaintenanceRecord"
func DisplayNameFromTarget(target string) string {
	last := target
	if i := strings.LastIndex(target, "."); i >= 0 {
		last = target[i+1:]
	}
	return util.ToPascalCase(last)
}

// ComponentDisplayName derives an interface name from a component reference.
// "fleet.service-record" -> "FleetServiceRecord"
func ComponentDisplayName(component string) string {
	return util.ToPascalCase(component)
}
