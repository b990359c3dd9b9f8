package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeIdentity(t *testing.T) {
	tests := []struct {
		path string
		want Identity
	}{
		{
			path: "/app/src/api/vehicle/schema.json",
			want: Identity{
				ID:          "api::vehicle.vehicle",
				ModelName:   "vehicle",
				DisplayName: "Vehicle",
				FileName:    "vehicle.ts",
				ListingName: "vehicle",
			},
		},
		{
			path: "/app/src/api/maintenance-record/content-types/maintenance-record/schema.json",
			want: Identity{
				ID:          "api::maintenance-record.maintenance-record",
				ModelName:   "maintenance-record",
				DisplayName: "MaintenanceRecord",
				FileName:    "maintenanceRecord.ts",
				ListingName: "maintenance-record",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.want.ModelName, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentTypeIdentity(filepath.FromSlash(tt.path)))
		})
	}
}

func TestComponentIdentity(t *testing.T) {
	got := ComponentIdentity(filepath.FromSlash("/app/src/components/fleet/service-record.json"))

	assert.Equal(t, Identity{
		ID:          "component::fleet.service-record",
		ModelName:   "fleet.service-record",
		DisplayName: "FleetServiceRecord",
		FileName:    "fleetServiceRecord.ts",
		ListingName: "fleet",
	}, got)
}

func TestComponentIdentity_CategoryCollapsesInListing(t *testing.T) {
	a := ComponentIdentity("/c/fleet/service-record.json")
	b := ComponentIdentity("/c/fleet/tyre.json")

	assert.NotEqual(t, a.FileName, b.FileName)
	assert.Equal(t, a.ListingName, b.ListingName)
}

func TestIdentity_Deterministic(t *testing.T) {
	path := "/app/src/api/vehicle/schema.json"
	assert.Equal(t, ContentTypeIdentity(path), ContentTypeIdentity(path))
}

func TestDisplayNameFromTarget(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"api::vehicle.vehicle", "Vehicle"},
		{"api::maintenance-record.maintenance-record", "MaintenanceRecord"},
		{CoreUserID, "User"},
		{CoreRoleID, "Role"},
		{"plugin::upload.file", "File"},
		{"noDots", "NoDots"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayNameFromTarget(tt.target), tt.target)
	}
}

func TestComponentHelpers(t *testing.T) {
	assert.Equal(t, "component::fleet.service-record", ComponentID("fleet.service-record"))
	assert.Equal(t, "FleetServiceRecord", ComponentDisplayName("fleet.service-record"))
}
