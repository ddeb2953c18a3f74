// Package permissions holds the route to role table enforced by the RBAC middleware.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var embedded []byte

// Permission lists the roles allowed on one route pattern. Skip marks a public route.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. An empty role list allows any authenticated caller.
func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the entry for the chi route pattern and method, or a zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	for _, endpoint := range r.Endpoints {
		if endpoint.Method == method && endpoint.Path == path {
			return endpoint
		}
	}

	return Permission{}
}

// Parse decodes a permission table and rejects entries without a path or method.
func Parse(data []byte) (*PermissionData, error) {
	var table PermissionData

	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode permissions: %w", err)
	}

	for i, endpoint := range table.Endpoints {
		if endpoint.Path == "" || endpoint.Method == "" {
			return nil, fmt.Errorf("permission entry %d: path and method are required", i)
		}
	}

	return &table, nil
}

// Get loads the embedded table. A broken table leaves the RBAC middleware denying every request.
func Get() *PermissionData {
	table, err := Parse(embedded)
	if err != nil {
		log.Error().Err(err).Msg("embedded permissions are invalid")

		return nil
	}

	log.Info().Int("endpoints", len(table.Endpoints)).Msg("permissions loaded")

	return table
}
