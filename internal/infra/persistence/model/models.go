// Package model holds the GORM table mappings of the gateway.
package model

// All lists every table model in creation order, parents before children.
func All() []any {
	return []any{
		&PrincipalModel{},
		&CredentialModel{},
		&AllowedOriginModel{},
		&AllowedEndpointModel{},
		&PermissionScopeModel{},
	}
}
