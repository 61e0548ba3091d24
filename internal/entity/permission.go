package entity

import "slices"

type Permission string

const (
	PermissionTechnicalSettings     Permission = "technical_settings"
	PermissionManageCompanies       Permission = "manage_companies"
	PermissionManageUsers           Permission = "manage_users"
	PermissionApproveUnavailability Permission = "approve_unavailability"
)

var rolesByPermission = map[Permission][]Role{
	PermissionTechnicalSettings: {
		RoleSuperAdmin,
	},
	PermissionManageCompanies: {
		RoleAdmin,
		RoleSuperAdmin,
	},
	PermissionManageUsers: {
		RoleSuperAdmin,
		RoleAdmin,
		RoleResponsabile,
	},
	PermissionApproveUnavailability: {
		RoleSuperAdmin,
		RoleAdmin,
		RoleResponsabile,
	},
}

func RolesFor(p Permission) []Role {
	return slices.Clone(rolesByPermission[p])
}

func HasPermission(role Role, p Permission) bool {
	return slices.Contains(rolesByPermission[p], role)
}
