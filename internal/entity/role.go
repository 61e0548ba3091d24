package entity

// Role is taken from the access token as is. Roles missing from the permission table
// still authenticate but hold no permission.
type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleAdmin        Role = "ADMIN"
	RoleResponsabile Role = "RESPONSABILE"
	RoleWorker       Role = "worker"
)
