package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Permission representa uma permissão específica
type Permission string

const (
	PermissionViewDashboard     Permission = "view_dashboard"
	PermissionEditProfile       Permission = "edit_profile"
	PermissionViewAnalytics     Permission = "view_analytics"
	PermissionUseAPI            Permission = "use_api"
	PermissionUploadFiles       Permission = "upload_files"
	PermissionCreateThreads     Permission = "create_threads"
	PermissionModerateContent   Permission = "moderate_content"
	PermissionViewUserReports   Permission = "view_user_reports"
	PermissionManageUserContent Permission = "manage_user_content"
	PermissionManageUsers       Permission = "manage_users"
	PermissionViewAdminPanel    Permission = "view_admin_panel"
	PermissionSystemSettings    Permission = "system_settings"
	PermissionBulkOperations    Permission = "bulk_operations"
	PermissionViewSystemLogs    Permission = "view_system_logs"
)

var userPermissions = []Permission{
	PermissionViewDashboard,
	PermissionEditProfile,
	PermissionViewAnalytics,
	PermissionUseAPI,
	PermissionUploadFiles,
	PermissionCreateThreads,
}

var moderatorPermissions = append(userPermissions[:len(userPermissions):len(userPermissions)],
	PermissionModerateContent,
	PermissionViewUserReports,
	PermissionManageUserContent,
)

var adminPermissions = append(moderatorPermissions[:len(moderatorPermissions):len(moderatorPermissions)],
	PermissionManageUsers,
	PermissionViewAdminPanel,
	PermissionSystemSettings,
	PermissionBulkOperations,
	PermissionViewSystemLogs,
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleUser:      userPermissions,
	RoleModerator: moderatorPermissions,
	RoleAdmin:     adminPermissions,
}

// roleLevels define a hierarquia: papéis superiores incluem os inferiores
var roleLevels = map[Role]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// IsValid verifica se o role é um dos papéis conhecidos
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Level retorna o nível hierárquico do role (0 para desconhecido)
func (r Role) Level() int {
	return roleLevels[r]
}

// AtLeast verifica se o role tem nível igual ou superior ao exigido
func (r Role) AtLeast(required Role) bool {
	return r.Level() >= required.Level() && required.Level() > 0
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
