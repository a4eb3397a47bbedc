package entities

import "time"

// Profile é o perfil editável do usuário, chaveado pelo id da conta.
// Zero-ou-um por conta.
type Profile struct {
	ID        string
	Email     string
	FullName  string
	FirstName string
	LastName  string
	AvatarURL string
	Website   string
	Username  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoleAssignment é a atribuição explícita de papel (tabela user_roles).
// Quando presente, tem precedência sobre Profile.Role.
type RoleAssignment struct {
	UserID string
	Role   Role
}
