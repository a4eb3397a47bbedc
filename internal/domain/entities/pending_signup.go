package entities

import "time"

// Status possíveis de um cadastro pendente
const (
	SignupStatusPending  = "pending"
	SignupStatusApproved = "approved"
	SignupStatusRejected = "rejected"
)

// PendingSignup é um cadastro aguardando aprovação de um admin.
// Chaveado por email porque o fluxo de aprovação do painel opera
// sobre o email exibido no card do usuário.
type PendingSignup struct {
	ID        string
	UserID    string
	Email     string
	Status    string
	CreatedAt time.Time
}

// IsPending verifica se o cadastro ainda aguarda decisão
func (p PendingSignup) IsPending() bool {
	return p.Status == SignupStatusPending
}
