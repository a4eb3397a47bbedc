package entities

// Account é a identidade externa mantida pelo provedor de autenticação.
// Os timestamps ficam como strings opacas no formato do provedor
// (ISO-8601 com Z ou offset); o parsing tolerante acontece apenas na
// camada de apresentação (rótulo de recência).
type Account struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	CreatedAt        string `json:"created_at"`
	EmailConfirmedAt string `json:"email_confirmed_at"`
	LastSignInAt     string `json:"last_sign_in_at"`
}

// IsUsable verifica se a conta tem o mínimo para ser exibida.
// Contas sem id ou email são descartadas na agregação.
func (a Account) IsUsable() bool {
	return a.ID != "" && a.Email != ""
}
