package entities

// Preference guarda as preferências de interface do usuário.
// Zero-ou-um por conta; defaults aplicam quando ausente.
type Preference struct {
	UserID             string
	Theme              string
	Language           string
	Notifications      bool
	EmailNotifications bool
}

// DefaultPreference retorna as preferências padrão de uma conta
func DefaultPreference(userID string) Preference {
	return Preference{
		UserID:             userID,
		Theme:              "light",
		Language:           "en",
		Notifications:      true,
		EmailNotifications: true,
	}
}
