package entities

import (
	"time"

	"github.com/rafabene/userhub-backend/internal/domain/valueobjects"
)

// UsageRecord é um registro de consumo de API (tabela api_usage).
// Cost usa Amount porque o backend devolve o campo ora como número,
// ora como string, ora lixo; valores malformados contam como 0.
type UsageRecord struct {
	ID          string
	UserID      string
	TotalTokens int64
	Cost        valueobjects.Amount
	CreatedAt   time.Time
}

// ContentRef referencia um objeto de conteúdo pertencente a um usuário
// (thread de chat, upload de arquivo ou assistente customizado).
// Para a agregação só importa a contagem por usuário.
type ContentRef struct {
	ID     string
	UserID string
}
