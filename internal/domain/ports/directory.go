package ports

import (
	"context"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
)

// AccountDirectory é a fronteira com o provedor de autenticação externo.
// As contas pertencem ao provedor; este serviço apenas as lê.
type AccountDirectory interface {
	// ListAccounts retorna todas as contas conhecidas pelo provedor.
	ListAccounts(ctx context.Context) ([]entities.Account, error)
}
