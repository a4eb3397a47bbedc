package aggregation

import (
	"github.com/rafabene/userhub-backend/internal/domain/ports"
)

// TableResult é o resultado explícito do fetch de uma tabela lógica.
// Torna visível na assinatura a política de degradação: tabelas
// opcionais com erro viram conjunto vazio, nunca abortam a listagem.
type TableResult[T any] struct {
	Rows []T
	Err  error
}

// FetchResult embala o retorno padrão (rows, err) de um repositório
func FetchResult[T any](rows []T, err error) TableResult[T] {
	return TableResult[T]{Rows: rows, Err: err}
}

// OrEmpty devolve as linhas, degradando falha para tabela vazia com um
// warn no log. Uso reservado a tabelas documentadas como opcionais.
func (r TableResult[T]) OrEmpty(log ports.Logger, table string) []T {
	if r.Err != nil {
		if log != nil {
			log.Warn("optional table fetch failed, degrading to empty set",
				"table", table,
				"error", r.Err,
			)
		}
		return nil
	}
	return r.Rows
}
