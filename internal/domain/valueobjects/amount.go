package valueobjects

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount é um valor monetário/numérico com decodificação tolerante.
// Registros de uso chegam do backend com `cost` ora numérico, ora string,
// ora ausente ou lixo; qualquer coisa que não pareça número vira 0 ao
// invés de derrubar a agregação inteira.
type Amount float64

// Float64 retorna o valor como float64
func (a Amount) Float64() float64 {
	return float64(a)
}

// UnmarshalJSON aceita número JSON, número entre aspas, null ou lixo.
// Nunca retorna erro por valor malformado.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	// Número entre aspas: remover aspas antes de converter
	if len(trimmed) >= 2 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		trimmed = strings.TrimSpace(s)
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		*a = Amount(f)
	}
	return nil
}

// MarshalJSON serializa como número JSON
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Scan implementa sql.Scanner com a mesma tolerância do UnmarshalJSON
func (a *Amount) Scan(value any) error {
	*a = 0

	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		*a = Amount(v)
	case int64:
		*a = Amount(v)
	case []byte:
		if f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64); err == nil {
			*a = Amount(f)
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*a = Amount(f)
		}
	default:
		if f, err := strconv.ParseFloat(fmt.Sprint(v), 64); err == nil {
			*a = Amount(f)
		}
	}
	return nil
}

// Value implementa driver.Valuer
func (a Amount) Value() (driver.Value, error) {
	return float64(a), nil
}
