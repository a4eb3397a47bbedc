package valueobjects

import (
	"encoding/json"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected float64
	}{
		{"número JSON", `1.5`, 1.5},
		{"inteiro JSON", `42`, 42},
		{"número entre aspas", `"2.75"`, 2.75},
		{"string não numérica vira zero", `"abc"`, 0},
		{"null vira zero", `null`, 0},
		{"string vazia vira zero", `""`, 0},
		{"string com espaços", `" 3.5 "`, 3.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tc.input), &a); err != nil {
				t.Fatalf("unmarshal de %s retornou erro: %v", tc.input, err)
			}
			if a.Float64() != tc.expected {
				t.Errorf("esperava %v, obteve %v", tc.expected, a.Float64())
			}
		})
	}
}

func TestAmount_Scan(t *testing.T) {
	cases := []struct {
		name     string
		input    any
		expected float64
	}{
		{"float64", float64(1.5), 1.5},
		{"int64", int64(10), 10},
		{"bytes numéricos", []byte("2.5"), 2.5},
		{"string numérica", "7.25", 7.25},
		{"string lixo vira zero", "garbage", 0},
		{"nil vira zero", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			if err := a.Scan(tc.input); err != nil {
				t.Fatalf("scan retornou erro: %v", err)
			}
			if a.Float64() != tc.expected {
				t.Errorf("esperava %v, obteve %v", tc.expected, a.Float64())
			}
		})
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Amount(1.5))
	if err != nil {
		t.Fatalf("marshal retornou erro: %v", err)
	}
	if string(data) != "1.5" {
		t.Errorf("esperava '1.5', obteve '%s'", data)
	}
}

func TestEmail(t *testing.T) {
	t.Run("normaliza para minúsculas", func(t *testing.T) {
		email, err := NewEmail("  User@Example.COM ")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if email.String() != "user@example.com" {
			t.Errorf("esperava 'user@example.com', obteve '%s'", email.String())
		}
	})

	t.Run("rejeita formato inválido", func(t *testing.T) {
		for _, input := range []string{"", "semarroba", "a@b", "@example.com"} {
			if _, err := NewEmail(input); err == nil {
				t.Errorf("esperava erro para '%s'", input)
			}
		}
	})
}
