package brdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abastece/abastece-api/pkg/brdoc"
)

func TestIsValidCNPJ(t *testing.T) {
	cases := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"cnpj válido", "11222333000181", true},
		{"cnpj válido banco do brasil", "00000000000191", true},
		{"dígito verificador errado", "11222333000182", false},
		{"todos os dígitos iguais", "11111111111111", false},
		{"curto demais", "1122233300018", false},
		{"com máscara", "11.222.333/0001-81", false},
		{"letras", "1122233300018a", false},
		{"vazio", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, brdoc.IsValidCNPJ(tc.cnpj))
		})
	}
}

func TestIsValidUF(t *testing.T) {
	assert.True(t, brdoc.IsValidUF("SP"))
	assert.True(t, brdoc.IsValidUF("to"))
	assert.True(t, brdoc.IsValidUF(" rj "))
	assert.False(t, brdoc.IsValidUF("XX"))
	assert.False(t, brdoc.IsValidUF(""))
	assert.False(t, brdoc.IsValidUF("SPP"))
}

func TestNormalizeUF(t *testing.T) {
	assert.Equal(t, "MG", brdoc.NormalizeUF(" mg "))
}
