// Package brdoc valida documentos e códigos brasileiros usados pela API:
// CNPJ (14 dígitos com dígitos verificadores) e UF (conjunto fechado de 27 estados).
package brdoc

import "strings"

// UFs válidas (IBGE). Conjunto fechado; qualquer outro código é rejeitado.
var validUFs = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// IsValidUF verifica se o código de estado pertence ao conjunto válido.
// A comparação não é sensível a maiúsculas.
func IsValidUF(uf string) bool {
	_, ok := validUFs[strings.ToUpper(strings.TrimSpace(uf))]
	return ok
}

// NormalizeUF devolve a UF em maiúsculas, sem espaços.
func NormalizeUF(uf string) string {
	return strings.ToUpper(strings.TrimSpace(uf))
}

// Pesos dos dígitos verificadores do CNPJ.
var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCNPJ valida um CNPJ numérico de 14 dígitos (sem máscara).
// Sequências de um único dígito repetido são rejeitadas.
func IsValidCNPJ(cnpj string) bool {
	if len(cnpj) != 14 {
		return false
	}
	digits := make([]int, 14)
	allEqual := true
	for i, r := range cnpj {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			allEqual = false
		}
	}
	if allEqual {
		return false
	}
	if digits[12] != cnpjCheckDigit(digits[:12], cnpjWeightsFirst) {
		return false
	}
	return digits[13] == cnpjCheckDigit(digits[:13], cnpjWeightsSecond)
}

// cnpjCheckDigit calcula o dígito verificador: soma ponderada módulo 11;
// resto menor que 2 resulta em 0, senão 11 menos o resto.
func cnpjCheckDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
