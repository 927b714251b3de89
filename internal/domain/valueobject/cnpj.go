package valueobject

import (
	"github.com/parceiroslab/cadastro-api/internal/domain"
)

// Pesos oficiais do módulo 11 para os dois dígitos verificadores do CNPJ.
var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CNPJ é o documento de pessoa jurídica: 14 dígitos normalizados.
type CNPJ struct {
	value string
}

// NewCNPJ valida e normaliza um CNPJ. Aceita entrada com ou sem máscara
// (pontos, barra, hífen, espaços). Regras, na ordem:
// entrada vazia, 14 dígitos, somente dígitos, dígitos não todos iguais,
// dois verificadores por soma ponderada módulo 11.
func NewCNPJ(raw string) (CNPJ, error) {
	clean := cleanDocument(raw)
	if clean == "" {
		return CNPJ{}, domain.ErrEmptyInput
	}
	if len(clean) != 14 {
		return CNPJ{}, domain.ErrInvalidLength
	}
	if !allDigits(clean) {
		return CNPJ{}, domain.ErrNonNumeric
	}
	if allSameDigit(clean) {
		return CNPJ{}, domain.ErrRepeatedDigits
	}
	if int(clean[12]-'0') != mod11CheckDigit(clean, cnpjWeightsFirst) {
		return CNPJ{}, domain.ErrChecksumMismatch
	}
	if int(clean[13]-'0') != mod11CheckDigit(clean, cnpjWeightsSecond) {
		return CNPJ{}, domain.ErrChecksumMismatch
	}
	return CNPJ{value: clean}, nil
}

// String devolve os 14 dígitos normalizados.
func (c CNPJ) String() string { return c.value }

// Formatted devolve o CNPJ no formato NN.NNN.NNN/NNNN-NN.
func (c CNPJ) Formatted() string {
	v := c.value
	return v[0:2] + "." + v[2:5] + "." + v[5:8] + "/" + v[8:12] + "-" + v[12:14]
}

// Equals compara pelos dígitos normalizados.
func (c CNPJ) Equals(other CNPJ) bool { return c.value == other.value }

func (CNPJ) isDocument() {}
