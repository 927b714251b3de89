package valueobject

import (
	"github.com/parceiroslab/cadastro-api/internal/domain"
)

// Pesos do módulo 11 para os dois dígitos verificadores do CPF:
// 10..2 sobre os 9 primeiros e 11..2 sobre os 10 primeiros.
var (
	cpfWeightsFirst  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeightsSecond = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CPF é o documento de pessoa física: 11 dígitos normalizados.
type CPF struct {
	value string
}

// NewCPF valida e normaliza um CPF, mesma disciplina do CNPJ:
// limpa máscara, exige 11 dígitos, rejeita sequência degenerada
// (todos iguais) e confere os dois verificadores.
func NewCPF(raw string) (CPF, error) {
	clean := cleanDocument(raw)
	if clean == "" {
		return CPF{}, domain.ErrEmptyInput
	}
	if len(clean) != 11 {
		return CPF{}, domain.ErrInvalidLength
	}
	if !allDigits(clean) {
		return CPF{}, domain.ErrNonNumeric
	}
	if allSameDigit(clean) {
		return CPF{}, domain.ErrRepeatedDigits
	}
	if int(clean[9]-'0') != mod11CheckDigit(clean, cpfWeightsFirst) {
		return CPF{}, domain.ErrChecksumMismatch
	}
	if int(clean[10]-'0') != mod11CheckDigit(clean, cpfWeightsSecond) {
		return CPF{}, domain.ErrChecksumMismatch
	}
	return CPF{value: clean}, nil
}

// String devolve os 11 dígitos normalizados.
func (c CPF) String() string { return c.value }

// Formatted devolve o CPF no formato NNN.NNN.NNN-NN.
func (c CPF) Formatted() string {
	v := c.value
	return v[0:3] + "." + v[3:6] + "." + v[6:9] + "-" + v[9:11]
}

// Equals compara pelos dígitos normalizados.
func (c CPF) Equals(other CPF) bool { return c.value == other.value }

func (CPF) isDocument() {}
