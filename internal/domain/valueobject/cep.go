package valueobject

import (
	"github.com/parceiroslab/cadastro-api/internal/domain"
)

// CEP é um código postal brasileiro com 8 dígitos normalizados.
// O agregado aceita o CEP do formulário apenas como texto não vazio;
// este objeto de valor é exigido onde o código precisa ser consultável
// (ViaCEP), que só responde para CEPs bem formados.
type CEP struct {
	value string
}

// NewCEP valida e normaliza um CEP (aceita "01310-100" ou "01310100").
func NewCEP(raw string) (CEP, error) {
	clean := cleanDocument(raw)
	if clean == "" {
		return CEP{}, domain.ErrEmptyInput
	}
	if len(clean) != 8 {
		return CEP{}, domain.ErrInvalidLength
	}
	if !allDigits(clean) {
		return CEP{}, domain.ErrNonNumeric
	}
	return CEP{value: clean}, nil
}

// String devolve os 8 dígitos normalizados.
func (c CEP) String() string { return c.value }

// Formatted devolve o CEP no formato NNNNN-NNN.
func (c CEP) Formatted() string {
	return c.value[0:5] + "-" + c.value[5:8]
}
