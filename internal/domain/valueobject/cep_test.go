package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
)

func TestNewCEP_Valido(t *testing.T) {
	cep, err := valueobject.NewCEP("01310-100")
	require.NoError(t, err)
	assert.Equal(t, "01310100", cep.String())
	assert.Equal(t, "01310-100", cep.Formatted())
}

func TestNewCEP_Invalido(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"vazio", "", domain.ErrEmptyInput},
		{"curto", "0131010", domain.ErrInvalidLength},
		{"longo", "013101000", domain.ErrInvalidLength},
		{"letras", "01310abc", domain.ErrNonNumeric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := valueobject.NewCEP(tc.raw)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
