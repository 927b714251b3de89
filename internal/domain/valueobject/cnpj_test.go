package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
)

func TestNewCNPJ_ValidoComMascara(t *testing.T) {
	cnpj, err := valueobject.NewCNPJ("11.222.333/0001-81")
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", cnpj.String())
	assert.Equal(t, "11.222.333/0001-81", cnpj.Formatted())
}

func TestNewCNPJ_ValidoSemMascara(t *testing.T) {
	cnpj, err := valueobject.NewCNPJ("11444777000161")
	require.NoError(t, err)
	assert.Equal(t, "11444777000161", cnpj.String())
	assert.Equal(t, "11.444.777/0001-61", cnpj.Formatted())
}

func TestNewCNPJ_RoundTripNormalizarFormatarNormalizar(t *testing.T) {
	// Formatted repassado pela mesma limpeza devolve os dígitos originais.
	original, err := valueobject.NewCNPJ(" 11 222 333 0001 81 ")
	require.NoError(t, err)

	reparsed, err := valueobject.NewCNPJ(original.Formatted())
	require.NoError(t, err)
	assert.True(t, original.Equals(reparsed))
	assert.Equal(t, original.String(), reparsed.String())
}

func TestNewCNPJ_Invalido(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"vazio", "", domain.ErrEmptyInput},
		{"somente mascara", " ./- ", domain.ErrEmptyInput},
		{"curto", "1122233300018", domain.ErrInvalidLength},
		{"longo", "112223330001811", domain.ErrInvalidLength},
		{"letras", "11a22333000181", domain.ErrNonNumeric},
		{"todos zeros", "00000000000000", domain.ErrRepeatedDigits},
		{"todos iguais", "99.999.999/9999-99", domain.ErrRepeatedDigits},
		{"primeiro verificador errado", "12345678000100", domain.ErrChecksumMismatch},
		{"segundo verificador errado", "11222333000182", domain.ErrChecksumMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := valueobject.NewCNPJ(tc.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCNPJ_Equals(t *testing.T) {
	a, err := valueobject.NewCNPJ("11.222.333/0001-81")
	require.NoError(t, err)
	b, err := valueobject.NewCNPJ("11222333000181")
	require.NoError(t, err)
	c, err := valueobject.NewCNPJ("11444777000161")
	require.NoError(t, err)

	assert.True(t, a.Equals(b), "mesmos dígitos, máscaras diferentes")
	assert.False(t, a.Equals(c))
}
