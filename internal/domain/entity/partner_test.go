package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/entity"
)

// validLegalInput devolve um formulário PJ completo e válido.
func validLegalInput() entity.PartnerInput {
	return entity.PartnerInput{
		Name:     "  Empresa Exemplo LTDA  ",
		Document: "11.222.333/0001-81",
		Email:    "Contato@Empresa.COM.BR",
		Address: entity.AddressInput{
			CEP:      "01310-100",
			UF:       "sp",
			City:     " São Paulo ",
			Street:   "Avenida Paulista",
			Number:   "1000",
			District: "Bela Vista",
		},
		Phone: " (11) 99999-0001 ",
		Notes: "  ",
	}
}

// validNaturalInput devolve um formulário PF completo e válido.
func validNaturalInput() entity.PartnerInput {
	in := validLegalInput()
	in.Name = "Leonardo Souza"
	in.Document = "123.456.789-09"
	in.Email = "leo@gmail.com"
	return in
}

func TestNewLegalPerson_Valido(t *testing.T) {
	p, err := entity.NewLegalPerson(validLegalInput())
	require.NoError(t, err)

	assert.True(t, p.IsLegalPerson())
	assert.False(t, p.IsNaturalPerson())
	assert.Equal(t, "Empresa Exemplo LTDA", p.Name())
	assert.Equal(t, "11222333000181", p.Document().String())
	assert.Equal(t, "11.222.333/0001-81", p.FormattedDocument())
	assert.Equal(t, "contato@empresa.com.br", p.Email().String())
	assert.True(t, p.HasCorporateEmail())
	assert.Equal(t, entity.PersonTypeLegal, p.PersonType())
	assert.Equal(t, "Pessoa Jurídica", p.PersonTypeLabel())
	assert.False(t, p.CreatedAt().IsZero())
	assert.Equal(t, p.CreatedAt(), p.UpdatedAt())
}

func TestNewLegalPerson_NormalizaEndereco(t *testing.T) {
	p, err := entity.NewLegalPerson(validLegalInput())
	require.NoError(t, err)

	addr := p.Address()
	assert.Equal(t, "01310100", addr.CEP, "CEP guarda só dígitos")
	assert.Equal(t, "SP", addr.UF, "UF em maiúsculas")
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "", addr.Complement, "complemento em branco fica ausente")
	assert.Equal(t, "(11) 99999-0001", p.Phone())
	assert.Equal(t, "", p.Notes(), "observações em branco ficam ausentes")
}

func TestNewNaturalPerson_Valido(t *testing.T) {
	p, err := entity.NewNaturalPerson(validNaturalInput())
	require.NoError(t, err)

	assert.True(t, p.IsNaturalPerson())
	assert.False(t, p.IsLegalPerson())
	assert.Equal(t, "123.456.789-09", p.FormattedDocument())
	assert.False(t, p.HasCorporateEmail(), "gmail.com é provedor pessoal")
	assert.Equal(t, "Pessoa Física", p.PersonTypeLabel())
}

func TestNewLegalPerson_ExclusividadeDoDocumento(t *testing.T) {
	// Exatamente um documento por construção: PJ nunca é PF e vice-versa.
	pj, err := entity.NewLegalPerson(validLegalInput())
	require.NoError(t, err)
	pf, err := entity.NewNaturalPerson(validNaturalInput())
	require.NoError(t, err)

	assert.NotEqual(t, pj.IsLegalPerson(), pj.IsNaturalPerson())
	assert.NotEqual(t, pf.IsLegalPerson(), pf.IsNaturalPerson())
}

func TestNewLegalPerson_CampoObrigatorioAusente(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.PartnerInput)
		field  string
	}{
		{"razao social", func(in *entity.PartnerInput) { in.Name = "   " }, "razao_social"},
		{"cep", func(in *entity.PartnerInput) { in.Address.CEP = "" }, "cep"},
		{"uf", func(in *entity.PartnerInput) { in.Address.UF = " " }, "uf"},
		{"cidade", func(in *entity.PartnerInput) { in.Address.City = "" }, "cidade"},
		{"logradouro", func(in *entity.PartnerInput) { in.Address.Street = "" }, "logradouro"},
		{"numero", func(in *entity.PartnerInput) { in.Address.Number = "" }, "numero"},
		{"bairro", func(in *entity.PartnerInput) { in.Address.District = "" }, "bairro"},
		{"telefone", func(in *entity.PartnerInput) { in.Phone = "  " }, "telefone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validLegalInput()
			tc.mutate(&in)

			p, err := entity.NewLegalPerson(in)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, domain.ErrRequiredField)
			assert.Equal(t, tc.field, domain.FieldOf(err))
		})
	}
}

func TestNewLegalPerson_TelefoneAusenteMesmoComRestoValido(t *testing.T) {
	// A falha de obrigatório vale independentemente da validade dos demais campos.
	in := validLegalInput()
	in.Phone = ""

	_, err := entity.NewLegalPerson(in)
	assert.ErrorIs(t, err, domain.ErrRequiredField)
	assert.Equal(t, "telefone", domain.FieldOf(err))
}

func TestNewLegalPerson_PropagaErroDoCNPJ(t *testing.T) {
	in := validLegalInput()
	in.Document = "12345678000100"

	_, err := entity.NewLegalPerson(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChecksumMismatch)
	assert.Equal(t, "cnpj", domain.FieldOf(err))
}

func TestNewNaturalPerson_PropagaErroDoCPF(t *testing.T) {
	in := validNaturalInput()
	in.Document = "12345678901"

	_, err := entity.NewNaturalPerson(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChecksumMismatch)
	assert.Equal(t, "cpf", domain.FieldOf(err))
}

func TestNewLegalPerson_PropagaErroDoEmail(t *testing.T) {
	in := validLegalInput()
	in.Email = "email-invalido"

	_, err := entity.NewLegalPerson(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailMissingAt)
	assert.Equal(t, "email", domain.FieldOf(err))
}

func TestPartner_UpdateEmail(t *testing.T) {
	p, err := entity.NewLegalPerson(validLegalInput())
	require.NoError(t, err)
	before := p.UpdatedAt()

	require.NoError(t, p.UpdateEmail("Novo@Empresa.COM.BR"))
	assert.Equal(t, "novo@empresa.com.br", p.Email().String())
	assert.False(t, p.UpdatedAt().Before(before))
}

func TestPartner_UpdateEmail_InvalidoNaoAltera(t *testing.T) {
	p, err := entity.NewLegalPerson(validLegalInput())
	require.NoError(t, err)
	before := p.Email().String()

	err = p.UpdateEmail("sem-arroba")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailMissingAt)
	assert.Equal(t, before, p.Email().String(), "falha não pode deixar estado parcial")
}

func TestPartner_UpdatePhone(t *testing.T) {
	p, err := entity.NewLegalPerson(validLegalInput())
	require.NoError(t, err)

	require.NoError(t, p.UpdatePhone(" (11) 98888-0002 "))
	assert.Equal(t, "(11) 98888-0002", p.Phone())

	err = p.UpdatePhone("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Equal(t, "telefone", domain.FieldOf(err))
	assert.Equal(t, "(11) 98888-0002", p.Phone())
}

func TestPartner_UpdateAddress(t *testing.T) {
	p, err := entity.NewLegalPerson(validLegalInput())
	require.NoError(t, err)

	err = p.UpdateAddress(entity.AddressInput{
		CEP:        "20040-020",
		UF:         "rj",
		City:       "Rio de Janeiro",
		Street:     "Avenida Rio Branco",
		Number:     "1",
		District:   "Centro",
		Complement: " Sala 101 ",
	})
	require.NoError(t, err)

	addr := p.Address()
	assert.Equal(t, "20040020", addr.CEP)
	assert.Equal(t, "RJ", addr.UF)
	assert.Equal(t, "Sala 101", addr.Complement)
}

func TestPartner_UpdateAddress_InvalidoNaoAltera(t *testing.T) {
	p, err := entity.NewLegalPerson(validLegalInput())
	require.NoError(t, err)
	before := p.Address()

	err = p.UpdateAddress(entity.AddressInput{CEP: "20040-020", UF: "RJ"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequiredField)
	assert.Equal(t, before, p.Address(), "endereço anterior permanece intacto")
}

func TestPartner_AssignID(t *testing.T) {
	p, err := entity.NewLegalPerson(validLegalInput())
	require.NoError(t, err)
	assert.Empty(t, p.ID(), "identidade vem do armazenamento, não do núcleo")

	p.AssignID("abc-123")
	p.AssignID("outro-id") // sem efeito: identidade não muda
	assert.Equal(t, "abc-123", p.ID())
}

func TestRestorePartner_ReidrataValido(t *testing.T) {
	original, err := entity.NewNaturalPerson(validNaturalInput())
	require.NoError(t, err)

	restored, err := entity.RestorePartner(
		"id-1", original.PersonType(), original.Name(),
		original.Document().String(), original.Email().String(),
		original.Address(), original.Phone(), original.Notes(),
		original.CreatedAt(), original.UpdatedAt(),
	)
	require.NoError(t, err)
	assert.Equal(t, "id-1", restored.ID())
	assert.True(t, restored.IsNaturalPerson())
	assert.Equal(t, original.FormattedDocument(), restored.FormattedDocument())
}

func TestRestorePartner_DadoCorrompidoViraErro(t *testing.T) {
	_, err := entity.RestorePartner(
		"id-1", entity.PersonTypeLegal, "Empresa",
		"11111111111111", "contato@empresa.com.br",
		entity.Address{}, "11 99999", "",
		time.Now(), time.Now(),
	)
	assert.ErrorIs(t, err, domain.ErrRepeatedDigits)
}
