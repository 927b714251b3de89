package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parceiroslab/cadastro-api/internal/application/dto"
	"github.com/parceiroslab/cadastro-api/internal/application/usecase"
	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
)

type fakeAddressLookup struct {
	got  string
	resp *dto.CEPLookupResponse
	err  error
}

func (f *fakeAddressLookup) FindByCEP(_ context.Context, cep valueobject.CEP) (*dto.CEPLookupResponse, error) {
	f.got = cep.String()
	return f.resp, f.err
}

type fakeCompanyLookup struct {
	got  string
	resp *dto.CNPJLookupResponse
	err  error
}

func (f *fakeCompanyLookup) FindByCNPJ(_ context.Context, cnpj valueobject.CNPJ) (*dto.CNPJLookupResponse, error) {
	f.got = cnpj.String()
	return f.resp, f.err
}

func TestLookupUseCase_FindAddress(t *testing.T) {
	addr := &fakeAddressLookup{resp: &dto.CEPLookupResponse{CEP: "01310100", UF: "SP"}}
	uc := usecase.NewLookupUseCase(addr, &fakeCompanyLookup{})

	out, err := uc.FindAddress(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, "01310100", addr.got, "o porto recebe o CEP normalizado")
	assert.Equal(t, "SP", out.UF)
}

func TestLookupUseCase_FindAddress_CEPInvalidoNaoChamaPorto(t *testing.T) {
	addr := &fakeAddressLookup{}
	uc := usecase.NewLookupUseCase(addr, &fakeCompanyLookup{})

	_, err := uc.FindAddress(context.Background(), "013")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLength)
	assert.Equal(t, "cep", domain.FieldOf(err))
	assert.Empty(t, addr.got, "entrada inválida não gasta chamada externa")
}

func TestLookupUseCase_FindCompany(t *testing.T) {
	company := &fakeCompanyLookup{resp: &dto.CNPJLookupResponse{CNPJ: "11222333000181", RazaoSocial: "Empresa Exemplo"}}
	uc := usecase.NewLookupUseCase(&fakeAddressLookup{}, company)

	out, err := uc.FindCompany(context.Background(), "11.222.333/0001-81")
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", company.got)
	assert.Equal(t, "Empresa Exemplo", out.RazaoSocial)
}

func TestLookupUseCase_FindCompany_CNPJInvalidoNaoChamaPorto(t *testing.T) {
	company := &fakeCompanyLookup{}
	uc := usecase.NewLookupUseCase(&fakeAddressLookup{}, company)

	_, err := uc.FindCompany(context.Background(), "12345678000100")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChecksumMismatch)
	assert.Equal(t, "cnpj", domain.FieldOf(err))
	assert.Empty(t, company.got)
}
